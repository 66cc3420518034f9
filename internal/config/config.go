// Package config загружает конфигурацию сервиса (config.toml) и каталог номеров (rooms.yaml).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
)

// Источники каталога номеров
const (
	RoomsSourceFile     = "file"
	RoomsSourceDatabase = "database"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Hotel         HotelConfig         `toml:"hotel"`
	Pricing       PricingConfig       `toml:"pricing"`
	Optimistic    OptimisticConfig    `toml:"optimistic"`
	Notifications NotificationsConfig `toml:"notifications"`
	Redis         RedisConfig         `toml:"redis"`
	Rooms         RoomsSourceConfig   `toml:"rooms"`
}

// ServerConfig HTTP сервер; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// HotelConfig параметры отеля
type HotelConfig struct {
	Timezone                string `toml:"timezone"`
	CheckInHour             int    `toml:"check_in_hour"`
	CheckOutHour            int    `toml:"check_out_hour"`
	HorizonPastDays         int    `toml:"horizon_past_days"`
	HorizonFutureDays       int    `toml:"horizon_future_days"`
	RefreshIntervalSeconds  int    `toml:"refresh_interval_seconds"`
	SelectionTimeoutMinutes int    `toml:"selection_timeout_minutes"`
}

// Location загружает часовой пояс отеля
func (h HotelConfig) Location() (*time.Location, error) {
	return time.LoadLocation(h.Timezone)
}

// PricingConfig налоги, сборы, уровни и тарифные таблицы по типам номеров
type PricingConfig struct {
	AccommodationVATRate    float64                       `toml:"accommodation_vat_rate"`
	ServicesVATRate         float64                       `toml:"services_vat_rate"`
	TourismTaxHigh          float64                       `toml:"tourism_tax_high"`
	TourismTaxLow           float64                       `toml:"tourism_tax_low"`
	ShortStayNights         int                           `toml:"short_stay_nights"`
	ShortStaySupplementRate float64                       `toml:"short_stay_supplement_rate"`
	PetFee                  float64                       `toml:"pet_fee"`
	ParkingFeePerNight      float64                       `toml:"parking_fee_per_night"`
	Tiers                   map[string]float64            `toml:"tiers"`
	RoomTypes               map[string]map[string]float64 `toml:"room_types"` // type -> period -> rate
}

// ToPricing переводит секцию в pricing.Config
func (p PricingConfig) ToPricing() pricing.Config {
	tiers := make(map[string]float64, len(p.Tiers))
	for name, factor := range p.Tiers {
		tiers[strings.ToLower(name)] = factor
	}
	return pricing.Config{
		AccommodationVATRate:    p.AccommodationVATRate,
		ServicesVATRate:         p.ServicesVATRate,
		TourismTaxHigh:          p.TourismTaxHigh,
		TourismTaxLow:           p.TourismTaxLow,
		ShortStayNights:         p.ShortStayNights,
		ShortStaySupplementRate: p.ShortStaySupplementRate,
		PetFee:                  p.PetFee,
		ParkingFeePerNight:      p.ParkingFeePerNight,
		Tiers:                   tiers,
	}
}

// TypeRates тарифная таблица типа номера; nil если тип не настроен
func (p PricingConfig) TypeRates(roomType domain.RoomType) domain.SeasonalRates {
	table, ok := p.RoomTypes[string(roomType)]
	if !ok {
		return nil
	}
	rates := make(domain.SeasonalRates, len(table))
	for period, rate := range table {
		rates[domain.SeasonalPeriod(strings.ToUpper(period))] = rate
	}
	return rates
}

type OptimisticConfig struct {
	RetentionMinutes       int `toml:"retention_minutes"`
	CleanupIntervalSeconds int `toml:"cleanup_interval_seconds"`
}

type NotificationsConfig struct {
	WebhookURL     string  `toml:"webhook_url"`
	Source         string  `toml:"source"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RatePerSecond  float64 `toml:"rate_per_second"`
	Burst          int     `toml:"burst"`
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Address         string `toml:"address"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	QuoteTTLSeconds int    `toml:"quote_ttl_seconds"`
}

// RoomsSourceConfig откуда брать каталог номеров: "file" (rooms.yaml) или "database"
type RoomsSourceConfig struct {
	Source string `toml:"source"`
	Path   string `toml:"path"`
}

// Load читает .env (если есть), подставляет ${VAR} и разбирает TOML
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse разбирает содержимое config.toml
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hotel_frontdesk"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Hotel.Timezone == "" {
		c.Hotel.Timezone = domain.DefaultTimezone
	}
	if c.Hotel.CheckInHour == 0 {
		c.Hotel.CheckInHour = domain.DefaultCheckInHour
	}
	if c.Hotel.CheckOutHour == 0 {
		c.Hotel.CheckOutHour = domain.DefaultCheckOutHour
	}
	if c.Hotel.HorizonPastDays == 0 {
		c.Hotel.HorizonPastDays = 30
	}
	if c.Hotel.HorizonFutureDays == 0 {
		c.Hotel.HorizonFutureDays = 365
	}
	if c.Hotel.SelectionTimeoutMinutes == 0 {
		c.Hotel.SelectionTimeoutMinutes = 15
	}

	// Нулевые ставки заменяет pricing.NewCalculator, здесь только то, что он не знает
	def := pricing.DefaultConfig()
	if c.Pricing.TourismTaxHigh == 0 {
		c.Pricing.TourismTaxHigh = def.TourismTaxHigh
	}
	if c.Pricing.TourismTaxLow == 0 {
		c.Pricing.TourismTaxLow = def.TourismTaxLow
	}
	if c.Pricing.ShortStaySupplementRate == 0 {
		c.Pricing.ShortStaySupplementRate = def.ShortStaySupplementRate
	}
	if c.Pricing.PetFee == 0 {
		c.Pricing.PetFee = def.PetFee
	}
	if c.Pricing.ParkingFeePerNight == 0 {
		c.Pricing.ParkingFeePerNight = def.ParkingFeePerNight
	}
	if len(c.Pricing.Tiers) == 0 {
		c.Pricing.Tiers = def.Tiers
	}

	if c.Optimistic.RetentionMinutes == 0 {
		c.Optimistic.RetentionMinutes = 10
	}
	if c.Optimistic.CleanupIntervalSeconds == 0 {
		c.Optimistic.CleanupIntervalSeconds = 60
	}

	if c.Notifications.Source == "" {
		c.Notifications.Source = "front-desk"
	}
	if c.Notifications.TimeoutSeconds == 0 {
		c.Notifications.TimeoutSeconds = 5
	}
	if c.Notifications.Burst == 0 {
		c.Notifications.Burst = 5
	}

	if c.Redis.QuoteTTLSeconds == 0 {
		c.Redis.QuoteTTLSeconds = 300
	}

	if c.Rooms.Source == "" {
		c.Rooms.Source = RoomsSourceFile
	}
	if c.Rooms.Path == "" {
		c.Rooms.Path = "rooms.yaml"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port: invalid port %d", c.Server.HTTPPort)
	}
	if _, err := c.Hotel.Location(); err != nil {
		return fmt.Errorf("hotel.timezone: %w", err)
	}
	if c.Hotel.CheckInHour < 0 || c.Hotel.CheckInHour > 23 {
		return fmt.Errorf("hotel.check_in_hour: must be 0-23, got %d", c.Hotel.CheckInHour)
	}
	if c.Hotel.CheckOutHour < 0 || c.Hotel.CheckOutHour > 23 {
		return fmt.Errorf("hotel.check_out_hour: must be 0-23, got %d", c.Hotel.CheckOutHour)
	}
	// Выезд в первой половине дня, заезд во второй: иначе половинки дня не разделяют гостей
	if c.Hotel.CheckOutHour >= 12 || c.Hotel.CheckInHour < 12 {
		return fmt.Errorf("hotel: check-out hour must be before noon and check-in hour at or after noon")
	}
	if c.Hotel.HorizonPastDays < 0 || c.Hotel.HorizonFutureDays < 0 {
		return fmt.Errorf("hotel: horizon days cannot be negative")
	}
	if c.Hotel.RefreshIntervalSeconds < 0 {
		return fmt.Errorf("hotel.refresh_interval_seconds cannot be negative")
	}

	for name, factor := range c.Pricing.Tiers {
		if factor <= 0 {
			return fmt.Errorf("pricing.tiers.%s: factor must be positive", name)
		}
	}
	for roomType, table := range c.Pricing.RoomTypes {
		for period, rate := range table {
			if !domain.SeasonalPeriod(strings.ToUpper(period)).IsValid() {
				return fmt.Errorf("pricing.room_types.%s: unknown period %q", roomType, period)
			}
			if rate <= 0 {
				return fmt.Errorf("pricing.room_types.%s.%s: rate must be positive", roomType, period)
			}
		}
	}
	if c.Pricing.ShortStayNights < 0 {
		return fmt.Errorf("pricing.short_stay_nights cannot be negative")
	}

	if c.Notifications.RatePerSecond < 0 {
		return fmt.Errorf("notifications.rate_per_second cannot be negative")
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("redis.address is required when redis is enabled")
	}

	switch c.Rooms.Source {
	case RoomsSourceFile, RoomsSourceDatabase:
	default:
		return fmt.Errorf("rooms.source: unknown source %q", c.Rooms.Source)
	}
	return nil
}
