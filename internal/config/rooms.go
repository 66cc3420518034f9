package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// RoomConfig один номер каталога rooms.yaml
type RoomConfig struct {
	ID           int64              `yaml:"id"`
	Number       string             `yaml:"number"`
	Type         string             `yaml:"type"`
	Floor        int                `yaml:"floor"`
	MaxOccupancy int                `yaml:"max_occupancy"`
	Premium      bool               `yaml:"premium"`
	Rates        map[string]float64 `yaml:"rates,omitempty"` // period -> per-person rate
	Rules        *RoomRulesConfig   `yaml:"rules,omitempty"`
}

// RoomRulesConfig необязательные правила номера
type RoomRulesConfig struct {
	MinStayNights    int      `yaml:"min_stay_nights"`
	FixedStayRate    *float64 `yaml:"fixed_stay_rate,omitempty"`
	BufferDays       int      `yaml:"buffer_days"`
	IncludedServices []string `yaml:"included_services"`
}

// RoomsConfig корень rooms.yaml
type RoomsConfig struct {
	Rooms []RoomConfig `yaml:"rooms"`
}

// LoadRoomsConfig читает каталог, проверяет его и заполняет тарифы из таблицы типов
func LoadRoomsConfig(path string, pricing PricingConfig) (*RoomsConfig, error) {
	if path == "" {
		path = "rooms.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rooms config: %w", err)
	}

	return ParseRoomsConfig(data, pricing)
}

// ParseRoomsConfig разбирает содержимое rooms.yaml
func ParseRoomsConfig(data []byte, pricing PricingConfig) (*RoomsConfig, error) {
	var cfg RoomsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse rooms config: %w", err)
	}

	cfg.applyDefaults(pricing)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate rooms config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults подставляет тариф типа номера, если у номера нет своих ставок
func (c *RoomsConfig) applyDefaults(pricing PricingConfig) {
	for i := range c.Rooms {
		room := &c.Rooms[i]
		room.Type = strings.ToLower(strings.TrimSpace(room.Type))
		if len(room.Rates) > 0 {
			continue
		}
		if table, ok := pricing.RoomTypes[room.Type]; ok {
			room.Rates = make(map[string]float64, len(table))
			for period, rate := range table {
				room.Rates[period] = rate
			}
		}
	}
}

// Validate проверяет id, номера, вместимость, тарифы и правила
func (c *RoomsConfig) Validate() error {
	if len(c.Rooms) == 0 {
		return fmt.Errorf("no rooms defined")
	}

	ids := make(map[int64]bool)
	numbers := make(map[string]bool)

	for i, room := range c.Rooms {
		if room.ID <= 0 {
			return fmt.Errorf("room[%d]: id must be positive, got %d", i, room.ID)
		}
		if ids[room.ID] {
			return fmt.Errorf("room[%d]: duplicate id %d", i, room.ID)
		}
		ids[room.ID] = true

		if room.Number == "" {
			return fmt.Errorf("room[%d]: number is required", i)
		}
		if numbers[room.Number] {
			return fmt.Errorf("room[%d]: duplicate number '%s'", i, room.Number)
		}
		numbers[room.Number] = true

		if room.Type == "" {
			return fmt.Errorf("room[%d]: type is required", i)
		}
		if room.MaxOccupancy <= 0 {
			return fmt.Errorf("room[%d]: max_occupancy must be positive", i)
		}

		for period, rate := range room.Rates {
			if !domain.SeasonalPeriod(strings.ToUpper(period)).IsValid() {
				return fmt.Errorf("room[%d].rates: unknown period '%s'", i, period)
			}
			if rate <= 0 {
				return fmt.Errorf("room[%d].rates.%s: rate must be positive", i, period)
			}
		}

		if room.Rules != nil {
			if err := validateRules(room.Rules, fmt.Sprintf("room[%d].rules", i)); err != nil {
				return err
			}
		}
		if len(room.Rates) == 0 && (room.Rules == nil || room.Rules.FixedStayRate == nil) {
			return fmt.Errorf("room[%d]: no rates for type '%s' and no fixed_stay_rate", i, room.Type)
		}
	}

	return nil
}

func validateRules(r *RoomRulesConfig, prefix string) error {
	if r.MinStayNights < 0 {
		return fmt.Errorf("%s.min_stay_nights cannot be negative", prefix)
	}
	if r.BufferDays < 0 {
		return fmt.Errorf("%s.buffer_days cannot be negative", prefix)
	}
	if r.FixedStayRate != nil && *r.FixedStayRate <= 0 {
		return fmt.Errorf("%s.fixed_stay_rate must be positive", prefix)
	}
	for j, s := range r.IncludedServices {
		switch domain.Service(s) {
		case domain.ServiceParking, domain.ServicePet:
		default:
			return fmt.Errorf("%s.included_services[%d]: unknown service '%s'", prefix, j, s)
		}
	}
	return nil
}

// ToDomain конвертирует каталог в доменные номера
func (c *RoomsConfig) ToDomain() []*domain.Room {
	rooms := make([]*domain.Room, 0, len(c.Rooms))
	for _, rc := range c.Rooms {
		room := &domain.Room{
			ID:           rc.ID,
			Number:       rc.Number,
			Type:         domain.RoomType(rc.Type),
			Floor:        rc.Floor,
			MaxOccupancy: rc.MaxOccupancy,
			Premium:      rc.Premium,
			Rates:        make(domain.SeasonalRates, len(rc.Rates)),
		}
		for period, rate := range rc.Rates {
			room.Rates[domain.SeasonalPeriod(strings.ToUpper(period))] = rate
		}
		if rc.Rules != nil {
			rules := &domain.RoomRules{
				MinStayNights: rc.Rules.MinStayNights,
				BufferDays:    rc.Rules.BufferDays,
			}
			if rc.Rules.FixedStayRate != nil {
				rate := *rc.Rules.FixedStayRate
				rules.FixedStayRate = &rate
			}
			for _, s := range rc.Rules.IncludedServices {
				rules.IncludedServices = append(rules.IncludedServices, domain.Service(s))
			}
			room.Rules = rules
		}
		rooms = append(rooms, room)
	}
	return rooms
}

// ListRooms реализует rooms.RoomSource
func (c *RoomsConfig) ListRooms(context.Context) ([]*domain.Room, error) {
	return c.ToDomain(), nil
}
