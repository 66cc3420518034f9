package pricing

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// StandardTier имя базового ценового уровня
const StandardTier = "standard"

// Config ставки налогов, сборов и коэффициенты уровней
type Config struct {
	AccommodationVATRate    float64 // включен в цену номера
	ServicesVATRate         float64 // сверху на доп. услуги
	TourismTaxHigh          float64 // за взрослого за ночь, высокий сезон
	TourismTaxLow           float64 // за взрослого за ночь, низкий сезон
	ShortStayNights         int     // проживание короче платит надбавку
	ShortStaySupplementRate float64
	PetFee                  float64            // нетто, один раз за проживание
	ParkingFeePerNight      float64            // нетто
	Tiers                   map[string]float64 // уровень -> коэффициент к базовому тарифу
}

// DefaultConfig значения отеля по умолчанию
func DefaultConfig() Config {
	return Config{
		AccommodationVATRate:    0.13,
		ServicesVATRate:         0.25,
		TourismTaxHigh:          1.60,
		TourismTaxLow:           1.10,
		ShortStayNights:         domain.ShortStayNights,
		ShortStaySupplementRate: 0.20,
		PetFee:                  20,
		ParkingFeePerNight:      7,
		Tiers: map[string]float64{
			StandardTier: 1.0,
			"agency":     0.85,
			"corporate":  0.9,
		},
	}
}

// Fingerprint короткий стабильный хеш всех ставок, сборов и коэффициентов уровней
func (c Config) Fingerprint() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%g|%g|%g|%g|%d|%g|%g|%g",
		c.AccommodationVATRate, c.ServicesVATRate, c.TourismTaxHigh, c.TourismTaxLow,
		c.ShortStayNights, c.ShortStaySupplementRate, c.PetFee, c.ParkingFeePerNight)

	names := make([]string, 0, len(c.Tiers))
	for name := range c.Tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(h, "|%s=%g", name, c.Tiers[name])
	}
	return strconv.FormatUint(h.Sum64(), 36)
}

// QuoteInput входные данные для расчета стоимости проживания
type QuoteInput struct {
	Room              *domain.Room
	CheckIn           time.Time
	CheckOut          time.Time
	Adults            int
	Children          []domain.Child
	HasPets           bool
	NeedsParking      bool
	AdditionalCharges float64
	TierFactor        float64 // 0 означает 1.0
}
