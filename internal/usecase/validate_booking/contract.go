package validate_booking

import (
	"context"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
)

// RoomCatalog каталог номеров
type RoomCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityIndex индекс занятости номеров
type AvailabilityIndex interface {
	HasConflict(roomID int64, checkIn, checkOut time.Time, excludeID int64) (*domain.Reservation, bool)
	ForRoom(roomID int64) []*domain.Reservation
}

// PriceCalculator калькулятор стоимости проживания
type PriceCalculator interface {
	TierFactor(name string) (float64, error)
	Calculate(in pricing.QuoteInput) (*domain.PricingBreakdown, error)
}

// Metrics счетчики ошибок валидации
type Metrics interface {
	IncValidationError(errorType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
