package get_availability

import (
	"context"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// RoomCatalog каталог номеров
type RoomCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityIndex индекс занятости номеров
type AvailabilityIndex interface {
	OccupiedDates(roomID int64, from, to time.Time) []time.Time
	MaxCheckoutFor(roomID int64, checkIn time.Time) *time.Time
	IsDateFree(roomID int64, date time.Time) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
