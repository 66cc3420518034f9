package reservations

import (
	"context"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// ReservationRepository удаленное хранилище бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, patch domain.ReservationPatch) error
	Delete(ctx context.Context, id int64) error
}

// Store живая коллекция бронирований (availability.Store)
type Store interface {
	Upsert(r *domain.Reservation)
	Remove(id int64) (*domain.Reservation, bool)
	Get(id int64) (*domain.Reservation, bool)
	InRange(from, to time.Time) []*domain.Reservation
	ForRoom(roomID int64) []*domain.Reservation
	All() []*domain.Reservation
}

// Notifier уведомления оператора
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
	Warning(title, message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
