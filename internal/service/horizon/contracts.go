package horizon

import (
	"context"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// ReservationLister источник бронирований за период (Postgres)
type ReservationLister interface {
	ListInRange(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Store живая коллекция, в которую загружается горизонт
type Store interface {
	Load(reservations []*domain.Reservation)
}

// PendingChecker сообщает о незавершенных оптимистичных операциях
type PendingChecker interface {
	HasPending() bool
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
