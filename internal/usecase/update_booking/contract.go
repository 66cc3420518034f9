package update_booking

import (
	"context"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
)

// BookingValidator финальная проверка черновика
type BookingValidator interface {
	Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Response, error)
}

// ReservationReader живая коллекция бронирований
type ReservationReader interface {
	Get(id int64) (*domain.Reservation, bool)
}

// ReservationService оптимистичное изменение бронирования
type ReservationService interface {
	Update(ctx context.Context, id int64, patch domain.ReservationPatch) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
