package create_booking

import (
	"context"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
)

// BookingValidator финальная проверка черновика
type BookingValidator interface {
	Execute(ctx context.Context, req *validate_booking.Request) (*validate_booking.Response, error)
}

// ReservationService оптимистичное создание бронирования
type ReservationService interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
