package get_rooms

import (
	"context"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

type RoomService interface {
	List(ctx context.Context) []*domain.Room
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
