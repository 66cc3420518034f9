package rooms

import (
	"context"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// RoomSource источник каталога номеров (rooms.yaml или таблица rooms)
type RoomSource interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
