package rooms

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// StaticSource каталог, заданный в памяти (тесты и rooms.yaml после разбора)
type StaticSource []*domain.Room

// ListRooms возвращает номера как есть
func (s StaticSource) ListRooms(context.Context) ([]*domain.Room, error) {
	return s, nil
}

// Service каталог номеров, кэшированный в памяти
type Service struct {
	source RoomSource
	logger Logger

	mu    sync.RWMutex
	rooms map[int64]*domain.Room
}

// NewService создает каталог; до первого Reload он пуст
func NewService(source RoomSource, logger Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		rooms:  make(map[int64]*domain.Room),
	}
}

// Reload перечитывает каталог из источника
func (s *Service) Reload(ctx context.Context) error {
	// 1. Читаем источник
	list, err := s.source.ListRooms(ctx)
	if err != nil {
		s.logger.Error("Reload: failed to list rooms: %v", err)
		return fmt.Errorf("%w: Reload - source error: %v", ErrInternal, err)
	}

	// 2. Строим индекс
	rooms := make(map[int64]*domain.Room, len(list))
	for _, r := range list {
		if _, dup := rooms[r.ID]; dup {
			s.logger.Error("Reload: room id=%d listed twice", r.ID)
			return fmt.Errorf("%w: id=%d", ErrDuplicateRoom, r.ID)
		}
		rooms[r.ID] = r
	}

	// 3. Публикуем
	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()

	s.logger.Info("Reload: %d rooms loaded", len(rooms))
	return nil
}

// GetByID возвращает номер или ErrRoomNotFound
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// List возвращает каталог, упорядоченный по номеру комнаты
func (s *Service) List(ctx context.Context) []*domain.Room {
	s.mu.RLock()
	list := make([]*domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Number != list[j].Number {
			return list[i].Number < list[j].Number
		}
		return list[i].ID < list[j].ID
	})
	return list
}
