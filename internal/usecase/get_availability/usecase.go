package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/ptr"
)

// UseCase use case для получения занятости номера (подсветка календаря)
type UseCase struct {
	rooms        RoomCatalog
	index        AvailabilityIndex
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rooms RoomCatalog, index AvailabilityIndex, logger Logger) *UseCase {
	return &UseCase{
		rooms:        rooms,
		index:        index,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Период по умолчанию
	from := req.From
	if from.IsZero() {
		from = domain.StartOfDay(uc.timeProvider.Now())
	}
	to := req.To
	if to.IsZero() {
		to = from.AddDate(0, 0, DefaultRangeDays)
	}

	uc.logger.Info("GetAvailability: room=%d, from=%s, to=%s",
		req.RoomID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 2. Валидация входных данных
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}
	if domain.DaysBetween(from, to) > domain.MaxQueryRangeDays {
		uc.logger.Warn("GetAvailability: range of %d days requested", domain.DaysBetween(from, to))
		return nil, fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, domain.MaxQueryRangeDays)
	}

	// 3. Проверяем номер
	if _, err := uc.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Проекции индекса
	resp := &Response{
		RoomID:        req.RoomID,
		From:          from,
		To:            to,
		OccupiedDates: uc.index.OccupiedDates(req.RoomID, from, to),
	}
	if req.CheckIn != nil {
		resp.CheckIn = req.CheckIn
		resp.CheckInFree = ptr.Ptr(uc.index.IsDateFree(req.RoomID, *req.CheckIn))
		resp.MaxCheckout = uc.index.MaxCheckoutFor(req.RoomID, *req.CheckIn)
	}

	uc.logger.Info("GetAvailability: room=%d has %d occupied days", req.RoomID, len(resp.OccupiedDates))
	return resp, nil
}
