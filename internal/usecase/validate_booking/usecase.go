package validate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms"
)

// UseCase финальная проверка черновика перед любым изменением
type UseCase struct {
	rooms   RoomCatalog
	index   AvailabilityIndex
	pricer  PriceCalculator
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rooms RoomCatalog,
	index AvailabilityIndex,
	pricer PriceCalculator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rooms:   rooms,
		index:   index,
		pricer:  pricer,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute проверяет черновик. Ожидаемые нарушения возвращаются списком в ответе, а не ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Draft == nil {
		return nil, fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}
	draft := req.Draft

	uc.logger.Info("ValidateBooking: room=%d, checkIn=%s, checkOut=%s, exclude=%d",
		draft.RoomID, draft.CheckIn.Format(domain.DateTimeFormat), draft.CheckOut.Format(domain.DateTimeFormat),
		draft.ExcludeReservationID)

	// 1. Получаем номер (отсутствующий ID проверяется как ошибка формы)
	var room *domain.Room
	if draft.RoomID > 0 {
		r, err := uc.rooms.GetByID(ctx, draft.RoomID)
		if err != nil {
			if errors.Is(err, rooms.ErrRoomNotFound) {
				uc.logger.Warn("ValidateBooking: room id=%d not found", draft.RoomID)
				return nil, ErrRoomNotFound
			}
			uc.logger.Error("ValidateBooking: failed to get room id=%d: %v", draft.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		room = r
	}

	// 2. Проверяем все правила
	errs, quote := uc.Validate(draft, room)

	// 3. Учитываем ошибки в метриках
	for _, e := range errs {
		if uc.metrics != nil {
			uc.metrics.IncValidationError(string(e.Type))
		}
	}

	if len(errs) > 0 {
		uc.logger.Warn("ValidateBooking: %d validation errors for room=%d: %v", len(errs), draft.RoomID, errs)
	} else {
		uc.logger.Info("ValidateBooking: draft for room=%d is valid, total=%.2f", draft.RoomID, quote.Total)
	}

	return &Response{
		Valid:  len(errs) == 0,
		Errors: errs,
		Quote:  quote,
		Room:   room,
	}, nil
}
