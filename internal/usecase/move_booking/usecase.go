package move_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
)

// UseCase use case для переноса бронирования (другой номер, даты или длительность)
type UseCase struct {
	validator    BookingValidator
	store        ReservationReader
	reservations ReservationService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator BookingValidator,
	store ReservationReader,
	reservations ReservationService,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		store:        store,
		reservations: reservations,
		logger:       logger,
	}
}

// Execute выполняет перенос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveBooking: operator=%s, reservation=%d, room=%d, checkIn=%s, checkOut=%s",
		req.OperatorID, req.ReservationID, req.RoomID,
		req.CheckIn.Format(domain.DateTimeFormat), req.CheckOut.Format(domain.DateTimeFormat))

	// 1. Получаем текущее бронирование
	current, ok := uc.store.Get(req.ReservationID)
	if !ok {
		uc.logger.Warn("MoveBooking: reservation id=%d not found", req.ReservationID)
		return nil, ErrReservationNotFound
	}
	if !current.CanBeMoved() {
		uc.logger.Warn("MoveBooking: reservation id=%d has status %s", current.ID, current.Status)
		return nil, ErrCannotMove
	}
	if current.IsTemporary() {
		uc.logger.Warn("MoveBooking: reservation id=%d is not saved yet", current.ID)
		return nil, fmt.Errorf("%w: reservation is still being saved", ErrInvalidInput)
	}

	// 2. Целевое состояние
	draft := draftFor(current, req)
	keepPrice := req.KeepPrice || current.Status == domain.StatusRoomClosure

	// 3. Финальная проверка (само бронирование исключено из конфликтов)
	checked, err := uc.validator.Execute(ctx, &validate_booking.Request{Draft: draft})
	if err != nil {
		if errors.Is(err, validate_booking.ErrRoomNotFound) {
			uc.logger.Warn("MoveBooking: room id=%d not found", draft.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("MoveBooking: validation failed with error: %v", err)
		return nil, fmt.Errorf("%w: validate: %v", ErrInternal, err)
	}
	errs := checked.Errors
	if keepPrice {
		errs = errs.Without(domain.ValidationPricingError)
	}
	if len(errs) > 0 {
		uc.logger.Warn("MoveBooking: move of reservation id=%d rejected with %d errors", current.ID, len(errs))
		return nil, errs
	}

	// 4. Новые суммы
	var amounts *domain.InvoiceAmounts
	var quote *domain.PricingBreakdown
	if !keepPrice {
		quote = checked.Quote
		a := quote.InvoiceAmounts()
		amounts = &a
	}

	// 5. Оптимистичный перенос
	moved, err := uc.reservations.Move(ctx, current.ID, draft.RoomID, draft.CheckIn, draft.CheckOut, amounts)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		case errors.Is(err, reservations.ErrCannotMove):
			return nil, ErrCannotMove
		case errors.Is(err, reservations.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, reservations.ErrCommitFailed):
			uc.logger.Warn("MoveBooking: store rejected move of reservation id=%d: %v", current.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrStoreRejected, err)
		}
		uc.logger.Error("MoveBooking: failed to move reservation id=%d: %v", current.ID, err)
		return nil, fmt.Errorf("%w: move: %v", ErrInternal, err)
	}

	uc.logger.Info("MoveBooking: reservation id=%d moved to room=%d (%s - %s)",
		moved.ID, moved.RoomID, moved.CheckIn.Format(domain.DateFormat), moved.CheckOut.Format(domain.DateFormat))
	return &Response{Reservation: moved, Quote: quote}, nil
}

// draftFor строит черновик из текущего бронирования и запрошенных изменений
func draftFor(current *domain.Reservation, req *Request) *domain.BookingDraft {
	draft := &domain.BookingDraft{
		RoomID:               current.RoomID,
		CheckIn:              current.CheckIn,
		CheckOut:             current.CheckOut,
		Adults:               current.Adults,
		Children:             current.Children,
		HasPets:              current.HasPets,
		NeedsParking:         current.NeedsParking,
		AdditionalCharges:    current.AdditionalCharges,
		Tier:                 req.Tier,
		Notes:                current.Notes,
		ExcludeReservationID: current.ID,
	}
	if req.RoomID > 0 {
		draft.RoomID = req.RoomID
	}
	if !req.CheckIn.IsZero() {
		draft.CheckIn = req.CheckIn
	}
	if !req.CheckOut.IsZero() {
		draft.CheckOut = req.CheckOut
	}

	guest := domain.ExistingGuestRef{Name: current.GuestName}
	if current.GuestID != nil {
		guest.GuestID = *current.GuestID
	}

	// Закрытие номера не имеет гостя
	if current.Status == domain.StatusRoomClosure {
		if guest.Name == "" {
			guest.Name = string(domain.StatusRoomClosure)
		}
		if draft.Adults < domain.MinAdults {
			draft.Adults = domain.MinAdults
		}
	}
	draft.Guest = guest
	return draft
}
