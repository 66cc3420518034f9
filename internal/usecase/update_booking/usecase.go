package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
)

// UseCase use case для изменения бронирования без переноса
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

// Execute применяет изменение. Возврат бронирования в активный статус проверяется
// на пересечения, а изменение доплат и флагов пересчитывает суммы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if !onlyEditableFields(req.Patch) {
		return nil, fmt.Errorf("%w: room, dates and amounts are changed by move", ErrInvalidInput)
	}

	uc.logger.Info("UpdateBooking: operator=%s, reservation=%d", req.OperatorID, req.ReservationID)

	// 1. Получаем текущее бронирование
	current, ok := uc.store.Get(req.ReservationID)
	if !ok {
		uc.logger.Warn("UpdateBooking: reservation id=%d not found", req.ReservationID)
		return nil, ErrReservationNotFound
	}
	if current.IsTemporary() {
		uc.logger.Warn("UpdateBooking: reservation id=%d is not saved yet", current.ID)
		return nil, fmt.Errorf("%w: reservation is still being saved", ErrInvalidInput)
	}

	// 2. Целевое состояние
	target := current.Clone()
	req.Patch.ApplyTo(target)
	reactivated := !current.IsActive() && target.IsActive()
	repriced := touchesPrice(req.Patch) && target.Status != domain.StatusRoomClosure

	// 3. Финальная проверка, если изменение может занять номер или поменять цену
	patch := req.Patch
	var quote *domain.PricingBreakdown
	if reactivated || repriced {
		draft := draftFor(target, req.Tier)
		checked, err := uc.validator.Execute(ctx, &validate_booking.Request{Draft: draft})
		if err != nil {
			uc.logger.Error("UpdateBooking: validation failed with error: %v", err)
			return nil, fmt.Errorf("%w: validate: %v", ErrInternal, err)
		}

		errs := checked.Errors
		if !target.IsActive() {
			// выехавший гость номер не занимает
			errs = errs.Without(domain.ValidationDateConflict, domain.ValidationRoomRuleViolation)
		}
		if !repriced {
			errs = errs.Without(domain.ValidationPricingError)
		}
		if len(errs) > 0 {
			uc.logger.Warn("UpdateBooking: update of reservation id=%d rejected with %d errors", current.ID, len(errs))
			return nil, errs
		}

		// 4. Новые суммы
		if repriced {
			if checked.Quote == nil {
				uc.logger.Error("UpdateBooking: no quote for reservation id=%d", current.ID)
				return nil, fmt.Errorf("%w: price was not calculated", ErrInternal)
			}
			quote = checked.Quote
			amounts := quote.InvoiceAmounts()
			patch.TotalAmount = &amounts.TotalAmount
			patch.VATAmount = &amounts.VATAmount
		}
	}

	// 5. Оптимистичное изменение
	updated, err := uc.reservations.Update(ctx, current.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			return nil, ErrReservationNotFound
		case errors.Is(err, reservations.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, reservations.ErrCommitFailed):
			uc.logger.Warn("UpdateBooking: store rejected update of reservation id=%d: %v", current.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrStoreRejected, err)
		}
		uc.logger.Error("UpdateBooking: failed to update reservation id=%d: %v", current.ID, err)
		return nil, fmt.Errorf("%w: update: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateBooking: reservation id=%d updated, status=%s, total=%.2f",
		updated.ID, updated.Status, updated.TotalAmount)
	return &Response{Reservation: updated, Quote: quote}, nil
}

func onlyEditableFields(p domain.ReservationPatch) bool {
	return p.RoomID == nil && p.CheckIn == nil && p.CheckOut == nil && p.Adults == nil &&
		p.TotalAmount == nil && p.VATAmount == nil
}

func touchesPrice(p domain.ReservationPatch) bool {
	return p.AdditionalCharges != nil || p.HasPets != nil || p.NeedsParking != nil
}

// draftFor строит черновик из целевого состояния бронирования
func draftFor(r *domain.Reservation, tier string) *domain.BookingDraft {
	guest := domain.ExistingGuestRef{Name: r.GuestName}
	if r.GuestID != nil {
		guest.GuestID = *r.GuestID
	}
	adults := r.Adults
	if r.Status == domain.StatusRoomClosure {
		if guest.Name == "" {
			guest.Name = string(domain.StatusRoomClosure)
		}
		if adults < domain.MinAdults {
			adults = domain.MinAdults
		}
	}

	return &domain.BookingDraft{
		RoomID:               r.RoomID,
		CheckIn:              r.CheckIn,
		CheckOut:             r.CheckOut,
		Guest:                guest,
		Adults:               adults,
		Children:             r.Children,
		HasPets:              r.HasPets,
		NeedsParking:         r.NeedsParking,
		AdditionalCharges:    r.AdditionalCharges,
		Tier:                 tier,
		Notes:                r.Notes,
		ExcludeReservationID: r.ID,
	}
}
