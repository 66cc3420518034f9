package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	validator    BookingValidator
	reservations ReservationService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator BookingValidator,
	reservations ReservationService,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		reservations: reservations,
		logger:       logger,
	}
}

// Execute проверяет черновик, рассчитывает цену и оптимистично создает бронирование.
// Ошибки валидации возвращаются как domain.ValidationErrors и в хранилище не уходят.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Draft == nil {
		return nil, fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}
	draft := req.Draft

	uc.logger.Info("CreateBooking: operator=%s, room=%d, checkIn=%s, checkOut=%s",
		req.OperatorID, draft.RoomID, draft.CheckIn.Format(domain.DateTimeFormat), draft.CheckOut.Format(domain.DateTimeFormat))

	// 1. Новое бронирование ни с чем не сравнивается как "свое"
	draft.ExcludeReservationID = 0

	// 2. Финальная проверка
	checked, err := uc.validator.Execute(ctx, &validate_booking.Request{Draft: draft})
	if err != nil {
		if errors.Is(err, validate_booking.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", draft.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: validation failed with error: %v", err)
		return nil, fmt.Errorf("%w: validate: %v", ErrInternal, err)
	}
	if !checked.Valid {
		uc.logger.Warn("CreateBooking: draft rejected with %d errors", len(checked.Errors))
		return nil, checked.Errors
	}

	// 3. Собираем бронирование с рассчитанными суммами
	amounts := checked.Quote.InvoiceAmounts()
	reservation := &domain.Reservation{
		RoomID:            draft.RoomID,
		GuestID:           domain.GuestIDOf(draft.Guest),
		GuestName:         draft.Guest.DisplayName(),
		CheckIn:           draft.CheckIn,
		CheckOut:          draft.CheckOut,
		Status:            domain.StatusConfirmed,
		Adults:            draft.Adults,
		Children:          draft.Children,
		HasPets:           draft.HasPets,
		NeedsParking:      draft.NeedsParking,
		AdditionalCharges: draft.AdditionalCharges,
		TotalAmount:       amounts.TotalAmount,
		VATAmount:         amounts.VATAmount,
	}
	if draft.Notes != nil {
		reservation.Notes = ptr.Ptr(*draft.Notes)
	}

	// 4. Оптимистичное создание
	created, err := uc.reservations.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, reservations.ErrCommitFailed) {
			uc.logger.Warn("CreateBooking: store rejected reservation for room=%d: %v", draft.RoomID, err)
			return nil, fmt.Errorf("%w: %v", ErrStoreRejected, err)
		}
		uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: create: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: reservation id=%d created, total=%.2f, vat=%.2f",
		created.ID, created.TotalAmount, created.VATAmount)
	return &Response{Reservation: created, Quote: checked.Quote}, nil
}
