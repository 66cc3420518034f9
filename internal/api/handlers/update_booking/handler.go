package update_booking

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
	updateBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/update_booking"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "reservation not found"
	msgStoreRejected        = "update was not saved, the change has been rolled back"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := middleware.GetOperatorID(r.Context())
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBooking.Request{
		OperatorID:    operatorID,
		ReservationID: id,
		Patch:         patch,
		Tier:          req.Tier,
	})
	if err != nil {
		if errs, ok := domain.AsValidationErrors(err); ok {
			h.logger.Warn("PUT /reservations/{id} - Update rejected: id=%d, errors=%d", id, len(errs))
			handlers.RespondValidationErrors(w, errs)
			return
		}

		switch {
		case errors.Is(err, updateBooking.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateBooking.ErrStoreRejected):
			h.logger.Warn("PUT /reservations/{id} - Store rejected update: id=%d, error=%v", id, err)
			handlers.RespondBadGateway(w, msgStoreRejected)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: id=%d, status=%s, operator=%s",
		id, result.Reservation.Status, operatorID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(result.Reservation))
}
