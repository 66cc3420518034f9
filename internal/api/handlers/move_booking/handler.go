package move_booking

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	moveBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/move_booking"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "reservation not found"
	msgRoomNotFound         = "room not found"
	msgCannotMove           = "checked-out reservations cannot be moved"
	msgStoreRejected        = "move was not saved, the change has been rolled back"
)

type Handler struct {
	useCase MoveBookingUseCase
	clock   handlers.StayClock
	logger  Logger
}

func NewHandler(useCase MoveBookingUseCase, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/move - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}
	operatorID, _ := middleware.GetOperatorID(r.Context())

	var req MoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.clock, operatorID, id)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errs, ok := domain.AsValidationErrors(err); ok {
			h.logger.Warn("PATCH /reservations/{id}/move - Move rejected: id=%d, errors=%d", id, len(errs))
			handlers.RespondValidationErrors(w, errs)
			return
		}

		switch {
		case errors.Is(err, moveBooking.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moveBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, moveBooking.ErrCannotMove):
			handlers.RespondConflict(w, msgCannotMove)

		case errors.Is(err, moveBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, moveBooking.ErrStoreRejected):
			h.logger.Warn("PATCH /reservations/{id}/move - Store rejected move: id=%d, error=%v", id, err)
			handlers.RespondBadGateway(w, msgStoreRejected)

		default:
			h.logger.Error("PATCH /reservations/{id}/move - Failed to move reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/move - Reservation moved: id=%d, room_id=%d, operator=%s",
		id, result.Reservation.RoomID, operatorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
