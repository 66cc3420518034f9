package delete_booking

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgNotFound             = "reservation not found"
	msgStoreRejected        = "deletion was not saved, the reservation has been restored"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}
	operatorID, _ := middleware.GetOperatorID(r.Context())

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCommitFailed):
			h.logger.Warn("DELETE /reservations/{id} - Store rejected deletion: id=%d, error=%v", id, err)
			handlers.RespondBadGateway(w, msgStoreRejected)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: id=%d, operator=%s", id, operatorID)
	w.WriteHeader(http.StatusNoContent)
}
