package get_reservation

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgNotFound             = "reservation not found"
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

// Handle GET /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /reservations/{id} - Failed to get reservation: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
