package list_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
)

const (
	msgMissingRange   = "from and to are required"
	msgInvalidParams  = "invalid query parameters"
	msgRangeTooLarge  = "date range is too large"
	msgInvalidRequest = "from must be before to"
)

type Handler struct {
	service ReservationService
	clock   handlers.StayClock
	logger  Logger
}

func NewHandler(service ReservationService, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		service: service,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: from, to, roomId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := h.clock.Date(q.Get("from"))
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := h.clock.Date(q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	if domain.DaysBetween(from, to) > domain.MaxQueryRangeDays {
		handlers.RespondBadRequest(w, msgRangeTooLarge)
		return
	}

	req := &models.ListReservationsRequest{From: from, To: to}
	if raw := q.Get("roomId"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid roomId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.RoomID = &roomID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
