package get_availability

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	getAvailability "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/get_availability"
)

const (
	msgInvalidRoomID  = "invalid room id"
	msgRoomNotFound   = "room not found"
	msgRangeTooLarge  = "date range is too large"
	msgInvalidRequest = "invalid query parameters"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	clock   handlers.StayClock
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: from, to, checkIn (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	q := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(h.clock, roomID, q.Get("from"), q.Get("to"), q.Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailability.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
