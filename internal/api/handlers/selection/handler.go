package selection

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	rangeSelection "github.com/sokol-matija/hotel-inventory-sub003/internal/selection"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownEvent       = "unknown event type"
	msgNotAllowed         = "event is not allowed in the current state"
)

type Handler struct {
	sessions Sessions
	clock    handlers.StayClock
	logger   Logger
}

func NewHandler(sessions Sessions, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		clock:    clock,
		logger:   logger,
	}
}

// Get GET /api/v1/selection
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := middleware.GetOperatorID(r.Context())
	handlers.RespondJSON(w, http.StatusOK, FromMachine(h.sessions.GetOrCreate(operatorID)))
}

// Delete DELETE /api/v1/selection
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := middleware.GetOperatorID(r.Context())
	h.sessions.Delete(operatorID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleEvent POST /api/v1/selection/events
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := middleware.GetOperatorID(r.Context())

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	m := h.sessions.GetOrCreate(operatorID)

	// 1. События без ячейки
	switch req.Type {
	case EventCancel:
		if err := m.Cancel(); err != nil {
			handlers.RespondConflict(w, msgNotAllowed)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, FromMachine(m))
		return
	case EventReset:
		m.Reset()
		handlers.RespondJSON(w, http.StatusOK, FromMachine(m))
		return
	case EventClick, EventHover:
	default:
		handlers.RespondBadRequest(w, msgUnknownEvent)
		return
	}

	// 2. События с ячейкой
	cell, err := req.Cell(h.clock)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if req.Type == EventHover {
		m.Hover(req.RoomID, cell)
		handlers.RespondJSON(w, http.StatusOK, FromMachine(m))
		return
	}

	state, err := m.Click(req.RoomID, cell)
	if err != nil {
		if errors.Is(err, rangeSelection.ErrTransitionNotAllowed) {
			handlers.RespondConflict(w, msgNotAllowed)
			return
		}
		h.logger.Error("POST /selection/events - Click failed: operator=%s, error=%v", operatorID, err)
		handlers.RespondInternalError(w)
		return
	}

	if state == rangeSelection.StateCommitted {
		if rng, ok := m.Committed(); ok {
			h.logger.Info("POST /selection/events - Range selected: operator=%s, room_id=%d, nights=%d",
				operatorID, rng.RoomID, rng.Nights())
		}
	}
	handlers.RespondJSON(w, http.StatusOK, FromMachine(m))
}
