package get_rooms

import (
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms/models"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms := h.service.List(r.Context())

	h.logger.Info("GET /rooms - Room catalog returned: count=%d", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRoomList(rooms))
}
