package operations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/optimistic"
)

const (
	msgNotFound   = "operation not found"
	msgNotPending = "operation is not pending"
)

// Handler отладочные маршруты реестра оптимистичных операций
type Handler struct {
	coordinator Coordinator
	logger      Logger
}

func NewHandler(coordinator Coordinator, logger Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// List GET /api/v1/operations
// Query params: pending=true, только незавершенные
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ops := h.coordinator.Operations()
	if r.URL.Query().Get("pending") == "true" {
		ops = h.coordinator.PendingOperations()
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainOperationList(ops))
}

// Stats GET /api/v1/operations/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.coordinator.Statistics())
}

// Rollback POST /api/v1/operations/{operationId}/rollback
func (h *Handler) Rollback(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["operationId"]
	operatorID, _ := middleware.GetOperatorID(r.Context())

	if err := h.coordinator.ForceRollback(id); err != nil {
		switch {
		case errors.Is(err, optimistic.ErrOperationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, optimistic.ErrOperationNotPending):
			handlers.RespondConflict(w, msgNotPending)
		default:
			h.logger.Error("POST /operations/{id}/rollback - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Warn("POST /operations/{id}/rollback - Operation rolled back by operator: id=%s, operator=%s", id, operatorID)
	w.WriteHeader(http.StatusNoContent)
}

// RollbackAll POST /api/v1/operations/rollback-all
func (h *Handler) RollbackAll(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := middleware.GetOperatorID(r.Context())
	n := h.coordinator.RollbackAllPending()

	h.logger.Warn("POST /operations/rollback-all - %d operations rolled back by operator=%s", n, operatorID)
	handlers.RespondJSON(w, http.StatusOK, RollbackAllResponse{RolledBack: n})
}
