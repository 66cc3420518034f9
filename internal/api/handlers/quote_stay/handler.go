package quote_stay

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	quoteStay "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/quote_stay"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoomNotFound       = "room not found"
	msgUnknownTier        = "unknown pricing tier"
	msgPricing            = "price cannot be calculated for this stay"
)

type Handler struct {
	useCase QuoteStayUseCase
	clock   handlers.StayClock
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.clock)
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrRoomNotFound):
			h.logger.Warn("POST /quotes - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quoteStay.ErrUnknownTier):
			h.logger.Warn("POST /quotes - Unknown tier: %q", req.Tier)
			handlers.RespondBadRequest(w, msgUnknownTier)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quoteStay.ErrPricing):
			h.logger.Warn("POST /quotes - Pricing failed: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricing)

		default:
			h.logger.Error("POST /quotes - Failed to quote stay: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote calculated: room_id=%d, nights=%d, total=%.2f, cached=%t",
		req.RoomID, result.Breakdown.Nights, result.Breakdown.Total, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
