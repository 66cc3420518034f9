package validate_booking

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	validateBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoomNotFound       = "room not found"
)

// ValidationResponse результат проверки черновика
type ValidationResponse struct {
	Valid  bool                            `json:"valid"`
	Errors []domain.BookingValidationError `json:"errors"`
	Quote  *domain.PricingBreakdown        `json:"quote,omitempty"`
}

type Handler struct {
	useCase ValidateBookingUseCase
	clock   handlers.StayClock
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/validate
// Ошибки проверки возвращаются с кодом 200: это ответ, а не сбой запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := req.ToDomain(h.clock)
	if err != nil {
		h.logger.Warn("POST /reservations/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &validateBooking.Request{Draft: draft})
	if err != nil {
		switch {
		case errors.Is(err, validateBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, validateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /reservations/validate - Failed to validate draft: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	errs := result.Errors
	if errs == nil {
		errs = domain.ValidationErrors{}
	}
	handlers.RespondJSON(w, http.StatusOK, ValidationResponse{
		Valid:  result.Valid,
		Errors: errs,
		Quote:  result.Quote,
	})
}
