package create_booking

import (
	"errors"
	"net/http"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	createBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRoomNotFound       = "room not found"
	msgStoreRejected      = "reservation was not saved, the change has been rolled back"
)

type Handler struct {
	useCase CreateBookingUseCase
	clock   handlers.StayClock
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, clock handlers.StayClock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, _ := middleware.GetOperatorID(r.Context())

	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в черновик (с парсингом дат)
	draft, err := req.ToDomain(h.clock)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{OperatorID: operatorID, Draft: draft})
	if err != nil {
		if errs, ok := domain.AsValidationErrors(err); ok {
			h.logger.Warn("POST /reservations - Draft rejected: operator=%s, room_id=%d, errors=%d",
				operatorID, req.RoomID, len(errs))
			handlers.RespondValidationErrors(w, errs)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrStoreRejected):
			h.logger.Warn("POST /reservations - Store rejected reservation: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadGateway(w, msgStoreRejected)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: operator=%s, room_id=%d, error=%v",
				operatorID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, room_id=%d, operator=%s",
		result.Reservation.ID, result.Reservation.RoomID, operatorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
