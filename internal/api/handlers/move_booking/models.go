package move_booking

import (
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
	moveBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/move_booking"
)

// MoveRequest перенос: пустые поля оставляют текущие значения
type MoveRequest struct {
	RoomID    int64  `json:"roomId,omitempty"`
	CheckIn   string `json:"checkIn,omitempty"`
	CheckOut  string `json:"checkOut,omitempty"`
	Tier      string `json:"tier,omitempty"`
	KeepPrice bool   `json:"keepPrice"`
}

// MoveResponse HTTP response model
type MoveResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Quote       *domain.PricingBreakdown    `json:"quote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveRequest) ToUseCaseRequest(clock handlers.StayClock, operatorID string, id int64) (*moveBooking.Request, error) {
	req := &moveBooking.Request{
		OperatorID:    operatorID,
		ReservationID: id,
		RoomID:        r.RoomID,
		Tier:          r.Tier,
		KeepPrice:     r.KeepPrice,
	}
	if r.CheckIn != "" {
		checkIn, err := clock.CheckIn(r.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("checkIn: %w", err)
		}
		req.CheckIn = checkIn
	}
	if r.CheckOut != "" {
		checkOut, err := clock.CheckOut(r.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("checkOut: %w", err)
		}
		req.CheckOut = checkOut
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveBooking.Response) *MoveResponse {
	return &MoveResponse{
		Reservation: models.FromDomainReservation(resp.Reservation),
		Quote:       resp.Quote,
	}
}
