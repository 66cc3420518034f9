package create_booking

import (
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
	createBooking "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/create_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Quote       *domain.PricingBreakdown    `json:"quote"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Reservation: models.FromDomainReservation(resp.Reservation),
		Quote:       resp.Quote,
	}
}
