package create_booking

import "github.com/sokol-matija/hotel-inventory-sub003/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	OperatorID string // ID оператора ресепшена (для логирования)
	Draft      *domain.BookingDraft
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Quote       *domain.PricingBreakdown
}
