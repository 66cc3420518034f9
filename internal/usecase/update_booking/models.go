package update_booking

import "github.com/sokol-matija/hotel-inventory-sub003/internal/domain"

// Request изменение статуса, заметок, доплат и флагов бронирования
type Request struct {
	OperatorID    string
	ReservationID int64
	Patch         domain.ReservationPatch
	Tier          string // для пересчета цены
}

// Response модель ответа с измененным бронированием
type Response struct {
	Reservation *domain.Reservation
	Quote       *domain.PricingBreakdown // nil, если суммы не пересчитывались
}
