package move_booking

import (
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// Request перенос или изменение длительности бронирования.
// Нулевые поля сохраняют текущие значения.
type Request struct {
	OperatorID    string
	ReservationID int64
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	Tier          string // для пересчета цены
	KeepPrice     bool   // не пересчитывать суммы
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	Reservation *domain.Reservation
	Quote       *domain.PricingBreakdown // nil при KeepPrice
}
