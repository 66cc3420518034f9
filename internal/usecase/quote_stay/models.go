package quote_stay

import (
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// Request модель запроса на расчет стоимости проживания
type Request struct {
	RoomID            int64
	CheckIn           time.Time
	CheckOut          time.Time
	Adults            int
	Children          []domain.Child // возраст по дате рождения, иначе по Age
	HasPets           bool
	NeedsParking      bool
	AdditionalCharges float64
	Tier              string // пусто = standard
}

// Response модель ответа с расчетом
type Response struct {
	Room      *domain.Room
	Tier      string
	Breakdown *domain.PricingBreakdown
	Cached    bool
}
