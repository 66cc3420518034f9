package validate_booking

import "github.com/sokol-matija/hotel-inventory-sub003/internal/domain"

// Request модель запроса на проверку черновика бронирования
type Request struct {
	Draft *domain.BookingDraft
}

// Response результат проверки: все найденные ошибки и расчет цены, если он возможен
type Response struct {
	Valid  bool
	Errors domain.ValidationErrors
	Quote  *domain.PricingBreakdown // nil, если цену посчитать нельзя
	Room   *domain.Room
}
