package quote_stay

import (
	"context"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
)

// RoomCatalog каталог номеров
type RoomCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// PriceCalculator калькулятор стоимости проживания
type PriceCalculator interface {
	TierFactor(name string) (float64, error)
	Calculate(in pricing.QuoteInput) (*domain.PricingBreakdown, error)
	Fingerprint() string
}

// QuoteCache кэш рассчитанных цен (может отсутствовать)
type QuoteCache interface {
	Get(ctx context.Context, key string) (*domain.PricingBreakdown, bool)
	Set(ctx context.Context, key string, breakdown *domain.PricingBreakdown)
}

// Metrics счетчики расчетов
type Metrics interface {
	IncQuote(period string)
	IncQuoteCache(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
