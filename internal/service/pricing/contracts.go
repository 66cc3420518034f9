package pricing

import (
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// SeasonClassifier классификатор сезонов
type SeasonClassifier interface {
	Classify(date time.Time) (domain.SeasonalPeriod, error)
}
