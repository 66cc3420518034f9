package seasons

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

var (
	// ErrNoSeasonalPeriod дата не попала ни в один диапазон таблицы сезонов
	ErrNoSeasonalPeriod = errors.New("seasons: no seasonal period matches date")

	// ErrOverlappingPeriods дата попала в несколько периодов сразу
	ErrOverlappingPeriods = errors.New("seasons: date matches more than one seasonal period")

	// ErrInvalidRange диапазон содержит несуществующую дату
	ErrInvalidRange = errors.New("seasons: invalid month-day range")
)

// ConfigurationError the season table does not partition the year
type ConfigurationError struct {
	Date    time.Time
	Matches []domain.SeasonalPeriod
	err     error
}

func (e *ConfigurationError) Error() string {
	day := e.Date.Format("Jan 02")
	if len(e.Matches) == 0 {
		return fmt.Sprintf("%v: %s", e.err, day)
	}
	names := make([]string, 0, len(e.Matches))
	for _, p := range e.Matches {
		names = append(names, string(p))
	}
	return fmt.Sprintf("%v: %s (%s)", e.err, day, strings.Join(names, ", "))
}

func (e *ConfigurationError) Unwrap() error {
	return e.err
}
