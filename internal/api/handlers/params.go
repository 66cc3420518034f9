package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// PathID извлекает положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid %s: must not be zero", name)
	}
	return id, nil
}

// StayClock переводит даты из запросов в моменты заезда и выезда отеля.
// "2025-07-20" дает 14:00 для заезда и 10:00 для выезда; RFC3339 принимается как есть.
type StayClock struct {
	Location     *time.Location
	CheckInHour  int
	CheckOutHour int
}

// NewStayClock создает StayClock
func NewStayClock(loc *time.Location, checkInHour, checkOutHour int) StayClock {
	if loc == nil {
		loc = time.UTC
	}
	return StayClock{Location: loc, CheckInHour: checkInHour, CheckOutHour: checkOutHour}
}

func (c StayClock) CheckIn(s string) (time.Time, error) {
	return c.parse(s, c.CheckInHour)
}

func (c StayClock) CheckOut(s string) (time.Time, error) {
	return c.parse(s, c.CheckOutHour)
}

// Date полночь указанного дня
func (c StayClock) Date(s string) (time.Time, error) {
	return c.parse(s, 0)
}

func (c StayClock) parse(s string, hour int) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(c.Location), nil
	}
	day, err := time.ParseInLocation(domain.DateFormat, s, c.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", s)
	}
	return day.Add(time.Duration(hour) * time.Hour), nil
}
