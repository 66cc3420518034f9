package selection

import (
	"fmt"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	rangeSelection "github.com/sokol-matija/hotel-inventory-sub003/internal/selection"
)

// Типы событий таймлайна
const (
	EventClick  = "click"
	EventHover  = "hover"
	EventCancel = "cancel"
	EventReset  = "reset"
)

// EventRequest событие таймлайна; half = "am" или "pm"
type EventRequest struct {
	Type   string `json:"type"`
	RoomID int64  `json:"roomId,omitempty"`
	Date   string `json:"date,omitempty"`
	Half   string `json:"half,omitempty"`
}

// Cell ячейка, на которую указывает событие
func (r *EventRequest) Cell(clock handlers.StayClock) (rangeSelection.Cell, error) {
	day, err := clock.Date(r.Date)
	if err != nil {
		return 0, err
	}
	switch r.Half {
	case "", "am":
	case "pm":
		day = day.Add(12 * time.Hour)
	default:
		return 0, fmt.Errorf("half must be am or pm, got %q", r.Half)
	}
	return rangeSelection.CellOf(day), nil
}

// RangeResponse выбранный или предварительный период
type RangeResponse struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
}

// StateResponse состояние машины выбора
type StateResponse struct {
	State     string         `json:"state"`
	Preview   *RangeResponse `json:"preview,omitempty"`
	Committed *RangeResponse `json:"committed,omitempty"`
}

func fromRange(r rangeSelection.Range) *RangeResponse {
	return &RangeResponse{
		RoomID:   r.RoomID,
		CheckIn:  r.CheckIn.Format(time.RFC3339),
		CheckOut: r.CheckOut.Format(time.RFC3339),
		Nights:   r.Nights(),
	}
}

// FromMachine снимок состояния машины
func FromMachine(m *rangeSelection.Machine) *StateResponse {
	resp := &StateResponse{State: string(m.State())}
	if r, ok := m.Preview(); ok {
		resp.Preview = fromRange(r)
	}
	if r, ok := m.Committed(); ok {
		resp.Committed = fromRange(r)
	}
	return resp
}
