package get_availability

import (
	"fmt"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	getAvailability "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID        int64    `json:"roomId"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	OccupiedDates []string `json:"occupiedDates"`
	CheckIn       *string  `json:"checkIn,omitempty"`
	CheckInFree   *bool    `json:"checkInFree,omitempty"`
	MaxCheckout   *string  `json:"maxCheckout,omitempty"`
}

// ToUseCaseRequest разбирает query параметры from, to, checkIn
func ToUseCaseRequest(clock handlers.StayClock, roomID int64, fromStr, toStr, checkInStr string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{RoomID: roomID}

	if fromStr != "" {
		from, err := clock.Date(fromStr)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = from
	}
	if toStr != "" {
		to, err := clock.Date(toStr)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.To = to
	}
	if checkInStr != "" {
		checkIn, err := clock.CheckIn(checkInStr)
		if err != nil {
			return nil, fmt.Errorf("checkIn: %w", err)
		}
		req.CheckIn = &checkIn
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		RoomID:        resp.RoomID,
		From:          resp.From.Format(domain.DateFormat),
		To:            resp.To.Format(domain.DateFormat),
		OccupiedDates: make([]string, 0, len(resp.OccupiedDates)),
		CheckInFree:   resp.CheckInFree,
	}
	for _, d := range resp.OccupiedDates {
		out.OccupiedDates = append(out.OccupiedDates, d.Format(domain.DateFormat))
	}
	if resp.CheckIn != nil {
		s := resp.CheckIn.Format(time.RFC3339)
		out.CheckIn = &s
	}
	if resp.MaxCheckout != nil {
		s := resp.MaxCheckout.Format(time.RFC3339)
		out.MaxCheckout = &s
	}
	return out
}
