package quote_stay

import (
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !domain.StaySlotsValid(req.CheckIn, req.CheckOut) {
		return fmt.Errorf("%w: checkIn must be at 12:00 or later and checkOut before 12:00 of a later day", ErrInvalidInput)
	}

	if domain.DaysBetween(req.CheckIn, req.CheckOut) > domain.MaxQueryRangeDays {
		return fmt.Errorf("%w: stay must not exceed %d days", ErrInvalidInput, domain.MaxQueryRangeDays)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	for i, c := range req.Children {
		if c.DateOfBirth == nil && c.Age < 0 {
			return fmt.Errorf("%w: children[%d] age must not be negative", ErrInvalidInput, i)
		}
	}

	if req.AdditionalCharges < 0 {
		return fmt.Errorf("%w: additionalCharges must not be negative", ErrInvalidInput)
	}

	return nil
}
