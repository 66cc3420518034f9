package validate_booking

import (
	"fmt"
	"strings"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
)

// Validate runs every rule against the draft and returns all violations, plus the
// quote when pricing succeeded. It never stops at the first error and has no side
// effects, so the order of the returned errors carries no meaning.
func (uc *UseCase) Validate(draft *domain.BookingDraft, room *domain.Room) (domain.ValidationErrors, *domain.PricingBreakdown) {
	var errs domain.ValidationErrors

	formOK := validateForm(draft, room, &errs)
	datesOK := datesValid(draft)

	if room != nil && datesOK {
		uc.validateConflicts(draft, room, &errs)
		validateMinStay(draft, room, &errs)
		uc.validateBuffer(draft, room, &errs)
	}
	if room != nil {
		validateCapacity(draft, room, &errs)
	}

	var quote *domain.PricingBreakdown
	if room != nil && formOK {
		quote = uc.price(draft, room, &errs)
	}
	return errs, quote
}

func datesValid(draft *domain.BookingDraft) bool {
	return !draft.CheckIn.IsZero() && !draft.CheckOut.IsZero() && domain.StaySlotsValid(draft.CheckIn, draft.CheckOut)
}

// validateForm проверяет поля формы; возвращает false, если расчет цены невозможен
func validateForm(draft *domain.BookingDraft, room *domain.Room, errs *domain.ValidationErrors) bool {
	ok := true
	invalid := func(field, message string) {
		errs.Add(domain.ValidationFormInvalid, message, map[string]interface{}{"field": field})
		ok = false
	}

	if draft.RoomID <= 0 || room == nil {
		invalid("roomId", "Room is required")
	}

	switch {
	case draft.CheckIn.IsZero():
		invalid("checkIn", "Check-in date is required")
	case draft.CheckOut.IsZero():
		invalid("checkOut", "Check-out date is required")
	case !domain.IsAfternoon(draft.CheckIn):
		invalid("checkIn", "Check-in must be at 12:00 or later")
	case domain.IsAfternoon(draft.CheckOut):
		invalid("checkOut", "Check-out must be before 12:00")
	case domain.HalfDay(draft.CheckIn) >= domain.HalfDay(draft.CheckOut):
		invalid("checkOut", "Check-out must be on a later day than check-in")
	}

	if draft.Guest == nil || !draft.Guest.IsComplete() {
		invalid("guest", "Guest name is required")
	} else if len(draft.Guest.DisplayName()) > domain.MaxGuestNameLength {
		invalid("guest", fmt.Sprintf("Guest name must be at most %d characters", domain.MaxGuestNameLength))
	}

	if draft.Adults < domain.MinAdults {
		invalid("adults", fmt.Sprintf("At least %d adult is required", domain.MinAdults))
	}

	for i, child := range draft.Children {
		field := fmt.Sprintf("children[%d].dateOfBirth", i)
		if child.DateOfBirth == nil {
			invalid(field, fmt.Sprintf("Date of birth is required for child %s", childLabel(child, i)))
			continue
		}
		if !draft.CheckIn.IsZero() && child.DateOfBirth.After(draft.CheckIn) {
			invalid(field, fmt.Sprintf("Child %s is born after check-in", childLabel(child, i)))
		}
	}

	if draft.AdditionalCharges < 0 {
		invalid("additionalCharges", "Additional charges must not be negative")
	}
	if draft.Notes != nil && len(*draft.Notes) > domain.MaxNotesLength {
		// заметки не влияют на цену
		errs.Add(domain.ValidationFormInvalid,
			fmt.Sprintf("Notes must be at most %d characters", domain.MaxNotesLength),
			map[string]interface{}{"field": "notes"})
	}
	return ok
}

func childLabel(c domain.Child, i int) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i+1)
}

func (uc *UseCase) validateConflicts(draft *domain.BookingDraft, room *domain.Room, errs *domain.ValidationErrors) {
	conflict, found := uc.index.HasConflict(room.ID, draft.CheckIn, draft.CheckOut, draft.ExcludeReservationID)
	if !found {
		return
	}
	errs.Add(domain.ValidationDateConflict,
		fmt.Sprintf("Room %s is already booked by %s (reservation #%d) from %s to %s",
			room.Number, guestLabel(conflict), conflict.ID,
			conflict.CheckIn.Format(domain.DateFormat), conflict.CheckOut.Format(domain.DateFormat)),
		map[string]interface{}{
			"reservationId": conflict.ID,
			"guestName":     conflict.GuestName,
			"checkIn":       conflict.CheckIn.Format(domain.DateTimeFormat),
			"checkOut":      conflict.CheckOut.Format(domain.DateTimeFormat),
		})
}

func guestLabel(r *domain.Reservation) string {
	if r.Status == domain.StatusRoomClosure {
		return "a room closure"
	}
	if strings.TrimSpace(r.GuestName) == "" {
		return "another guest"
	}
	return r.GuestName
}

func validateMinStay(draft *domain.BookingDraft, room *domain.Room, errs *domain.ValidationErrors) {
	minStay := room.MinStayNights()
	nights := domain.NightsBetween(draft.CheckIn, draft.CheckOut)
	if minStay > 0 && nights < minStay {
		errs.Add(domain.ValidationRoomRuleViolation,
			fmt.Sprintf("Room %s requires a minimum stay of %d nights", room.Number, minStay),
			map[string]interface{}{"rule": "min_stay", "minStayNights": minStay, "nights": nights})
	}
}

// validateBuffer проверяет пустые дни между выездом предыдущего гостя и заездом следующего
func (uc *UseCase) validateBuffer(draft *domain.BookingDraft, room *domain.Room, errs *domain.ValidationErrors) {
	buffer := room.BufferDays()
	if buffer <= 0 {
		return
	}
	start, end := domain.HalfDay(draft.CheckIn), domain.HalfDay(draft.CheckOut)

	for _, r := range uc.index.ForRoom(room.ID) {
		if r.ID == draft.ExcludeReservationID || !r.IsActive() {
			continue
		}
		rStart, rEnd := r.Slots()

		var gap int
		switch {
		case rEnd <= start:
			gap = domain.DaysBetween(r.CheckOut, draft.CheckIn)
		case rStart >= end:
			gap = domain.DaysBetween(draft.CheckOut, r.CheckIn)
		default:
			// пересечение уже отмечено как date_conflict
			continue
		}
		if gap < buffer {
			errs.Add(domain.ValidationRoomRuleViolation,
				fmt.Sprintf("Room %s requires %d empty days between stays (reservation #%d leaves %d)",
					room.Number, buffer, r.ID, gap),
				map[string]interface{}{"rule": "buffer_days", "bufferDays": buffer, "reservationId": r.ID, "gapDays": gap})
		}
	}
}

func validateCapacity(draft *domain.BookingDraft, room *domain.Room, errs *domain.ValidationErrors) {
	guests := draft.GuestCount()
	if room.MaxOccupancy > 0 && guests > room.MaxOccupancy {
		errs.Add(domain.ValidationCapacityViolation,
			fmt.Sprintf("Room %s fits at most %d guests, %d requested", room.Number, room.MaxOccupancy, guests),
			map[string]interface{}{"maxOccupancy": room.MaxOccupancy, "guests": guests})
	}
}

func (uc *UseCase) price(draft *domain.BookingDraft, room *domain.Room, errs *domain.ValidationErrors) *domain.PricingBreakdown {
	factor, err := uc.pricer.TierFactor(draft.Tier)
	if err != nil {
		errs.Add(domain.ValidationPricingError, err.Error(), map[string]interface{}{"tier": draft.Tier})
		return nil
	}

	quote, err := uc.pricer.Calculate(pricing.QuoteInput{
		Room:              room,
		CheckIn:           draft.CheckIn,
		CheckOut:          draft.CheckOut,
		Adults:            draft.Adults,
		Children:          draft.Children,
		HasPets:           draft.HasPets,
		NeedsParking:      draft.NeedsParking,
		AdditionalCharges: draft.AdditionalCharges,
		TierFactor:        factor,
	})
	if err != nil {
		errs.Add(domain.ValidationPricingError,
			fmt.Sprintf("Price cannot be calculated: %v", err),
			map[string]interface{}{"roomId": room.ID})
		return nil
	}
	return quote
}
