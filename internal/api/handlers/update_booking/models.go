package update_booking

import (
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// UpdateRequest изменение статуса, заметок, доплат и флагов
type UpdateRequest struct {
	Status            *string  `json:"status,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	AdditionalCharges *float64 `json:"additionalCharges,omitempty"`
	HasPets           *bool    `json:"hasPets,omitempty"`
	NeedsParking      *bool    `json:"needsParking,omitempty"`
	Tier              string   `json:"tier,omitempty"` // при пересчете цены
}

// ToPatch конвертирует запрос в domain.ReservationPatch
func (r *UpdateRequest) ToPatch() (domain.ReservationPatch, error) {
	patch := domain.ReservationPatch{
		Notes:             r.Notes,
		AdditionalCharges: r.AdditionalCharges,
		HasPets:           r.HasPets,
		NeedsParking:      r.NeedsParking,
	}
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !status.IsValid() {
			return patch, fmt.Errorf("unknown status %q", *r.Status)
		}
		patch.Status = &status
	}
	if r.AdditionalCharges != nil && *r.AdditionalCharges < 0 {
		return patch, fmt.Errorf("additionalCharges cannot be negative")
	}
	if r.Notes != nil && len(*r.Notes) > domain.MaxNotesLength {
		return patch, fmt.Errorf("notes must be at most %d characters", domain.MaxNotesLength)
	}
	return patch, nil
}
