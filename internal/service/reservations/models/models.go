package models

import (
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// ListReservationsRequest параметры выборки для таймлайна
type ListReservationsRequest struct {
	From   time.Time
	To     time.Time
	RoomID *int64
}

// ChildResponse ребенок в ответе API
type ChildResponse struct {
	Name        string  `json:"name,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Age         int     `json:"age"`
}

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID                int64           `json:"id"`
	RoomID            int64           `json:"roomId"`
	GuestID           *int64          `json:"guestId,omitempty"`
	GuestName         string          `json:"guestName"`
	CheckIn           string          `json:"checkIn"`
	CheckOut          string          `json:"checkOut"`
	Nights            int             `json:"nights"`
	Status            string          `json:"status"`
	Adults            int             `json:"adults"`
	Children          []ChildResponse `json:"children"`
	HasPets           bool            `json:"hasPets"`
	NeedsParking      bool            `json:"needsParking"`
	AdditionalCharges float64         `json:"additionalCharges"`
	TotalAmount       float64         `json:"totalAmount"`
	VATAmount         float64         `json:"vatAmount"`
	Notes             *string         `json:"notes,omitempty"`
	Pending           bool            `json:"pending"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	children := make([]ChildResponse, 0, len(r.Children))
	for _, c := range r.Children {
		child := ChildResponse{Name: c.Name, Age: c.AgeAt(r.CheckIn)}
		if c.DateOfBirth != nil {
			dob := c.DateOfBirth.Format(domain.DateFormat)
			child.DateOfBirth = &dob
		}
		children = append(children, child)
	}

	return &ReservationResponse{
		ID:                r.ID,
		RoomID:            r.RoomID,
		GuestID:           r.GuestID,
		GuestName:         r.GuestName,
		CheckIn:           r.CheckIn.Format(time.RFC3339),
		CheckOut:          r.CheckOut.Format(time.RFC3339),
		Nights:            r.Nights(),
		Status:            string(r.Status),
		Adults:            r.Adults,
		Children:          children,
		HasPets:           r.HasPets,
		NeedsParking:      r.NeedsParking,
		AdditionalCharges: r.AdditionalCharges,
		TotalAmount:       r.TotalAmount,
		VATAmount:         r.VATAmount,
		Notes:             r.Notes,
		Pending:           r.IsTemporary(),
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список
func FromDomainReservationList(items []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, 0, len(items)),
		Total:        len(items),
	}
	for _, r := range items {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}
	return resp
}
