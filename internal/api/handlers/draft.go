package handlers

import (
	"fmt"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// GuestRequest гость в черновике; kind = "new" или "existing"
type GuestRequest struct {
	Kind      string `json:"kind"`
	GuestID   int64  `json:"guestId,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ToDomain конвертирует в domain.GuestRef
func (g *GuestRequest) ToDomain() (domain.GuestRef, error) {
	if g == nil {
		return nil, nil
	}
	switch domain.GuestKind(g.Kind) {
	case domain.GuestKindNew:
		return domain.NewGuestDraft{
			FirstName: g.FirstName,
			LastName:  g.LastName,
			Email:     g.Email,
			Phone:     g.Phone,
		}, nil
	case domain.GuestKindExisting:
		return domain.ExistingGuestRef{GuestID: g.GuestID, Name: g.Name}, nil
	default:
		return nil, fmt.Errorf("unknown guest kind %q", g.Kind)
	}
}

// ChildRequest ребенок: dateOfBirth (YYYY-MM-DD) или age
type ChildRequest struct {
	Name        string  `json:"name,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Age         int     `json:"age,omitempty"`
}

// ToDomainChildren конвертирует список детей
func ToDomainChildren(items []ChildRequest) ([]domain.Child, error) {
	children := make([]domain.Child, 0, len(items))
	for i, c := range items {
		child := domain.Child{Name: c.Name, Age: c.Age}
		if c.DateOfBirth != nil && *c.DateOfBirth != "" {
			dob, err := time.Parse(domain.DateFormat, *c.DateOfBirth)
			if err != nil {
				return nil, fmt.Errorf("children[%d].dateOfBirth: expected YYYY-MM-DD", i)
			}
			child.DateOfBirth = &dob
		}
		children = append(children, child)
	}
	return children, nil
}

// DraftRequest черновик бронирования (проверка и создание)
type DraftRequest struct {
	RoomID            int64          `json:"roomId"`
	CheckIn           string         `json:"checkIn"`
	CheckOut          string         `json:"checkOut"`
	Guest             *GuestRequest  `json:"guest"`
	Adults            int            `json:"adults"`
	Children          []ChildRequest `json:"children,omitempty"`
	HasPets           bool           `json:"hasPets"`
	NeedsParking      bool           `json:"needsParking"`
	AdditionalCharges float64        `json:"additionalCharges"`
	Tier              string         `json:"tier,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
}

// ToDomain конвертирует запрос в domain.BookingDraft.
// Пустые даты остаются нулевыми: их отсутствие сообщает валидатор вместе с остальными ошибками формы.
func (r *DraftRequest) ToDomain(clock StayClock) (*domain.BookingDraft, error) {
	var checkIn, checkOut time.Time
	var err error
	if r.CheckIn != "" {
		if checkIn, err = clock.CheckIn(r.CheckIn); err != nil {
			return nil, fmt.Errorf("checkIn: %w", err)
		}
	}
	if r.CheckOut != "" {
		if checkOut, err = clock.CheckOut(r.CheckOut); err != nil {
			return nil, fmt.Errorf("checkOut: %w", err)
		}
	}
	guest, err := r.Guest.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("guest: %w", err)
	}
	children, err := ToDomainChildren(r.Children)
	if err != nil {
		return nil, err
	}

	return &domain.BookingDraft{
		RoomID:            r.RoomID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Guest:             guest,
		Adults:            r.Adults,
		Children:          children,
		HasPets:           r.HasPets,
		NeedsParking:      r.NeedsParking,
		AdditionalCharges: r.AdditionalCharges,
		Tier:              r.Tier,
		Notes:             r.Notes,
	}, nil
}
