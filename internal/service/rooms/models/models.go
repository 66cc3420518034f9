package models

import "github.com/sokol-matija/hotel-inventory-sub003/internal/domain"

// RoomRulesResponse правила номера
type RoomRulesResponse struct {
	MinStayNights    int      `json:"minStayNights,omitempty"`
	FixedStayRate    *float64 `json:"fixedStayRate,omitempty"`
	BufferDays       int      `json:"bufferDays,omitempty"`
	IncludedServices []string `json:"includedServices,omitempty"`
}

// RoomResponse номер в ответе API
type RoomResponse struct {
	ID           int64              `json:"id"`
	Number       string             `json:"number"`
	Type         string             `json:"type"`
	Floor        int                `json:"floor"`
	MaxOccupancy int                `json:"maxOccupancy"`
	Premium      bool               `json:"premium"`
	Rates        map[string]float64 `json:"rates"`
	Rules        *RoomRulesResponse `json:"rules,omitempty"`
}

// RoomListResponse каталог
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// FromDomainRoom конвертирует доменную модель в ответ
func FromDomainRoom(r *domain.Room) *RoomResponse {
	rates := make(map[string]float64, len(r.Rates))
	for p, v := range r.Rates {
		rates[string(p)] = v
	}

	resp := &RoomResponse{
		ID:           r.ID,
		Number:       r.Number,
		Type:         string(r.Type),
		Floor:        r.Floor,
		MaxOccupancy: r.MaxOccupancy,
		Premium:      r.Premium,
		Rates:        rates,
	}
	if r.Rules != nil {
		services := make([]string, 0, len(r.Rules.IncludedServices))
		for _, s := range r.Rules.IncludedServices {
			services = append(services, string(s))
		}
		resp.Rules = &RoomRulesResponse{
			MinStayNights:    r.Rules.MinStayNights,
			FixedStayRate:    r.Rules.FixedStayRate,
			BufferDays:       r.Rules.BufferDays,
			IncludedServices: services,
		}
	}
	return resp
}

// FromDomainRoomList конвертирует каталог
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]*RoomResponse, 0, len(rooms)), Total: len(rooms)}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, FromDomainRoom(r))
	}
	return resp
}
