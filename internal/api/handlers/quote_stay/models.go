package quote_stay

import (
	"fmt"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	roomModels "github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms/models"
	quoteStay "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/quote_stay"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	RoomID            int64                   `json:"roomId"`
	CheckIn           string                  `json:"checkIn"`
	CheckOut          string                  `json:"checkOut"`
	Adults            int                     `json:"adults"`
	Children          []handlers.ChildRequest `json:"children,omitempty"`
	HasPets           bool                    `json:"hasPets"`
	NeedsParking      bool                    `json:"needsParking"`
	AdditionalCharges float64                 `json:"additionalCharges"`
	Tier              string                  `json:"tier,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Room      *roomModels.RoomResponse `json:"room"`
	Tier      string                   `json:"tier"`
	Breakdown *domain.PricingBreakdown `json:"breakdown"`
	Cached    bool                     `json:"cached"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(clock handlers.StayClock) (*quoteStay.Request, error) {
	checkIn, err := clock.CheckIn(r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := clock.CheckOut(r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}
	children, err := handlers.ToDomainChildren(r.Children)
	if err != nil {
		return nil, err
	}

	return &quoteStay.Request{
		RoomID:            r.RoomID,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Adults:            r.Adults,
		Children:          children,
		HasPets:           r.HasPets,
		NeedsParking:      r.NeedsParking,
		AdditionalCharges: r.AdditionalCharges,
		Tier:              r.Tier,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		Room:      roomModels.FromDomainRoom(resp.Room),
		Tier:      resp.Tier,
		Breakdown: resp.Breakdown,
		Cached:    resp.Cached,
	}
}
