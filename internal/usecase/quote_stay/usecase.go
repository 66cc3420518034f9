package quote_stay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms"
)

// UseCase use case для расчета стоимости проживания
type UseCase struct {
	rooms   RoomCatalog
	pricer  PriceCalculator
	cache   QuoteCache
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case; cache и metrics могут быть nil
func NewUseCase(
	rooms RoomCatalog,
	pricer PriceCalculator,
	cache QuoteCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rooms:   rooms,
		pricer:  pricer,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteStay: room=%d, checkIn=%s, checkOut=%s, adults=%d, children=%d, tier=%q",
		req.RoomID, req.CheckIn.Format(domain.DateTimeFormat), req.CheckOut.Format(domain.DateTimeFormat),
		req.Adults, len(req.Children), req.Tier)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			uc.logger.Warn("QuoteStay: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuoteStay: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Коэффициент ценового уровня
	tier := strings.ToLower(strings.TrimSpace(req.Tier))
	if tier == "" {
		tier = pricing.StandardTier
	}
	factor, err := uc.pricer.TierFactor(tier)
	if err != nil {
		uc.logger.Warn("QuoteStay: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTier, tier)
	}

	// 4. Проверяем кэш
	key := cacheKey(room, req, tier, uc.pricer.Fingerprint())
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, key); ok {
			uc.observeCache(true)
			uc.logger.Info("QuoteStay: cache hit for room=%d, total=%.2f", room.ID, cached.Total)
			return &Response{Room: room, Tier: tier, Breakdown: cached, Cached: true}, nil
		}
		uc.observeCache(false)
	}

	// 5. Расчет
	breakdown, err := uc.pricer.Calculate(pricing.QuoteInput{
		Room:              room,
		CheckIn:           req.CheckIn,
		CheckOut:          req.CheckOut,
		Adults:            req.Adults,
		Children:          req.Children,
		HasPets:           req.HasPets,
		NeedsParking:      req.NeedsParking,
		AdditionalCharges: req.AdditionalCharges,
		TierFactor:        factor,
	})
	if err != nil {
		uc.logger.Warn("QuoteStay: pricing failed for room=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPricing, err)
	}

	// 6. Сохраняем в кэш
	if uc.cache != nil {
		uc.cache.Set(ctx, key, breakdown)
	}
	if uc.metrics != nil {
		uc.metrics.IncQuote(string(breakdown.SeasonalPeriod))
	}

	uc.logger.Info("QuoteStay: room=%d, period=%s, nights=%d, total=%.2f",
		room.ID, breakdown.SeasonalPeriod, breakdown.Nights, breakdown.Total)
	return &Response{Room: room, Tier: tier, Breakdown: breakdown}, nil
}

func (uc *UseCase) observeCache(hit bool) {
	if uc.metrics != nil {
		uc.metrics.IncQuoteCache(hit)
	}
}
