// Package pricing рассчитывает стоимость проживания с разбивкой по статьям.
package pricing

import (
	"fmt"
	"strings"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/money"
)

// Calculator детерминированный калькулятор цены без побочных эффектов
type Calculator struct {
	classifier  SeasonClassifier
	cfg         Config
	fingerprint string
}

// NewCalculator создает калькулятор. Нулевые поля cfg заменяются значениями DefaultConfig.
func NewCalculator(classifier SeasonClassifier, cfg Config) *Calculator {
	def := DefaultConfig()
	if cfg.AccommodationVATRate == 0 {
		cfg.AccommodationVATRate = def.AccommodationVATRate
	}
	if cfg.ServicesVATRate == 0 {
		cfg.ServicesVATRate = def.ServicesVATRate
	}
	if cfg.ShortStayNights == 0 {
		cfg.ShortStayNights = def.ShortStayNights
	}
	if cfg.Tiers == nil {
		cfg.Tiers = def.Tiers
	}
	return &Calculator{classifier: classifier, cfg: cfg, fingerprint: cfg.Fingerprint()}
}

// Fingerprint идентифицирует действующий конфиг; при другом конфиге цены другие
func (c *Calculator) Fingerprint() string {
	return c.fingerprint
}

// TierFactor возвращает коэффициент ценового уровня; пустое имя означает базовый уровень
func (c *Calculator) TierFactor(name string) (float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = StandardTier
	}
	factor, ok := c.cfg.Tiers[name]
	if !ok {
		if name == StandardTier {
			return 1.0, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownTier, name)
	}
	return factor, nil
}

// Calculate выполняет каскад расчета:
//  1. количество ночей
//  2. сезон дня заезда (все проживание считается по нему)
//  3. базовый тариф x коэффициент уровня
//  4. проживание всех гостей, детские скидки по возрастным группам
//  5. надбавка за короткое проживание на сумму после скидок
//  6. туристический налог за гостя за ночь
//  7. НДС: включен в проживание, сверху на доп. услуги
//  8. животные, парковка и дополнительные начисления
//  9. итого
//
// Для номера с фиксированной ценой за проживание шаги 3 и 4 пропускаются.
func (c *Calculator) Calculate(in QuoteInput) (*domain.PricingBreakdown, error) {
	if in.Room == nil {
		return nil, ErrRoomRequired
	}
	if in.Adults < domain.MinAdults {
		return nil, ErrInvalidOccupancy
	}
	if in.AdditionalCharges < 0 {
		return nil, ErrInvalidCharges
	}

	// 1. Количество ночей
	nights := domain.NightsBetween(in.CheckIn, in.CheckOut)
	if nights < 1 {
		return nil, ErrInvalidStayLength
	}

	// 2. Сезон по дню заезда
	period, err := c.classifier.Classify(in.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeasonLookup, err)
	}

	b := &domain.PricingBreakdown{
		Nights:         nights,
		SeasonalPeriod: period,
		TaxSeason:      period.TaxSeason(),
	}

	// 3-4. Проживание
	if in.Room.Rules.HasFixedRate() {
		b.FixedRate = true
		b.BaseRate = money.Round2(*in.Room.Rules.FixedStayRate)
		b.Subtotal = b.BaseRate
	} else {
		if err := c.accommodation(b, in, period); err != nil {
			return nil, err
		}
	}

	// 5. Надбавка за короткое проживание
	discounted := money.Sum(b.Subtotal, -b.TotalDiscounts)
	if nights < c.cfg.ShortStayNights {
		b.ShortStaySupplement = money.Round2(discounted * c.cfg.ShortStaySupplementRate)
	}
	b.AccommodationTotal = money.Sum(discounted, b.ShortStaySupplement)

	// 6. Туристический налог
	b.TourismTax = c.tourismTax(in, b.TaxSeason, nights)

	// 7. НДС, включенный в проживание
	b.AccommodationVAT = money.Round2(b.AccommodationTotal - b.AccommodationTotal/(1+c.cfg.AccommodationVATRate))

	// 8. Доп. услуги: цены нетто, НДС сверху
	var petVAT, parkingVAT float64
	if in.HasPets && !in.Room.Rules.Includes(domain.ServicePet) {
		petVAT = money.Round2(c.cfg.PetFee * c.cfg.ServicesVATRate)
		b.PetFee = money.Sum(money.Round2(c.cfg.PetFee), petVAT)
	}
	if in.NeedsParking && !in.Room.Rules.Includes(domain.ServiceParking) {
		net := money.Round2(c.cfg.ParkingFeePerNight * float64(nights))
		parkingVAT = money.Round2(net * c.cfg.ServicesVATRate)
		b.ParkingFee = money.Sum(net, parkingVAT)
	}
	b.ServicesVAT = money.Sum(petVAT, parkingVAT)
	b.VATAmount = money.Sum(b.AccommodationVAT, b.ServicesVAT)
	b.AdditionalCharges = money.Round2(in.AdditionalCharges)

	// 9. Итого
	b.Total = money.Sum(b.AccommodationTotal, b.TourismTax, b.PetFee, b.ParkingFee, b.AdditionalCharges)

	return b, nil
}

func (c *Calculator) accommodation(b *domain.PricingBreakdown, in QuoteInput, period domain.SeasonalPeriod) error {
	rate, ok := in.Room.Rates.For(period)
	if !ok {
		return fmt.Errorf("%w: room %s period %s", ErrRateNotFound, in.Room.Number, period)
	}

	factor := in.TierFactor
	if factor < 0 {
		return ErrInvalidTier
	}
	if factor == 0 {
		factor = 1.0
	}

	b.BaseRate = money.Round2(rate * factor)
	perGuest := b.BaseRate * float64(b.Nights)
	guests := in.Adults + len(in.Children)
	b.Subtotal = money.Round2(perGuest * float64(guests))

	var infants, young, children float64
	for _, child := range in.Children {
		band := domain.BandForAge(child.AgeAt(in.CheckIn))
		discount := perGuest * (1 - band.Multiplier())
		switch band {
		case domain.BandInfant:
			infants += discount
		case domain.BandYoungChild:
			young += discount
		case domain.BandChild:
			children += discount
		}
	}
	b.Discounts = domain.DiscountBreakdown{
		Infants:       money.Round2(infants),
		YoungChildren: money.Round2(young),
		Children:      money.Round2(children),
	}
	b.TotalDiscounts = b.Discounts.Total()
	return nil
}

// tourismTax: до 12 лет бесплатно, 12-17 половина, взрослые полностью
func (c *Calculator) tourismTax(in QuoteInput, season domain.TaxSeason, nights int) float64 {
	rate := c.cfg.TourismTaxLow
	if season == domain.TaxSeasonHigh {
		rate = c.cfg.TourismTaxHigh
	}

	units := float64(in.Adults)
	for _, child := range in.Children {
		age := child.AgeAt(in.CheckIn)
		switch {
		case age < domain.TourismTaxExemptBelowAge:
		case age < domain.TourismTaxHalfBelowAge:
			units += 0.5
		default:
			units++
		}
	}
	return money.Round2(units * rate * float64(nights))
}
