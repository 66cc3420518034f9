package domain

import "github.com/sokol-matija/hotel-inventory-sub003/pkg/money"

// DiscountBreakdown accommodation discounts per child age band
type DiscountBreakdown struct {
	Infants       float64 `json:"infants"`       // age < 3
	YoungChildren float64 `json:"youngChildren"` // 3-6
	Children      float64 `json:"children"`      // 7-13
}

// Total sum of all bands
func (d DiscountBreakdown) Total() float64 {
	return money.Sum(d.Infants, d.YoungChildren, d.Children)
}

// PricingBreakdown itemized price of a stay. All amounts are rounded to cents.
//
// Total == (Subtotal - TotalDiscounts + ShortStaySupplement) + TourismTax +
// PetFee + ParkingFee + AdditionalCharges
type PricingBreakdown struct {
	Nights         int            `json:"nights"`
	SeasonalPeriod SeasonalPeriod `json:"seasonalPeriod"`
	TaxSeason      TaxSeason      `json:"taxSeason"`
	BaseRate       float64        `json:"baseRate"`
	FixedRate      bool           `json:"fixedRate"`

	Subtotal            float64           `json:"subtotal"`
	Discounts           DiscountBreakdown `json:"discounts"`
	TotalDiscounts      float64           `json:"totalDiscounts"`
	ShortStaySupplement float64           `json:"shortStaySupplement"`
	AccommodationTotal  float64           `json:"accommodationTotal"`

	TourismTax float64 `json:"tourismTax"`

	AccommodationVAT float64 `json:"accommodationVat"` // embedded in AccommodationTotal
	ServicesVAT      float64 `json:"servicesVat"`      // included in PetFee and ParkingFee
	VATAmount        float64 `json:"vatAmount"`

	PetFee            float64 `json:"petFee"`
	ParkingFee        float64 `json:"parkingFee"`
	AdditionalCharges float64 `json:"additionalCharges"`

	Total float64 `json:"total"`
}

// InvoiceAmounts amounts handed to the external fiscal step
type InvoiceAmounts struct {
	TotalAmount float64 `json:"totalAmount"`
	VATAmount   float64 `json:"vatAmount"`
}

// InvoiceAmounts returns the total and the VAT to be fiscalized
func (b *PricingBreakdown) InvoiceAmounts() InvoiceAmounts {
	return InvoiceAmounts{TotalAmount: b.Total, VATAmount: b.VATAmount}
}

// ComponentsTotal recomputes the total from its parts
func (b *PricingBreakdown) ComponentsTotal() float64 {
	return money.Sum(
		b.Subtotal,
		-b.TotalDiscounts,
		b.ShortStaySupplement,
		b.TourismTax,
		b.PetFee,
		b.ParkingFee,
		b.AdditionalCharges,
	)
}
