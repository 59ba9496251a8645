package model

import "time"

// MaterialPrice is one entry of a material's price history at a location.
type MaterialPrice struct {
	ID            string    `json:"id"`
	MaterialCode  string    `json:"materialCode"`
	Description   string    `json:"description"`
	Unit          string    `json:"unit"`
	Location      string    `json:"location"`
	UnitCost      float64   `json:"unitCost"`
	Brand         string    `json:"brand,omitempty"`
	Specification string    `json:"specification,omitempty"`
	Supplier      string    `json:"supplier,omitempty"`
	EffectiveDate time.Time `json:"effectiveDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MaterialPriceFilter narrows a price history listing. Empty fields match everything.
type MaterialPriceFilter struct {
	MaterialCode string
	Location     string
}

// MaterialPriceInput is the request payload for a material price entry.
type MaterialPriceInput struct {
	MaterialCode  string  `json:"materialCode" validate:"required,max=50"`
	Description   string  `json:"description" validate:"required,max=500"`
	Unit          string  `json:"unit" validate:"required,max=50"`
	Location      string  `json:"location" validate:"required,max=200"`
	UnitCost      float64 `json:"unitCost" validate:"gte=0"`
	Brand         string  `json:"brand" validate:"max=200"`
	Specification string  `json:"specification" validate:"max=500"`
	Supplier      string  `json:"supplier" validate:"max=200"`
	EffectiveDate *Date   `json:"effectiveDate"`
}

// Apply copies the input onto p. A missing effective date is left for the caller to fill.
func (in *MaterialPriceInput) Apply(p *MaterialPrice) {
	p.MaterialCode = NormalizeMaterialCode(in.MaterialCode)
	p.Description = in.Description
	p.Unit = in.Unit
	p.Location = in.Location
	p.UnitCost = in.UnitCost
	p.Brand = in.Brand
	p.Specification = in.Specification
	p.Supplier = in.Supplier
	if in.EffectiveDate != nil {
		p.EffectiveDate = in.EffectiveDate.Time
	}
}
