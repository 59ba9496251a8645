package model

import (
	"strings"
	"time"
)

// Material is a catalog entry identified by its material code.
type Material struct {
	ID             string    `json:"id"`
	MaterialCode   string    `json:"materialCode"`
	Description    string    `json:"description"`
	Unit           string    `json:"unit"`
	BasePrice      float64   `json:"basePrice"`
	Category       string    `json:"category,omitempty"`
	IncludeHauling bool      `json:"includeHauling"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MaterialFilter narrows a material listing. Empty fields match everything.
type MaterialFilter struct {
	Category string
	Search   string
}

// NormalizeMaterialCode trims and upper-cases a material code so that lookups are case-insensitive.
func NormalizeMaterialCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// MaterialInput is the request payload for a material entry.
type MaterialInput struct {
	MaterialCode   string  `json:"materialCode" validate:"required,max=50"`
	Description    string  `json:"description" validate:"required,max=500"`
	Unit           string  `json:"unit" validate:"required,max=50"`
	BasePrice      float64 `json:"basePrice" validate:"gte=0"`
	Category       string  `json:"category" validate:"max=100"`
	IncludeHauling *bool   `json:"includeHauling"`
}

// Apply copies the input onto m. includeHauling defaults to true when omitted.
func (in *MaterialInput) Apply(m *Material) {
	m.MaterialCode = NormalizeMaterialCode(in.MaterialCode)
	m.Description = in.Description
	m.Unit = in.Unit
	m.BasePrice = in.BasePrice
	m.Category = in.Category
	m.IncludeHauling = true
	if in.IncludeHauling != nil {
		m.IncludeHauling = *in.IncludeHauling
	}
}
