package model

import "time"

// Default markup percentages applied when a template omits them.
const (
	DefaultOCMPercentage = 15
	DefaultCPPercentage  = 10
	DefaultVATPercentage = 12
)

// LaborEntry is one crew line of a DUPA template.
type LaborEntry struct {
	Designation Designation `json:"designation" validate:"required,designation"`
	NoOfPersons float64     `json:"noOfPersons" validate:"gte=0"`
	NoOfHours   float64     `json:"noOfHours" validate:"gte=0"`
}

// EquipmentEntry is one equipment line of a DUPA template. EquipmentID refers to Equipment.ID.
type EquipmentEntry struct {
	EquipmentID string  `json:"equipmentId,omitempty" validate:"omitempty,uuid"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	NoOfUnits   float64 `json:"noOfUnits" validate:"gte=0"`
	NoOfHours   float64 `json:"noOfHours" validate:"gte=0"`
}

// MaterialEntry is one material line of a DUPA template.
type MaterialEntry struct {
	MaterialCode string  `json:"materialCode,omitempty" validate:"max=50"`
	Description  string  `json:"description,omitempty" validate:"max=500"`
	Unit         string  `json:"unit" validate:"max=50"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
}

// DUPATemplate is a reusable unit price analysis recipe for one pay item.
// Percentages are whole numbers: 15 means 15%.
type DUPATemplate struct {
	ID            string           `json:"id"`
	PayItemNumber string           `json:"payItemNumber"`
	Description   string           `json:"description"`
	Unit          string           `json:"unit"`
	OutputPerHour float64          `json:"outputPerHour"`
	Category      string           `json:"category,omitempty"`
	Specification string           `json:"specification,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Labor         []LaborEntry     `json:"laborTemplate"`
	Equipment     []EquipmentEntry `json:"equipmentTemplate"`
	Materials     []MaterialEntry  `json:"materialTemplate"`
	OCMPercentage float64          `json:"ocmPercentage"`
	CPPercentage  float64          `json:"cpPercentage"`
	VATPercentage float64          `json:"vatPercentage"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// DUPATemplateFilter narrows a template listing.
type DUPATemplateFilter struct {
	Search     string
	ActiveOnly bool
}

// DUPATemplateInput is the request payload for a DUPA template.
type DUPATemplateInput struct {
	PayItemNumber string           `json:"payItemNumber" validate:"required,max=50"`
	Description   string           `json:"description" validate:"required,max=1000"`
	Unit          string           `json:"unit" validate:"required,max=50"`
	OutputPerHour float64          `json:"outputPerHour" validate:"gte=0"`
	Category      string           `json:"category" validate:"max=200"`
	Specification string           `json:"specification" validate:"max=1000"`
	Notes         string           `json:"notes" validate:"max=2000"`
	Labor         []LaborEntry     `json:"laborTemplate" validate:"dive"`
	Equipment     []EquipmentEntry `json:"equipmentTemplate" validate:"dive"`
	Materials     []MaterialEntry  `json:"materialTemplate" validate:"dive"`
	OCMPercentage *float64         `json:"ocmPercentage" validate:"omitempty,gte=0,lte=100"`
	CPPercentage  *float64         `json:"cpPercentage" validate:"omitempty,gte=0,lte=100"`
	VATPercentage *float64         `json:"vatPercentage" validate:"omitempty,gte=0,lte=100"`
	IsActive      *bool            `json:"isActive"`
}

// Apply copies the input onto t, filling default percentages for omitted fields.
func (in *DUPATemplateInput) Apply(t *DUPATemplate) {
	t.PayItemNumber = in.PayItemNumber
	t.Description = in.Description
	t.Unit = in.Unit
	t.OutputPerHour = in.OutputPerHour
	t.Category = in.Category
	t.Specification = in.Specification
	t.Notes = in.Notes
	t.Labor = in.Labor
	t.Equipment = in.Equipment
	t.Materials = make([]MaterialEntry, len(in.Materials))
	for i, m := range in.Materials {
		m.MaterialCode = NormalizeMaterialCode(m.MaterialCode)
		t.Materials[i] = m
	}
	t.OCMPercentage = percentOrDefault(in.OCMPercentage, DefaultOCMPercentage)
	t.CPPercentage = percentOrDefault(in.CPPercentage, DefaultCPPercentage)
	t.VATPercentage = percentOrDefault(in.VATPercentage, DefaultVATPercentage)
	t.IsActive = true
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if t.Labor == nil {
		t.Labor = []LaborEntry{}
	}
	if t.Equipment == nil {
		t.Equipment = []EquipmentEntry{}
	}
}

func percentOrDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
