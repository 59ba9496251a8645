package model

import "time"

// LaborLine is a resolved labor entry.
type LaborLine struct {
	Designation Designation `json:"designation"`
	NoOfPersons float64     `json:"noOfPersons"`
	NoOfHours   float64     `json:"noOfHours"`
	HourlyRate  float64     `json:"hourlyRate"`
	Amount      float64     `json:"amount"`
}

// EquipmentLine is a resolved equipment entry. The minor tools line has no EquipmentID.
type EquipmentLine struct {
	EquipmentID string  `json:"equipmentId,omitempty"`
	Description string  `json:"description"`
	NoOfUnits   float64 `json:"noOfUnits"`
	NoOfHours   float64 `json:"noOfHours"`
	HourlyRate  float64 `json:"hourlyRate"`
	Amount      float64 `json:"amount"`
}

// MaterialLine is a resolved material entry.
type MaterialLine struct {
	MaterialCode string  `json:"materialCode,omitempty"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	UnitCost     float64 `json:"unitCost"`
	Amount       float64 `json:"amount"`
}

// CostBreakdown is the layered OCM/CP/VAT rollup of one pay item.
type CostBreakdown struct {
	LaborCost          float64 `json:"laborCost"`
	EquipmentCost      float64 `json:"equipmentCost"`
	MaterialCost       float64 `json:"materialCost"`
	DirectCost         float64 `json:"directCost"`
	OCMPercentage      float64 `json:"ocmPercentage"`
	OCMCost            float64 `json:"ocmCost"`
	CPPercentage       float64 `json:"cpPercentage"`
	CPCost             float64 `json:"cpCost"`
	SubtotalWithMarkup float64 `json:"subtotalWithMarkup"`
	VATPercentage      float64 `json:"vatPercentage"`
	VATCost            float64 `json:"vatCost"`
	TotalCost          float64 `json:"totalCost"`
	UnitCost           float64 `json:"unitCost"`
}

// ComputedData is a DUPA template instantiated at a location.
type ComputedData struct {
	TemplateID     string          `json:"templateId"`
	PayItemNumber  string          `json:"payItemNumber"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	OutputPerHour  float64         `json:"outputPerHour"`
	LaborItems     []LaborLine     `json:"laborItems"`
	EquipmentItems []EquipmentLine `json:"equipmentItems"`
	MaterialItems  []MaterialLine  `json:"materialItems"`
	CostBreakdown
	Location       string    `json:"location"`
	InstantiatedAt time.Time `json:"instantiatedAt"`
}

// BOQEntry is a ComputedData stored against a project with a quantity.
type BOQEntry struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	ComputedData
	Quantity    float64   `json:"quantity"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewBOQEntry builds an unsaved entry; TotalAmount is UnitCost * quantity.
func NewBOQEntry(projectID string, data *ComputedData, quantity float64) *BOQEntry {
	return &BOQEntry{
		ProjectID:    projectID,
		ComputedData: *data,
		Quantity:     quantity,
		TotalAmount:  data.UnitCost * quantity,
	}
}
