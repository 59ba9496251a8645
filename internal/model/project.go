package model

import "time"

// Project status values.
const (
	ProjectStatusPlanning  = "Planning"
	ProjectStatusApproved  = "Approved"
	ProjectStatusOngoing   = "Ongoing"
	ProjectStatusCompleted = "Completed"
)

// Project owns a bill of quantities. Cost totals are derived from its BOQ entries.
type Project struct {
	ID                 string    `json:"id"`
	ProjectName        string    `json:"projectName"`
	Location           string    `json:"location"`
	ImplementingOffice string    `json:"implementingOffice,omitempty"`
	Description        string    `json:"description,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ProjectInput is the request payload for a project.
type ProjectInput struct {
	ProjectName        string `json:"projectName" validate:"required,max=300"`
	Location           string `json:"location" validate:"required,max=200"`
	ImplementingOffice string `json:"implementingOffice" validate:"max=300"`
	Description        string `json:"description" validate:"max=2000"`
	Status             string `json:"status" validate:"omitempty,oneof=Planning Approved Ongoing Completed"`
}

// Apply copies the input onto p. Status defaults to Planning.
func (in *ProjectInput) Apply(p *Project) {
	p.ProjectName = in.ProjectName
	p.Location = in.Location
	p.ImplementingOffice = in.ImplementingOffice
	p.Description = in.Description
	p.Status = in.Status
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}
}

// ProjectCostSummary is the project-level cost rollup over all BOQ entries.
type ProjectCostSummary struct {
	ItemCount          int     `json:"itemCount"`
	TotalLaborCost     float64 `json:"totalLaborCost"`
	TotalEquipmentCost float64 `json:"totalEquipmentCost"`
	TotalMaterialCost  float64 `json:"totalMaterialCost"`
	TotalDirectCost    float64 `json:"totalDirectCost"`
	OCMPercentage      float64 `json:"ocmPercentage"`
	OCMAmount          float64 `json:"ocmAmount"`
	CPPercentage       float64 `json:"cpPercentage"`
	CPAmount           float64 `json:"cpAmount"`
	TotalIndirectCost  float64 `json:"totalIndirectCost"`
	VATPercentage      float64 `json:"vatPercentage"`
	VAT                float64 `json:"vat"`
	TotalProjectCost   float64 `json:"totalProjectCost"`
}

// BOQEntryInput is the request payload for adding a pay item to a project's BOQ.
type BOQEntryInput struct {
	TemplateID    string   `json:"templateId" validate:"required,uuid"`
	Quantity      float64  `json:"quantity" validate:"gt=0"`
	Location      string   `json:"location" validate:"max=200"`
	AsOfDate      *Date    `json:"asOfDate"`
	OCMPercentage *float64 `json:"ocmPercentage" validate:"omitempty,gte=0,lte=100"`
	CPPercentage  *float64 `json:"cpPercentage" validate:"omitempty,gte=0,lte=100"`
}

// InstantiateInput is the request payload for previewing a template at a location.
type InstantiateInput struct {
	Location      string   `json:"location" validate:"required,max=200"`
	AsOfDate      *Date    `json:"asOfDate"`
	OCMPercentage *float64 `json:"ocmPercentage" validate:"omitempty,gte=0,lte=100"`
	CPPercentage  *float64 `json:"cpPercentage" validate:"omitempty,gte=0,lte=100"`
}
