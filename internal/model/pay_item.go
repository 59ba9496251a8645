package model

import "time"

// PayItem is a billable line of construction work from the DPWH pay item catalog.
type PayItem struct {
	ID            string    `json:"id"`
	PayItemNumber string    `json:"payItemNumber"`
	Description   string    `json:"description"`
	Unit          string    `json:"unit"`
	Division      string    `json:"division,omitempty"`
	Part          string    `json:"part,omitempty"`
	Item          string    `json:"item,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PayItemInput is the request payload for a pay item.
type PayItemInput struct {
	PayItemNumber string `json:"payItemNumber" validate:"required,max=50"`
	Description   string `json:"description" validate:"required,max=1000"`
	Unit          string `json:"unit" validate:"required,max=50"`
	Division      string `json:"division" validate:"max=200"`
	Part          string `json:"part" validate:"max=200"`
	Item          string `json:"item" validate:"max=200"`
}

// Apply copies the input onto p.
func (in *PayItemInput) Apply(p *PayItem) {
	p.PayItemNumber = in.PayItemNumber
	p.Description = in.Description
	p.Unit = in.Unit
	p.Division = in.Division
	p.Part = in.Part
	p.Item = in.Item
}
