package model

import "time"

// Equipment is a catalog entry with its hourly operating rate.
type Equipment struct {
	ID                 string    `json:"id"`
	No                 int       `json:"no"`
	Description        string    `json:"description"`
	Model              string    `json:"model,omitempty"`
	Capacity           string    `json:"capacity,omitempty"`
	FlywheelHorsepower float64   `json:"flywheelHorsepower,omitempty"`
	HourlyRate         float64   `json:"hourlyRate"`
	RentalRate         *float64  `json:"rentalRate,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// EquipmentInput is the request payload for an equipment entry.
type EquipmentInput struct {
	No                 int      `json:"no" validate:"required,gt=0"`
	Description        string   `json:"description" validate:"required,max=500"`
	Model              string   `json:"model" validate:"max=200"`
	Capacity           string   `json:"capacity" validate:"max=200"`
	FlywheelHorsepower float64  `json:"flywheelHorsepower" validate:"gte=0"`
	HourlyRate         float64  `json:"hourlyRate" validate:"gte=0"`
	RentalRate         *float64 `json:"rentalRate" validate:"omitempty,gte=0"`
}

// Apply copies the input onto e.
func (in *EquipmentInput) Apply(e *Equipment) {
	e.No = in.No
	e.Description = in.Description
	e.Model = in.Model
	e.Capacity = in.Capacity
	e.FlywheelHorsepower = in.FlywheelHorsepower
	e.HourlyRate = in.HourlyRate
	e.RentalRate = in.RentalRate
}
