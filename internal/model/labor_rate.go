package model

import "time"

// Designation is a labor classification that has an hourly rate in a LaborRate record.
type Designation string

const (
	DesignationForeman              Designation = "Foreman"
	DesignationLeadman              Designation = "Leadman"
	DesignationOperatorHeavy        Designation = "Equipment Operator - Heavy"
	DesignationOperatorHighSkilled  Designation = "Equipment Operator - High Skilled"
	DesignationOperatorLightSkilled Designation = "Equipment Operator - Light Skilled"
	DesignationDriver               Designation = "Driver"
	DesignationSkilledLabor         Designation = "Skilled Labor"
	DesignationSemiSkilledLabor     Designation = "Semi-Skilled Labor"
	DesignationUnskilledLabor       Designation = "Unskilled Labor"
)

// Designations lists every designation in display order.
var Designations = []Designation{
	DesignationForeman,
	DesignationLeadman,
	DesignationOperatorHeavy,
	DesignationOperatorHighSkilled,
	DesignationOperatorLightSkilled,
	DesignationDriver,
	DesignationSkilledLabor,
	DesignationSemiSkilledLabor,
	DesignationUnskilledLabor,
}

// Valid reports whether d is one of the known designations.
func (d Designation) Valid() bool {
	for _, known := range Designations {
		if d == known {
			return true
		}
	}
	return false
}

// LaborRate holds the hourly rates of every designation for one location.
type LaborRate struct {
	ID                            string    `json:"id"`
	Location                      string    `json:"location"`
	District                      string    `json:"district,omitempty"`
	Foreman                       float64   `json:"foreman"`
	Leadman                       float64   `json:"leadman"`
	EquipmentOperatorHeavy        float64   `json:"equipmentOperatorHeavy"`
	EquipmentOperatorHighSkilled  float64   `json:"equipmentOperatorHighSkilled"`
	EquipmentOperatorLightSkilled float64   `json:"equipmentOperatorLightSkilled"`
	Driver                        float64   `json:"driver"`
	SkilledLabor                  float64   `json:"skilledLabor"`
	SemiSkilledLabor              float64   `json:"semiSkilledLabor"`
	UnskilledLabor                float64   `json:"unskilledLabor"`
	EffectiveDate                 time.Time `json:"effectiveDate"`
	CreatedAt                     time.Time `json:"createdAt"`
	UpdatedAt                     time.Time `json:"updatedAt"`
}

// RateFor returns the hourly rate of designation d. ok is false for an unknown designation.
func (l *LaborRate) RateFor(d Designation) (rate float64, ok bool) {
	switch d {
	case DesignationForeman:
		return l.Foreman, true
	case DesignationLeadman:
		return l.Leadman, true
	case DesignationOperatorHeavy:
		return l.EquipmentOperatorHeavy, true
	case DesignationOperatorHighSkilled:
		return l.EquipmentOperatorHighSkilled, true
	case DesignationOperatorLightSkilled:
		return l.EquipmentOperatorLightSkilled, true
	case DesignationDriver:
		return l.Driver, true
	case DesignationSkilledLabor:
		return l.SkilledLabor, true
	case DesignationSemiSkilledLabor:
		return l.SemiSkilledLabor, true
	case DesignationUnskilledLabor:
		return l.UnskilledLabor, true
	}
	return 0, false
}

// Rates returns the record as a designation-keyed map.
func (l *LaborRate) Rates() map[Designation]float64 {
	rates := make(map[Designation]float64, len(Designations))
	for _, d := range Designations {
		rates[d], _ = l.RateFor(d)
	}
	return rates
}

// LaborRateInput is the request payload for creating or replacing a location's labor rates.
type LaborRateInput struct {
	Location                      string  `json:"location" validate:"required,max=200"`
	District                      string  `json:"district" validate:"max=200"`
	Foreman                       float64 `json:"foreman" validate:"gte=0"`
	Leadman                       float64 `json:"leadman" validate:"gte=0"`
	EquipmentOperatorHeavy        float64 `json:"equipmentOperatorHeavy" validate:"gte=0"`
	EquipmentOperatorHighSkilled  float64 `json:"equipmentOperatorHighSkilled" validate:"gte=0"`
	EquipmentOperatorLightSkilled float64 `json:"equipmentOperatorLightSkilled" validate:"gte=0"`
	Driver                        float64 `json:"driver" validate:"gte=0"`
	SkilledLabor                  float64 `json:"skilledLabor" validate:"gte=0"`
	SemiSkilledLabor              float64 `json:"semiSkilledLabor" validate:"gte=0"`
	UnskilledLabor                float64 `json:"unskilledLabor" validate:"gte=0"`
	EffectiveDate                 *Date   `json:"effectiveDate"`
}

// Apply copies the input onto l.
func (in *LaborRateInput) Apply(l *LaborRate) {
	l.Location = in.Location
	l.District = in.District
	l.Foreman = in.Foreman
	l.Leadman = in.Leadman
	l.EquipmentOperatorHeavy = in.EquipmentOperatorHeavy
	l.EquipmentOperatorHighSkilled = in.EquipmentOperatorHighSkilled
	l.EquipmentOperatorLightSkilled = in.EquipmentOperatorLightSkilled
	l.Driver = in.Driver
	l.SkilledLabor = in.SkilledLabor
	l.SemiSkilledLabor = in.SemiSkilledLabor
	l.UnskilledLabor = in.UnskilledLabor
	if in.EffectiveDate != nil {
		l.EffectiveDate = in.EffectiveDate.Time
	}
}
