package estimate

import (
	"math"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// MinorToolsDescription labels the synthetic equipment line priced off labor cost.
const MinorToolsDescription = "Minor Tools (10% of Labor Cost)"

// minorToolsShare is the fraction of total labor cost charged for minor tools.
const minorToolsShare = 0.10

// Lines are the priced labor, equipment and material lines of one template.
type Lines struct {
	Labor     []model.LaborLine
	Equipment []model.EquipmentLine
	Materials []model.MaterialLine
}

// ComputeLines prices every template entry with the resolved rates and appends
// the minor tools equipment line. Equipment and material entries with neither
// an identifier nor a description are dropped.
func ComputeLines(t *model.DUPATemplate, rates *Rates) Lines {
	lines := Lines{
		Labor:     make([]model.LaborLine, 0, len(t.Labor)),
		Equipment: make([]model.EquipmentLine, 0, len(t.Equipment)+1),
		Materials: make([]model.MaterialLine, 0, len(t.Materials)),
	}

	var laborTotal float64
	for _, e := range t.Labor {
		rate := zeroNaN(rates.Labor[e.Designation])
		line := model.LaborLine{
			Designation: e.Designation,
			NoOfPersons: zeroNaN(e.NoOfPersons),
			NoOfHours:   zeroNaN(e.NoOfHours),
			HourlyRate:  rate,
			Amount:      zeroNaN(e.NoOfPersons * e.NoOfHours * rate),
		}
		laborTotal += line.Amount
		lines.Labor = append(lines.Labor, line)
	}

	for _, e := range t.Equipment {
		if !usableEquipment(e) {
			continue
		}
		line := model.EquipmentLine{
			EquipmentID: e.EquipmentID,
			Description: e.Description,
			NoOfUnits:   zeroNaN(e.NoOfUnits),
			NoOfHours:   zeroNaN(e.NoOfHours),
		}
		if r, ok := rates.Equipment[e.EquipmentID]; ok && e.EquipmentID != "" {
			line.HourlyRate = zeroNaN(r.HourlyRate)
			if r.Description != "" {
				line.Description = r.Description
			}
		}
		line.Amount = zeroNaN(e.NoOfUnits * e.NoOfHours * line.HourlyRate)
		lines.Equipment = append(lines.Equipment, line)
	}
	lines.Equipment = append(lines.Equipment, MinorTools(laborTotal))

	for _, m := range t.Materials {
		if !usableMaterial(m) {
			continue
		}
		code := model.NormalizeMaterialCode(m.MaterialCode)
		cost := zeroNaN(rates.Material[code])
		desc := m.Description
		if desc == "" {
			desc = code
		}
		lines.Materials = append(lines.Materials, model.MaterialLine{
			MaterialCode: code,
			Description:  desc,
			Unit:         m.Unit,
			Quantity:     zeroNaN(m.Quantity),
			UnitCost:     cost,
			Amount:       zeroNaN(m.Quantity * cost),
		})
	}
	return lines
}

// MinorTools returns the synthetic equipment line worth 10% of laborTotal.
func MinorTools(laborTotal float64) model.EquipmentLine {
	amount := zeroNaN(laborTotal * minorToolsShare)
	return model.EquipmentLine{
		Description: MinorToolsDescription,
		NoOfUnits:   1,
		NoOfHours:   1,
		HourlyRate:  amount,
		Amount:      amount,
	}
}

func usableEquipment(e model.EquipmentEntry) bool {
	return e.EquipmentID != "" || e.Description != ""
}

func usableMaterial(m model.MaterialEntry) bool {
	return m.MaterialCode != "" || m.Description != ""
}

// zeroNaN coerces NaN to 0 so a single bad field cannot poison a rollup.
func zeroNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
