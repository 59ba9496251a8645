package estimate

import "github.com/kyrhyl/cost-estimate-application-sub000/internal/model"

// Rollup sums the priced lines into direct cost and layers the markups on top:
// OCM and CP on direct cost, then VAT on the marked-up subtotal.
// Percentages are whole numbers. No intermediate rounding is applied.
func Rollup(labor []model.LaborLine, equipment []model.EquipmentLine, materials []model.MaterialLine, ocmPct, cpPct, vatPct float64) model.CostBreakdown {
	var b model.CostBreakdown
	for _, l := range labor {
		b.LaborCost += zeroNaN(l.Amount)
	}
	for _, e := range equipment {
		b.EquipmentCost += zeroNaN(e.Amount)
	}
	for _, m := range materials {
		b.MaterialCost += zeroNaN(m.Amount)
	}

	b.DirectCost = b.LaborCost + b.EquipmentCost + b.MaterialCost
	b.OCMPercentage = ocmPct
	b.CPPercentage = cpPct
	b.VATPercentage = vatPct
	b.OCMCost = zeroNaN(b.DirectCost * ocmPct / 100)
	b.CPCost = zeroNaN(b.DirectCost * cpPct / 100)
	b.SubtotalWithMarkup = b.DirectCost + b.OCMCost + b.CPCost
	b.VATCost = zeroNaN(b.SubtotalWithMarkup * vatPct / 100)
	b.TotalCost = b.SubtotalWithMarkup + b.VATCost
	// Template costs are already per unit of measurement; outputPerHour does not divide them.
	b.UnitCost = b.TotalCost
	return b
}
