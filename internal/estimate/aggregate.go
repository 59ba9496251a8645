package estimate

import (
	"errors"
	"fmt"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// ProjectVATPercentage is the VAT applied at project level regardless of template settings.
const ProjectVATPercentage = 12

// Bracket maps estimated direct cost up to and including UpTo onto OCM and CP
// percentages. UpTo of 0 marks the open-ended last bracket.
type Bracket struct {
	UpTo          float64
	OCMPercentage float64
	CPPercentage  float64
}

// BracketTable is ordered by ascending UpTo.
type BracketTable []Bracket

// DefaultBrackets returns the DPWH markup brackets by estimated direct cost.
func DefaultBrackets() BracketTable {
	return BracketTable{
		{UpTo: 5_000_000, OCMPercentage: 15, CPPercentage: 10},
		{UpTo: 50_000_000, OCMPercentage: 12, CPPercentage: 8},
		{UpTo: 150_000_000, OCMPercentage: 10, CPPercentage: 8},
		{UpTo: 0, OCMPercentage: 8, CPPercentage: 8},
	}
}

// Validate checks ordering, non-negative percentages and that only the last bracket is open-ended.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return errors.New("bracket table is empty")
	}
	for i, b := range t {
		if b.OCMPercentage < 0 || b.CPPercentage < 0 {
			return fmt.Errorf("bracket %d: negative percentage", i)
		}
		last := i == len(t)-1
		if b.UpTo <= 0 && !last {
			return fmt.Errorf("bracket %d: only the last bracket may be open-ended", i)
		}
		if i > 0 && b.UpTo > 0 && b.UpTo <= t[i-1].UpTo {
			return fmt.Errorf("bracket %d: upper bounds must increase", i)
		}
	}
	return nil
}

// Lookup returns the first bracket whose upper bound is at or above edc.
// An edc beyond every bound falls into the last bracket.
func (t BracketTable) Lookup(edc float64) Bracket {
	for _, b := range t {
		if b.UpTo <= 0 || edc <= b.UpTo {
			return b
		}
	}
	if len(t) == 0 {
		return Bracket{}
	}
	return t[len(t)-1]
}

// Aggregate rolls BOQ entries up to project level. Only each entry's direct
// cost components are summed; OCM, CP and VAT are recomputed once over the
// project total so item-level markups are not applied twice.
func Aggregate(entries []*model.BOQEntry, brackets BracketTable) model.ProjectCostSummary {
	var s model.ProjectCostSummary
	if len(entries) == 0 {
		return s
	}

	for _, e := range entries {
		qty := zeroNaN(e.Quantity)
		s.TotalLaborCost += zeroNaN(e.LaborCost * qty)
		s.TotalEquipmentCost += zeroNaN(e.EquipmentCost * qty)
		s.TotalMaterialCost += zeroNaN(e.MaterialCost * qty)
		s.TotalDirectCost += zeroNaN(e.DirectCost * qty)
	}
	s.ItemCount = len(entries)

	b := brackets.Lookup(s.TotalDirectCost)
	s.OCMPercentage = b.OCMPercentage
	s.CPPercentage = b.CPPercentage
	s.VATPercentage = ProjectVATPercentage
	s.OCMAmount = s.TotalDirectCost * b.OCMPercentage / 100
	s.CPAmount = s.TotalDirectCost * b.CPPercentage / 100
	s.TotalIndirectCost = s.OCMAmount + s.CPAmount
	s.VAT = (s.TotalDirectCost + s.TotalIndirectCost) * ProjectVATPercentage / 100
	s.TotalProjectCost = s.TotalDirectCost + s.TotalIndirectCost + s.VAT
	return s
}
