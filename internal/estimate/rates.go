package estimate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the rate lookups a single resolution issues at once.
const maxConcurrentLookups = 8

// RateLookup reads current rates from the master data collections.
// A missing record is reported with found=false, not an error.
type RateLookup interface {
	LaborRates(ctx context.Context, location string) (rates map[model.Designation]float64, found bool, err error)
	EquipmentRate(ctx context.Context, equipmentID string) (rate EquipmentRate, found bool, err error)
	MaterialUnitCost(ctx context.Context, materialCode, location string, asOf time.Time) (cost float64, found bool, err error)
}

// EquipmentRate is the catalog data an equipment line needs.
type EquipmentRate struct {
	Description string
	HourlyRate  float64
}

// Rates are the resolved rates for one template at one location.
// Equipment and materials missing from the maps price at zero.
type Rates struct {
	Labor     map[model.Designation]float64
	Equipment map[string]EquipmentRate
	Material  map[string]float64
}

// ResolveRates fetches the labor, equipment and material rates that t needs.
// A location without labor rates fails the whole resolution with a *NotFoundError.
// Unknown equipment ids and unpriced material codes are left out of the result.
func ResolveRates(ctx context.Context, lookup RateLookup, t *model.DUPATemplate, location string, asOf time.Time) (*Rates, error) {
	rates := &Rates{
		Equipment: make(map[string]EquipmentRate),
		Material:  make(map[string]float64),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	g.Go(func() error {
		labor, found, err := lookup.LaborRates(ctx, location)
		if err != nil {
			return fmt.Errorf("labor rates for %q: %w", location, err)
		}
		if !found {
			return &NotFoundError{Resource: "labor rates for location", Key: location}
		}
		mu.Lock()
		rates.Labor = labor
		mu.Unlock()
		return nil
	})

	for _, id := range equipmentIDs(t.Equipment) {
		g.Go(func() error {
			rate, found, err := lookup.EquipmentRate(ctx, id)
			if err != nil {
				return fmt.Errorf("equipment %q: %w", id, err)
			}
			if found {
				mu.Lock()
				rates.Equipment[id] = rate
				mu.Unlock()
			}
			return nil
		})
	}

	for _, code := range materialCodes(t.Materials) {
		g.Go(func() error {
			cost, found, err := lookup.MaterialUnitCost(ctx, code, location, asOf)
			if err != nil {
				return fmt.Errorf("material %q: %w", code, err)
			}
			if found {
				mu.Lock()
				rates.Material[code] = cost
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rates, nil
}

// equipmentIDs returns the distinct equipment ids referenced by usable entries.
func equipmentIDs(entries []model.EquipmentEntry) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range entries {
		if !usableEquipment(e) || e.EquipmentID == "" || seen[e.EquipmentID] {
			continue
		}
		seen[e.EquipmentID] = true
		ids = append(ids, e.EquipmentID)
	}
	return ids
}

// materialCodes returns the distinct material codes referenced by usable entries.
func materialCodes(entries []model.MaterialEntry) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, m := range entries {
		code := model.NormalizeMaterialCode(m.MaterialCode)
		if !usableMaterial(m) || code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}
