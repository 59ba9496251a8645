package estimate

import (
	"context"
	"sync"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

type fakeLookup struct {
	mu        sync.Mutex
	labor     map[string]map[model.Designation]float64
	equipment map[string]EquipmentRate
	prices    map[string]map[string][]datedPrice
	laborErr  error
	calls     int
	lastAsOf  time.Time
}

type datedPrice struct {
	effective time.Time
	cost      float64
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		labor:     make(map[string]map[model.Designation]float64),
		equipment: make(map[string]EquipmentRate),
		prices:    make(map[string]map[string][]datedPrice),
	}
}

func (f *fakeLookup) LaborRates(_ context.Context, location string) (map[model.Designation]float64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.laborErr != nil {
		return nil, false, f.laborErr
	}
	r, ok := f.labor[location]
	return r, ok, nil
}

func (f *fakeLookup) EquipmentRate(_ context.Context, id string) (EquipmentRate, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	r, ok := f.equipment[id]
	return r, ok, nil
}

func (f *fakeLookup) MaterialUnitCost(_ context.Context, code, location string, asOf time.Time) (float64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastAsOf = asOf
	var best *datedPrice
	for i, p := range f.prices[code][location] {
		if p.effective.After(asOf) {
			continue
		}
		if best == nil || p.effective.After(best.effective) {
			best = &f.prices[code][location][i]
		}
	}
	if best == nil {
		return 0, false, nil
	}
	return best.cost, true, nil
}

func (f *fakeLookup) addPrice(code, location string, effective time.Time, cost float64) {
	if f.prices[code] == nil {
		f.prices[code] = make(map[string][]datedPrice)
	}
	f.prices[code][location] = append(f.prices[code][location], datedPrice{effective: effective, cost: cost})
}

type fakeTemplates map[string]*model.DUPATemplate

func (f fakeTemplates) Template(_ context.Context, id string) (*model.DUPATemplate, error) {
	return f[id], nil
}

func ptr[T any](v T) *T { return &v }
