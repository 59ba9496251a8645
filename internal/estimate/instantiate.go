package estimate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// TemplateStore reads stored DUPA templates. Template returns nil, nil for an unknown id.
type TemplateStore interface {
	Template(ctx context.Context, id string) (*model.DUPATemplate, error)
}

// Options tune a single instantiation. Nil fields fall back to the template
// (percentages) or the current time (AsOf).
type Options struct {
	AsOf          *time.Time
	OCMPercentage *float64
	CPPercentage  *float64
}

// Instantiator prices stored templates against a location's current rates.
type Instantiator struct {
	templates TemplateStore
	rates     RateLookup
	now       func() time.Time
}

// NewInstantiator returns an Instantiator reading from templates and rates.
func NewInstantiator(templates TemplateStore, rates RateLookup) *Instantiator {
	return &Instantiator{templates: templates, rates: rates, now: time.Now}
}

// Instantiate resolves rates for the template at location, prices its lines and
// rolls them up. The result is not persisted. Missing templates and locations
// without labor rates fail; missing equipment and material prices price at zero.
func (in *Instantiator) Instantiate(ctx context.Context, templateID, location string, opts Options) (*model.ComputedData, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, &ValidationError{Field: "location", Message: "location is required"}
	}
	if err := checkPercent("ocmPercentage", opts.OCMPercentage); err != nil {
		return nil, err
	}
	if err := checkPercent("cpPercentage", opts.CPPercentage); err != nil {
		return nil, err
	}

	t, err := in.templates.Template(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("load template %q: %w", templateID, err)
	}
	if t == nil {
		return nil, &NotFoundError{Resource: "DUPA template", Key: templateID}
	}

	now := in.now()
	asOf := now
	if opts.AsOf != nil && !opts.AsOf.IsZero() {
		asOf = *opts.AsOf
	}

	rates, err := ResolveRates(ctx, in.rates, t, location, asOf)
	if err != nil {
		return nil, err
	}

	pct := Percentages{OCM: t.OCMPercentage, CP: t.CPPercentage, VAT: t.VATPercentage}
	if opts.OCMPercentage != nil {
		pct.OCM = *opts.OCMPercentage
	}
	if opts.CPPercentage != nil {
		pct.CP = *opts.CPPercentage
	}
	return Build(t, rates, location, pct, now), nil
}

// Percentages are whole-number markup percentages.
type Percentages struct {
	OCM float64
	CP  float64
	VAT float64
}

// Build composes ComputeLines and Rollup into a ComputedData stamped with location and at.
func Build(t *model.DUPATemplate, rates *Rates, location string, pct Percentages, at time.Time) *model.ComputedData {
	lines := ComputeLines(t, rates)
	return &model.ComputedData{
		TemplateID:     t.ID,
		PayItemNumber:  t.PayItemNumber,
		Description:    t.Description,
		Unit:           t.Unit,
		OutputPerHour:  t.OutputPerHour,
		LaborItems:     lines.Labor,
		EquipmentItems: lines.Equipment,
		MaterialItems:  lines.Materials,
		CostBreakdown:  Rollup(lines.Labor, lines.Equipment, lines.Materials, pct.OCM, pct.CP, pct.VAT),
		Location:       location,
		InstantiatedAt: at,
	}
}

func checkPercent(field string, p *float64) error {
	if p != nil && *p < 0 {
		return &ValidationError{Field: field, Message: "must not be negative"}
	}
	return nil
}
