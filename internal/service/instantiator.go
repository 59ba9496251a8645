package service

import (
	"context"
	"errors"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
)

// Instantiator prices a stored template at a location. *estimate.Instantiator implements it.
type Instantiator interface {
	Instantiate(ctx context.Context, templateID, location string, opts estimate.Options) (*model.ComputedData, error)
}

// InstantiationObserver records the outcome of each instantiation.
type InstantiationObserver interface {
	ObserveInstantiation(outcome string)
}

// Instantiation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Outcome classifies an instantiation error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, estimate.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, estimate.ErrValidation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

type observedInstantiator struct {
	next     Instantiator
	observer InstantiationObserver
}

// NewObservedInstantiator reports every call of next to observer.
func NewObservedInstantiator(next Instantiator, observer InstantiationObserver) Instantiator {
	if observer == nil {
		return next
	}
	return &observedInstantiator{next: next, observer: observer}
}

func (o *observedInstantiator) Instantiate(ctx context.Context, templateID, location string, opts estimate.Options) (*model.ComputedData, error) {
	data, err := o.next.Instantiate(ctx, templateID, location, opts)
	o.observer.ObserveInstantiation(Outcome(err))
	return data, err
}
