package core

import (
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// Specification represents a requirement to be evaluated using simulation
// data. Evaluate accepts the trajectory produced by a model and returns a
// scalar cost ("robustness") together with optional annotation data. Lower
// costs are closer to falsifying; negative costs indicate the requirement is
// violated.
//
// Like models, specifications must be pure functions of their inputs.
type Specification interface {
	Evaluate(trace Trace) (cost float64, extra interface{}, err error)

	// FailureCost is the cost assigned to a sample whose simulation
	// reported a system failure. Conventionally -Inf to signal an
	// unconditional falsification.
	FailureCost() float64
}

// SpecificationFunc adapts a plain robustness function to the Specification
// interface using the given failure cost.
func SpecificationFunc(failureCost float64, fn func(trace Trace) (float64, error)) Specification {
	return funcSpecification{fn: fn, failureCost: failureCost}
}

type funcSpecification struct {
	fn          func(trace Trace) (float64, error)
	failureCost float64
}

func (s funcSpecification) Evaluate(trace Trace) (float64, interface{}, error) {
	cost, err := s.fn(trace)
	return cost, nil, err
}

func (s funcSpecification) FailureCost() float64 {
	return s.failureCost
}

// SpecificationProvider resolves the specification to use for a sample.
//
// A provider is either a fixed specification instance shared by all
// evaluations, or a per-sample factory enabling sample-dependent
// requirements such as bounds derived from the static inputs. The variant
// is fixed at construction rather than probed at evaluation time.
type SpecificationProvider struct {
	fixed   Specification
	factory func(sample Sample) (Specification, error)
}

// FixedSpecification creates a provider that returns the same specification
// for every sample.
func FixedSpecification(spec Specification) SpecificationProvider {
	return SpecificationProvider{fixed: spec}
}

// SpecificationFactory creates a provider that builds a specification from
// each sample before use.
func SpecificationFactory(factory func(sample Sample) (Specification, error)) SpecificationProvider {
	return SpecificationProvider{factory: factory}
}

// IsValid reports whether the provider holds either variant.
func (p SpecificationProvider) IsValid() bool {
	return p.fixed != nil || p.factory != nil
}

// For resolves the specification for the given sample. Factory output that
// does not satisfy the specification contract fails here, before any
// simulation cost is spent.
func (p SpecificationProvider) For(sample Sample) (Specification, error) {
	if p.fixed != nil {
		return p.fixed, nil
	}

	if p.factory == nil {
		return nil, errors.New(errors.SpecificationInvalid, "specification provider holds neither instance nor factory")
	}

	spec, err := p.factory(sample)
	if err != nil {
		return nil, errors.Wrap(err, errors.SpecificationInvalid, "specification factory failed")
	}
	if spec == nil {
		return nil, errors.New(errors.SpecificationInvalid, "specification factory returned nil")
	}

	return spec, nil
}
