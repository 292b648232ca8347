// Package mandate defines the organizational priorities and hard constraints
// a proposal is evaluated against.
package mandate

// Kind discriminates the two mandate shapes in circulation
type Kind string

const (
	// KindWeighted carries explicit dimension weights, a risk tolerance,
	// and non-negotiable constraints.
	KindWeighted Kind = "weighted"
	// KindOutcomeRanked carries an ordered list of priority statements
	// (rank = priority) and nothing else.
	KindOutcomeRanked Kind = "outcome_ranked"
)

// RiskTolerance controls how aggressively an aligned proposal may proceed
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "CONSERVATIVE"
	ToleranceModerate     RiskTolerance = "MODERATE"
	ToleranceAggressive   RiskTolerance = "AGGRESSIVE"
)

// Valid reports whether the tolerance is one of the recognized values
func (rt RiskTolerance) Valid() bool {
	switch rt {
	case ToleranceConservative, ToleranceModerate, ToleranceAggressive:
		return true
	}
	return false
}

// Weights holds the four non-negative dimension weights.
// They need not sum to 1; the scorer normalizes.
type Weights struct {
	Growth float64 `json:"growth" yaml:"growth"`
	Cost   float64 `json:"cost" yaml:"cost"`
	Risk   float64 `json:"risk" yaml:"risk"`
	Brand  float64 `json:"brand" yaml:"brand"`
}

// Total returns the weight mass across all four dimensions
func (w Weights) Total() float64 {
	return w.Growth + w.Cost + w.Risk + w.Brand
}

// Context is a frozen mandate, resolved and validated upstream.
// It is a tagged variant: Kind selects which fields are meaningful.
type Context struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// Weighted form
	Weights        Weights       `json:"weights,omitempty" yaml:"weights,omitempty"`
	RiskTolerance  RiskTolerance `json:"risk_tolerance,omitempty" yaml:"risk_tolerance,omitempty"`
	NonNegotiables []string      `json:"non_negotiables,omitempty" yaml:"non_negotiables,omitempty"`

	// Outcome-ranked form
	Outcomes []string `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
}

// Weighted builds a weighted-form mandate context
func Weighted(w Weights, tolerance RiskTolerance, nonNegotiables []string) Context {
	return Context{
		Kind:           KindWeighted,
		Weights:        w,
		RiskTolerance:  tolerance,
		NonNegotiables: nonNegotiables,
	}
}

// OutcomeRanked builds an outcome-ranked mandate context
func OutcomeRanked(outcomes []string) Context {
	return Context{
		Kind:     KindOutcomeRanked,
		Outcomes: outcomes,
	}
}

// Tolerance returns the effective risk tolerance, defaulting to MODERATE
// for the outcome-ranked shape and for unrecognized values.
func (c Context) Tolerance() RiskTolerance {
	if c.RiskTolerance.Valid() {
		return c.RiskTolerance
	}
	return ToleranceModerate
}
