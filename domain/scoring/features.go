// Package scoring derives structural features from a proposal and scores it
// against a mandate. Every function here is pure and total: identical inputs
// yield identical outputs, and no input can make them fail.
package scoring

import (
	"strings"

	"gomandate/domain/core"
	"gomandate/domain/decision"
	"gomandate/domain/proposal"
)

// Complexity weighting: scope length saturates at 500 chars, dependency and
// assumption counts at 5 each.
const (
	scopeLengthScale = 500.0
	listCountScale   = 5.0
)

// ExtractFeatures derives the structural signals used by scoring and
// confidence. A string field is missing if it is empty after trimming;
// a list field is missing if it has zero entries.
func ExtractFeatures(p proposal.Context) decision.Features {
	missing := 0
	if strings.TrimSpace(p.Title) == "" {
		missing++
	}
	if strings.TrimSpace(p.Summary) == "" {
		missing++
	}
	if strings.TrimSpace(p.Scope) == "" {
		missing++
	}
	if len(p.Assumptions) == 0 {
		missing++
	}
	if len(p.Dependencies) == 0 {
		missing++
	}

	scopeLen := len(p.Scope)
	depCount := len(p.Dependencies)
	assumpCount := len(p.Assumptions)

	// Rough structural proxy, not a semantic complexity measure
	complexity := core.Clamp01(
		0.4*float64(scopeLen)/scopeLengthScale +
			0.3*float64(depCount)/listCountScale +
			0.3*float64(assumpCount)/listCountScale)

	return decision.Features{
		MissingFieldsCount: missing,
		ComplexityScore:    complexity,
		DependencyCount:    depCount,
		AssumptionCount:    assumpCount,
		ScopeLength:        scopeLen,
		HasAssumptions:     assumpCount > 0,
		HasDependencies:    depCount > 0,
	}
}
