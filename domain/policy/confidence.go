// Package policy computes the system's trust in its own output and maps the
// accumulated evidence to a final recommendation. Both components are pure
// and total.
package policy

import (
	"fmt"

	"gomandate/domain/core"
	"gomandate/domain/decision"
)

const (
	baseConfidence = 0.8

	missingFieldStep    = 0.1
	traceFailureStep    = 0.3
	noAssumptionsStep   = 0.1
	noDependenciesStep  = 0.05
	riskOverloadStep    = 0.1
	conflictStep        = 0.05
	completenessBonus   = 0.1
	riskOverloadCeiling = 10
)

// Confidence combines input completeness, model-call health, and scoring
// findings into a bounded score with human-readable reasons. Adjustments
// apply in a fixed order; each appends one reason.
func Confidence(f decision.Features, s decision.Scores, risks decision.RiskDiscoveryOutput, trace decision.ModelTrace) (float64, []string) {
	confidence := baseConfidence
	reasons := []string{}

	if f.MissingFieldsCount > 0 {
		confidence -= missingFieldStep * float64(f.MissingFieldsCount)
		reasons = append(reasons, fmt.Sprintf("proposal is missing %d field(s)", f.MissingFieldsCount))
	}

	if trace.Degraded() {
		confidence -= traceFailureStep
		reasons = append(reasons, fmt.Sprintf("risk discovery degraded (%s: %s)",
			trace.Failures[0].Stage, trace.Failures[0].Error))
	}

	if !f.HasAssumptions {
		confidence -= noAssumptionsStep
		reasons = append(reasons, "no assumptions stated")
	}

	if !f.HasDependencies {
		confidence -= noDependenciesStep
		reasons = append(reasons, "no dependencies stated")
	}

	if total := risks.TotalRiskCount(); total > riskOverloadCeiling {
		confidence -= riskOverloadStep
		reasons = append(reasons, fmt.Sprintf("%d discovered risks exceed the review threshold", total))
	}

	if n := len(s.Conflicts); n > 0 {
		confidence -= conflictStep * float64(n)
		reasons = append(reasons, fmt.Sprintf("%d internal conflict(s) detected", n))
	}

	if f.HasAssumptions && f.HasDependencies && f.MissingFieldsCount == 0 {
		confidence += completenessBonus
		reasons = append(reasons, "well-structured proposal with assumptions and dependencies stated")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "standard confidence assessment")
	}

	return core.Clamp01(confidence), reasons
}
