package policy

import (
	"fmt"

	"gomandate/domain/decision"
	"gomandate/domain/mandate"
)

// Thresholds for the escalation ladder
const (
	lowConfidenceFloor  = 0.4
	strongTradeoffFloor = 0.7
	decentTradeoffFloor = 0.5
	weakTradeoffFloor   = 0.3
	highSeverityCeiling = 3
)

// Outcome is the terminal result of the escalation ladder
type Outcome struct {
	Recommendation decision.Recommendation
	HumanRequired  bool
	Reasons        []string
}

// Escalate walks the decision ladder top to bottom; the first matching rung
// fires, appends its one reason, and terminates.
func Escalate(tolerance mandate.RiskTolerance, s decision.Scores, risks decision.RiskDiscoveryOutput, confidence float64) Outcome {
	if n := len(s.ConstraintViolations); n > 0 {
		return Outcome{
			Recommendation: decision.RecommendEscalate,
			HumanRequired:  true,
			Reasons:        []string{fmt.Sprintf("%d non-negotiable constraint(s) violated", n)},
		}
	}

	if confidence < lowConfidenceFloor {
		return Outcome{
			Recommendation: decision.RecommendEscalate,
			HumanRequired:  true,
			Reasons:        []string{fmt.Sprintf("confidence %.2f below the %.1f floor", confidence, lowConfidenceFloor)},
		}
	}

	if risks.HasHighTailRisk() {
		return Outcome{
			Recommendation: decision.RecommendEscalate,
			HumanRequired:  true,
			Reasons:        []string{"high-severity tail risk discovered"},
		}
	}

	if n := risks.HighSeverityCount(); n >= highSeverityCeiling {
		return Outcome{
			Recommendation: decision.RecommendEscalate,
			HumanRequired:  true,
			Reasons:        []string{fmt.Sprintf("%d high-severity risks discovered", n)},
		}
	}

	if s.TradeoffScore >= strongTradeoffFloor {
		if tolerance == mandate.ToleranceConservative {
			return Outcome{
				Recommendation: decision.RecommendApprove,
				HumanRequired:  true,
				Reasons:        []string{"strong mandate alignment; conservative tolerance requires sign-off"},
			}
		}
		return Outcome{
			Recommendation: decision.RecommendApprove,
			HumanRequired:  false,
			Reasons:        []string{"strong mandate alignment"},
		}
	}

	if s.TradeoffScore >= decentTradeoffFloor {
		return Outcome{
			Recommendation: decision.RecommendApprove,
			HumanRequired:  true,
			Reasons:        []string{"moderate mandate alignment; human review advised"},
		}
	}

	if s.TradeoffScore >= weakTradeoffFloor {
		return Outcome{
			Recommendation: decision.RecommendRevise,
			HumanRequired:  false,
			Reasons:        []string{"weak mandate alignment; revision suggested"},
		}
	}

	return Outcome{
		Recommendation: decision.RecommendRevise,
		HumanRequired:  true,
		Reasons:        []string{"poor mandate alignment; revise with human guidance"},
	}
}
