package policy

import (
	"strings"
	"testing"

	"gomandate/domain/decision"
	"gomandate/domain/mandate"
)

func highTailRisks() decision.RiskDiscoveryOutput {
	out := decision.EmptyRiskDiscovery()
	out.TailRisks = append(out.TailRisks, decision.RiskItem{Risk: "r", Severity: decision.SeverityHigh})
	return out
}

func highSeverityRisks(n int) decision.RiskDiscoveryOutput {
	out := decision.EmptyRiskDiscovery()
	for i := 0; i < n; i++ {
		out.CrossFunctionalImpacts = append(out.CrossFunctionalImpacts, decision.RiskItem{
			Risk:     "r",
			Severity: decision.SeverityHigh,
		})
	}
	return out
}

func TestEscalate_Ladder(t *testing.T) {
	tests := []struct {
		name       string
		tolerance  mandate.RiskTolerance
		s          decision.Scores
		risks      decision.RiskDiscoveryOutput
		confidence float64
		wantRec    decision.Recommendation
		wantHuman  bool
		wantReason string
	}{
		{
			name:       "constraint violation escalates",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.95, ConstraintViolations: []string{"v"}},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.9,
			wantRec:    decision.RecommendEscalate,
			wantHuman:  true,
			wantReason: "non-negotiable",
		},
		{
			name:       "low confidence escalates",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.95},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.35,
			wantRec:    decision.RecommendEscalate,
			wantHuman:  true,
			wantReason: "confidence",
		},
		{
			name:       "high tail risk escalates",
			tolerance:  mandate.ToleranceAggressive,
			s:          decision.Scores{TradeoffScore: 0.95},
			risks:      highTailRisks(),
			confidence: 0.9,
			wantRec:    decision.RecommendEscalate,
			wantHuman:  true,
			wantReason: "tail risk",
		},
		{
			name:       "three high severity risks escalate",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.95},
			risks:      highSeverityRisks(3),
			confidence: 0.9,
			wantRec:    decision.RecommendEscalate,
			wantHuman:  true,
			wantReason: "high-severity",
		},
		{
			name:       "two high severity risks do not",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.95},
			risks:      highSeverityRisks(2),
			confidence: 0.9,
			wantRec:    decision.RecommendApprove,
			wantHuman:  false,
		},
		{
			name:       "strong alignment approves hands-off",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.7},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.9,
			wantRec:    decision.RecommendApprove,
			wantHuman:  false,
			wantReason: "strong",
		},
		{
			name:       "conservative tolerance keeps a human in the loop",
			tolerance:  mandate.ToleranceConservative,
			s:          decision.Scores{TradeoffScore: 0.85},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.9,
			wantRec:    decision.RecommendApprove,
			wantHuman:  true,
			wantReason: "sign-off",
		},
		{
			name:       "moderate alignment approves with review",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.5},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.9,
			wantRec:    decision.RecommendApprove,
			wantHuman:  true,
			wantReason: "review advised",
		},
		{
			name:       "weak alignment suggests revision",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.3},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.9,
			wantRec:    decision.RecommendRevise,
			wantHuman:  false,
			wantReason: "revision",
		},
		{
			name:       "poor alignment revises with guidance",
			tolerance:  mandate.ToleranceModerate,
			s:          decision.Scores{TradeoffScore: 0.1},
			risks:      decision.EmptyRiskDiscovery(),
			confidence: 0.9,
			wantRec:    decision.RecommendRevise,
			wantHuman:  true,
			wantReason: "guidance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escalate(tt.tolerance, tt.s, tt.risks, tt.confidence)
			if got.Recommendation != tt.wantRec {
				t.Errorf("recommendation = %s, want %s", got.Recommendation, tt.wantRec)
			}
			if got.HumanRequired != tt.wantHuman {
				t.Errorf("human required = %v, want %v", got.HumanRequired, tt.wantHuman)
			}
			if len(got.Reasons) != 1 {
				t.Fatalf("reasons = %v, want exactly one", got.Reasons)
			}
			if tt.wantReason != "" && !strings.Contains(got.Reasons[0], tt.wantReason) {
				t.Errorf("reason = %q, want substring %q", got.Reasons[0], tt.wantReason)
			}
		})
	}
}

func TestEscalate_FirstMatchWins(t *testing.T) {
	// A violated constraint outranks every other condition, including low
	// confidence and tail risks.
	s := decision.Scores{TradeoffScore: 0.1, ConstraintViolations: []string{"v"}}
	got := Escalate(mandate.ToleranceConservative, s, highTailRisks(), 0.1)
	if got.Recommendation != decision.RecommendEscalate {
		t.Errorf("recommendation = %s, want ESCALATE", got.Recommendation)
	}
	if !strings.Contains(got.Reasons[0], "non-negotiable") {
		t.Errorf("reason = %q, want the constraint rung", got.Reasons[0])
	}
}
