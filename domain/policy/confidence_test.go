package policy

import (
	"math"
	"strings"
	"testing"

	"gomandate/domain/decision"
)

func completeFeatures() decision.Features {
	return decision.Features{
		MissingFieldsCount: 0,
		HasAssumptions:     true,
		HasDependencies:    true,
	}
}

func cleanTrace() decision.ModelTrace {
	return decision.NewModelTrace("mock", "heuristic")
}

func failedTrace() decision.ModelTrace {
	t := decision.NewModelTrace("openai", "gpt-4o-mini")
	t.AddFailure("transport", errTimeout{})
	return t
}

type errTimeout struct{}

func (errTimeout) Error() string { return "request timed out" }

func risksOfCount(n int) decision.RiskDiscoveryOutput {
	out := decision.EmptyRiskDiscovery()
	for i := 0; i < n; i++ {
		out.SecondOrderEffects = append(out.SecondOrderEffects, decision.RiskItem{
			Risk:     "r",
			Severity: decision.SeverityLow,
		})
	}
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConfidence_CompleteProposalEarnsBonus(t *testing.T) {
	got, reasons := Confidence(completeFeatures(), decision.Scores{}, decision.EmptyRiskDiscovery(), cleanTrace())
	if !almostEqual(got, 0.9) {
		t.Errorf("confidence = %f, want 0.9", got)
	}
	if len(reasons) != 1 || !strings.Contains(reasons[0], "well-structured") {
		t.Errorf("reasons = %v, want the completeness bonus reason", reasons)
	}
}

func TestConfidence_Penalties(t *testing.T) {
	tests := []struct {
		name  string
		f     decision.Features
		s     decision.Scores
		risks decision.RiskDiscoveryOutput
		trace decision.ModelTrace
		want  float64
	}{
		{
			name:  "sparse proposal stacks three penalties",
			f:     decision.Features{MissingFieldsCount: 3},
			risks: decision.EmptyRiskDiscovery(),
			trace: cleanTrace(),
			// 0.8 - 0.3 missing - 0.1 no assumptions - 0.05 no dependencies
			want: 0.35,
		},
		{
			name:  "degraded model call",
			f:     completeFeatures(),
			risks: decision.EmptyRiskDiscovery(),
			trace: failedTrace(),
			// 0.8 - 0.3 degraded + 0.1 bonus
			want: 0.6,
		},
		{
			name:  "risk overload",
			f:     completeFeatures(),
			risks: risksOfCount(11),
			trace: cleanTrace(),
			want:  0.8,
		},
		{
			name:  "ten risks stay under the overload ceiling",
			f:     completeFeatures(),
			risks: risksOfCount(10),
			trace: cleanTrace(),
			want:  0.9,
		},
		{
			name:  "each conflict shaves a step",
			f:     completeFeatures(),
			s:     decision.Scores{Conflicts: []string{"a", "b"}},
			risks: decision.EmptyRiskDiscovery(),
			trace: cleanTrace(),
			want:  0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reasons := Confidence(tt.f, tt.s, tt.risks, tt.trace)
			if !almostEqual(got, tt.want) {
				t.Errorf("confidence = %f, want %f (reasons %v)", got, tt.want, reasons)
			}
		})
	}
}

func TestConfidence_DegradedReasonNamesStage(t *testing.T) {
	_, reasons := Confidence(completeFeatures(), decision.Scores{}, decision.EmptyRiskDiscovery(), failedTrace())
	found := false
	for _, r := range reasons {
		if strings.Contains(r, "transport") && strings.Contains(r, "timed out") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasons %v do not name the failed stage", reasons)
	}
}

func TestConfidence_ClampedAtZero(t *testing.T) {
	f := decision.Features{MissingFieldsCount: 5}
	s := decision.Scores{Conflicts: []string{"a", "b", "c"}}
	got, _ := Confidence(f, s, risksOfCount(12), failedTrace())
	if got != 0 {
		t.Errorf("confidence = %f, want clamp at 0", got)
	}
}
