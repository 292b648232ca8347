package heuristic

import (
	"encoding/json"
	"reflect"
	"testing"

	"gomandate/domain/decision"
	"gomandate/domain/proposal"
)

func TestClassify(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name string
		p    proposal.Context
		want ProposalFamily
	}{
		{"expansion keyword in summary", proposal.Context{Summary: "Expand into LATAM"}, FamilyExpansion},
		{"market keyword in title", proposal.Context{Title: "New market entry"}, FamilyExpansion},
		{"cost keyword", proposal.Context{Summary: "Reduce headcount spend"}, FamilyCostCut},
		{"layoff keyword", proposal.Context{Scope: "Layoffs in support"}, FamilyCostCut},
		{"platform keyword", proposal.Context{Summary: "Replatform the billing system"}, FamilyTechnology},
		{"migration keyword", proposal.Context{Title: "Database migration"}, FamilyTechnology},
		{"no keywords", proposal.Context{Summary: "Improve onboarding docs"}, FamilyGeneric},
		{"expansion outranks cost when both present", proposal.Context{Summary: "Expand while we reduce overhead"}, FamilyExpansion},
		{"empty proposal", proposal.Context{}, FamilyGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Classify(tt.p); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGenerateRisks_SchemaValid(t *testing.T) {
	g := NewGenerator()
	proposals := map[string]proposal.Context{
		"expansion":  {Summary: "Expand into LATAM"},
		"cost":       {Summary: "Cost efficiency program"},
		"technology": {Summary: "Infrastructure overhaul"},
		"generic":    {Summary: "Improve onboarding docs"},
	}

	for name, p := range proposals {
		t.Run(name, func(t *testing.T) {
			out := g.GenerateRisks(p)
			if err := out.Validate(); err != nil {
				t.Errorf("canned risk set fails validation: %v", err)
			}
			if out.TotalRiskCount() == 0 {
				t.Error("canned risk set is empty")
			}
			if len(out.Top3UnseenRisks) == 0 {
				t.Error("canned risk set has no top unseen risks")
			}
			if len(out.DataToCollectNext) == 0 {
				t.Error("canned risk set has no data-to-collect entries")
			}
		})
	}
}

func TestGenerateRisks_Deterministic(t *testing.T) {
	g := NewGenerator()
	p := proposal.Context{Summary: "Expand into LATAM"}
	if !reflect.DeepEqual(g.GenerateRisks(p), g.GenerateRisks(p)) {
		t.Error("GenerateRisks is not deterministic")
	}
}

func TestGenerateRisks_SurvivesSerializationRoundTrip(t *testing.T) {
	g := NewGenerator()
	out := g.GenerateRisks(proposal.Context{Summary: "Database migration"})

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var parsed decision.RiskDiscoveryOutput
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := parsed.Validate(); err != nil {
		t.Errorf("round-tripped risk set fails validation: %v", err)
	}
	if !reflect.DeepEqual(out, parsed) {
		t.Error("risk set changed across serialization round trip")
	}
}
