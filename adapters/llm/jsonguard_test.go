package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomandate/domain/decision"
)

const validRiskJSON = `{
  "implicit_assumptions": [{"risk": "assumes stable demand", "severity": "med", "evidence_needed": "demand study"}],
  "second_order_effects": [],
  "tail_risks": [{"risk": "regulatory block", "severity": "high", "evidence_needed": "legal review"}],
  "metric_gaming_vectors": [],
  "cross_functional_impacts": [],
  "top3_unseen_risks": ["localization cost overrun"],
  "data_to_collect_next": ["pilot conversion data"]
}`

func TestExtractRiskOutput_DirectJSON(t *testing.T) {
	out, err := extractRiskOutput(validRiskJSON)
	require.NoError(t, err)
	assert.Len(t, out.ImplicitAssumptions, 1)
	assert.Equal(t, decision.SeverityHigh, out.TailRisks[0].Severity)
	assert.NotNil(t, out.MetricGamingVectors, "normalize should fill absent lists")
}

func TestExtractRiskOutput_FencedBlock(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n" + validRiskJSON + "\n```\nLet me know if you need more."
	out, err := extractRiskOutput(raw)
	require.NoError(t, err)
	assert.True(t, out.HasHighTailRisk())
}

func TestExtractRiskOutput_FencedBlockWithoutLanguageTag(t *testing.T) {
	raw := "```\n" + validRiskJSON + "\n```"
	_, err := extractRiskOutput(raw)
	require.NoError(t, err)
}

func TestExtractRiskOutput_BalancedSpanInProse(t *testing.T) {
	raw := "Sure! The risks are " + validRiskJSON + " and that is everything."
	out, err := extractRiskOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalRiskCount())
}

func TestExtractRiskOutput_BracesInsideStrings(t *testing.T) {
	embedded := strings.Replace(validRiskJSON, "assumes stable demand", `assumes {nested} demand`, 1)
	raw := "preamble " + embedded + " postamble"
	out, err := extractRiskOutput(raw)
	require.NoError(t, err)
	assert.Contains(t, out.ImplicitAssumptions[0].Risk, "{nested}")
}

func TestExtractRiskOutput_Failures(t *testing.T) {
	overCap := decision.EmptyRiskDiscovery()
	for i := 0; i <= decision.MaxRiskItemsPerCategory; i++ {
		overCap.TailRisks = append(overCap.TailRisks, decision.RiskItem{Risk: "r", Severity: decision.SeverityLow})
	}
	overCapJSON, err := json.Marshal(overCap)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{"plain prose", "I could not find any risks worth mentioning."},
		{"empty response", ""},
		{"truncated object", `{"implicit_assumptions": [{"risk": "cut off`},
		{"wrong severity vocabulary", `{"tail_risks": [{"risk": "r", "severity": "catastrophic"}]}`},
		{"over category cap", string(overCapJSON)},
		{"oversized text rejected not truncated", fmt.Sprintf(`{"top3_unseen_risks": [%q]}`, strings.Repeat("x", decision.MaxRiskTextLen+1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractRiskOutput(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFencedBlock(t *testing.T) {
	block, ok := fencedBlock("before ```json\n{\"a\": 1}\n``` after")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, block)

	_, ok = fencedBlock("no fences here")
	assert.False(t, ok)

	_, ok = fencedBlock("``` unterminated")
	assert.False(t, ok)
}

func TestBalancedObjectSpan(t *testing.T) {
	span, ok := balancedObjectSpan(`text {"a": {"b": 2}} more`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 2}}`, span)

	_, ok = balancedObjectSpan("no object")
	assert.False(t, ok)

	_, ok = balancedObjectSpan(`{"unclosed": 1`)
	assert.False(t, ok)
}
