package llm

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/proposal"
)

func testMandate() mandate.Context {
	return mandate.Weighted(
		mandate.Weights{Growth: 0.4, Cost: 0.2, Risk: 0.3, Brand: 0.1},
		mandate.ToleranceModerate,
		[]string{"No layoffs"},
	)
}

func testProposal() proposal.Context {
	return proposal.Context{
		Title:        "Market expansion",
		Summary:      "Expand into two adjacent markets",
		Scope:        "Marketing, sales, support",
		Assumptions:  []string{"Demand transfers"},
		Dependencies: []string{"Brand refresh"},
	}
}

func TestDiscoverRisks_MockPath(t *testing.T) {
	adapter := NewRiskAdapter(Config{Model: "gpt-4o-mini"}) // no API key

	out, trace := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())

	assert.Equal(t, "mock", trace.Provider)
	assert.Equal(t, "heuristic", trace.Model)
	assert.False(t, trace.Degraded())
	require.NoError(t, out.Validate())
	assert.Greater(t, out.TotalRiskCount(), 0, "canned risk sets are never empty")
}

func TestDiscoverRisks_MockPathDeterministic(t *testing.T) {
	adapter := NewRiskAdapter(Config{})
	first, _ := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())
	second, _ := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())
	if !reflect.DeepEqual(first, second) {
		t.Error("mock risk discovery is not deterministic")
	}
}

func TestDiscoverRisks_ValidModelResponse(t *testing.T) {
	client := &MockLLMClient{Response: validRiskJSON}
	adapter := NewRiskAdapterWithClient(Config{Model: "gpt-4o-mini", APIKey: "k"}, client)

	out, trace := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())

	assert.Equal(t, "openai", trace.Provider)
	assert.False(t, trace.Degraded())
	assert.True(t, out.HasHighTailRisk())
	assert.NotEmpty(t, trace.PromptHash)
	assert.NotEmpty(t, trace.ResponseHash)
	assert.False(t, trace.CalledAt.IsZero())
}

func TestDiscoverRisks_TransportFailureDegrades(t *testing.T) {
	client := &MockLLMClient{Error: errors.New("connection refused")}
	adapter := NewRiskAdapterWithClient(Config{Model: "gpt-4o-mini", APIKey: "k"}, client)

	out, trace := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())

	assert.Equal(t, decision.EmptyRiskDiscovery(), out, "failed call substitutes the empty risk set, not the canned one")
	require.Len(t, trace.Failures, 1)
	assert.Equal(t, "transport", trace.Failures[0].Stage)
	assert.Contains(t, trace.Failures[0].Error, "connection refused")
	assert.NotEmpty(t, trace.PromptHash)
	assert.Empty(t, trace.ResponseHash, "no response arrived to hash")
}

func TestDiscoverRisks_ProseResponseDegrades(t *testing.T) {
	client := &MockLLMClient{Response: "I think the proposal looks fine overall."}
	adapter := NewRiskAdapterWithClient(Config{Model: "gpt-4o-mini", APIKey: "k"}, client)

	out, trace := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())

	assert.Equal(t, 0, out.TotalRiskCount())
	require.Len(t, trace.Failures, 1)
	assert.Equal(t, "validation", trace.Failures[0].Stage)
}

func TestDiscoverRisks_FencedModelResponse(t *testing.T) {
	client := &MockLLMClient{Response: "Here you go:\n```json\n" + validRiskJSON + "\n```"}
	adapter := NewRiskAdapterWithClient(Config{Model: "gpt-4o-mini", APIKey: "k"}, client)

	out, trace := adapter.DiscoverRisks(context.Background(), testMandate(), testProposal())

	assert.False(t, trace.Degraded())
	assert.Equal(t, 2, out.TotalRiskCount())
}

func TestBuildPrompt_WeightedMandate(t *testing.T) {
	adapter := NewRiskAdapter(Config{})
	prompt := adapter.BuildPrompt(testMandate(), testProposal())

	for _, needle := range []string{
		"growth=0.40",
		"MODERATE",
		"No layoffs",
		"Market expansion",
		"Demand transfers",
		"top3_unseen_risks",
		`"low", "med", or "high"`,
	} {
		if !strings.Contains(prompt, needle) {
			t.Errorf("prompt missing %q", needle)
		}
	}
}

func TestBuildPrompt_OutcomeRankedMandate(t *testing.T) {
	adapter := NewRiskAdapter(Config{})
	m := mandate.OutcomeRanked([]string{"Grow revenue", "Protect brand"})
	prompt := adapter.BuildPrompt(m, testProposal())

	assert.Contains(t, prompt, "Ranked priorities")
	assert.Contains(t, prompt, "1. Grow revenue")
	assert.Contains(t, prompt, "2. Protect brand")
	assert.NotContains(t, prompt, "Non-negotiable")
}

func TestBuildPrompt_EmptyListsMarkedNone(t *testing.T) {
	adapter := NewRiskAdapter(Config{})
	prompt := adapter.BuildPrompt(testMandate(), proposal.Context{Title: "Bare"})
	assert.Contains(t, prompt, "(none stated)")
}
