// Package llm adapts an external language model into the risk-discovery
// port, with strict output validation and a deterministic fallback.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gomandate/adapters/llm/heuristic"
	"gomandate/domain/core"
	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/proposal"
	"gomandate/internal"
	"gomandate/ports"
)

// Stage labels recorded in trace failures
const (
	stageTransport  = "transport"
	stageValidation = "validation"
)

// Config holds LLM adapter configuration
type Config struct {
	Model       string        // e.g., "gpt-4.1-mini"
	APIKey      string        // OpenAI API key; empty selects the deterministic mock path
	BaseURL     string        // Optional override (default: https://api.openai.com/v1)
	Temperature float64       // 0.0-1.0, lower = more deterministic
	MaxTokens   int           // Max tokens in response
	Timeout     time.Duration // Request timeout; the call is single-attempt, never retried
}

// RiskAdapter implements ports.RiskDiscoveryPort. It never propagates an
// error: transport and validation failures degrade to an empty risk set with
// the failure recorded in the trace.
type RiskAdapter struct {
	config Config
	client ports.LLMClient
	mock   *heuristic.Generator
	logger *internal.Logger
}

// NewRiskAdapter creates a risk-discovery adapter. With no API key
// configured it short-circuits every call to the deterministic generator.
func NewRiskAdapter(config Config) *RiskAdapter {
	adapter := &RiskAdapter{
		config: config,
		mock:   heuristic.NewGenerator(),
		logger: internal.DefaultLogger,
	}
	if config.APIKey != "" {
		client, err := newLLMClient(config)
		if err == nil {
			adapter.client = client
		}
	}
	return adapter
}

// NewRiskAdapterWithClient injects an LLM client directly (used in tests and
// by callers with their own transport)
func NewRiskAdapterWithClient(config Config, client ports.LLMClient) *RiskAdapter {
	return &RiskAdapter{
		config: config,
		client: client,
		mock:   heuristic.NewGenerator(),
		logger: internal.DefaultLogger,
	}
}

// DiscoverRisks implements ports.RiskDiscoveryPort
func (a *RiskAdapter) DiscoverRisks(ctx context.Context, m mandate.Context, p proposal.Context) (decision.RiskDiscoveryOutput, decision.ModelTrace) {
	if a.client == nil {
		return a.discoverMock(p)
	}
	return a.discoverModel(ctx, m, p)
}

// discoverMock runs the no-credential path: canned, schema-valid, non-empty
func (a *RiskAdapter) discoverMock(p proposal.Context) (decision.RiskDiscoveryOutput, decision.ModelTrace) {
	trace := decision.NewModelTrace("mock", "heuristic")
	start := time.Now()
	out := a.mock.GenerateRisks(p)
	trace.LatencyMs = time.Since(start).Milliseconds()
	a.logger.Debug("[RiskAdapter] mock risk set generated (family=%s)", a.mock.Classify(p))
	return out, trace
}

// discoverModel runs the live path. Failures convert to an empty risk set
// plus exactly one trace failure entry; the canned set is never substituted
// here.
func (a *RiskAdapter) discoverModel(ctx context.Context, m mandate.Context, p proposal.Context) (decision.RiskDiscoveryOutput, decision.ModelTrace) {
	trace := decision.NewModelTrace("openai", a.config.Model)

	timeout := a.config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := a.BuildPrompt(m, p)
	trace.PromptHash = core.NewPromptHash([]byte(prompt)).String()

	start := time.Now()
	response, err := a.client.ChatCompletion(ctx, a.config.Model, prompt, a.config.MaxTokens)
	trace.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		a.logger.Warn("[RiskAdapter] model call failed: %v", err)
		trace.AddFailure(stageTransport, err)
		return decision.EmptyRiskDiscovery(), trace
	}
	trace.ResponseHash = core.NewResponseHash([]byte(response)).String()

	out, err := extractRiskOutput(response)
	if err != nil {
		a.logger.Warn("[RiskAdapter] response rejected: %v", err)
		trace.AddFailure(stageValidation, err)
		return decision.EmptyRiskDiscovery(), trace
	}

	return out, trace
}

// BuildPrompt enumerates mandate priorities and proposal fields and instructs
// the model to return only JSON matching the risk-taxonomy schema
func (a *RiskAdapter) BuildPrompt(m mandate.Context, p proposal.Context) string {
	var b strings.Builder

	b.WriteString("You are reviewing a business proposal for risks its authors have not surfaced.\n\n")

	b.WriteString("Organizational mandate:\n")
	if m.Kind == mandate.KindWeighted {
		fmt.Fprintf(&b, "- Priority weights: growth=%.2f cost=%.2f risk=%.2f brand=%.2f\n",
			m.Weights.Growth, m.Weights.Cost, m.Weights.Risk, m.Weights.Brand)
		fmt.Fprintf(&b, "- Risk tolerance: %s\n", m.Tolerance())
		for i, nn := range m.NonNegotiables {
			fmt.Fprintf(&b, "- Non-negotiable %d: %s\n", i+1, nn)
		}
	} else {
		b.WriteString("- Ranked priorities (1 = highest):\n")
		for i, outcome := range m.Outcomes {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, outcome)
		}
	}

	b.WriteString("\nProposal:\n")
	fmt.Fprintf(&b, "- Title: %s\n", p.Title)
	fmt.Fprintf(&b, "- Summary: %s\n", p.Summary)
	fmt.Fprintf(&b, "- Scope: %s\n", p.Scope)
	fmt.Fprintf(&b, "- Assumptions: %s\n", joinOrNone(p.Assumptions))
	fmt.Fprintf(&b, "- Dependencies: %s\n", joinOrNone(p.Dependencies))

	fmt.Fprintf(&b, `
Identify risks the proposal authors have not seen. Respond with ONLY a JSON
object in exactly this shape, no other text:

{
  "implicit_assumptions": [{"risk": "...", "severity": "low|med|high", "evidence_needed": "..."}],
  "second_order_effects": [...],
  "tail_risks": [...],
  "metric_gaming_vectors": [...],
  "cross_functional_impacts": [...],
  "top3_unseen_risks": ["...", "...", "..."],
  "data_to_collect_next": ["..."]
}

Constraints: at most %d items per category, at most %d top3_unseen_risks, at
most %d data_to_collect_next entries, every free-text field under %d
characters. Severity must be exactly "low", "med", or "high".
`,
		decision.MaxRiskItemsPerCategory, decision.MaxTopUnseenRisks,
		decision.MaxDataToCollect, decision.MaxRiskTextLen)

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none stated)"
	}
	return strings.Join(items, "; ")
}
