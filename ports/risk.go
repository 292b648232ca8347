// Package ports defines the interfaces the evaluation core depends on.
package ports

import (
	"context"

	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/proposal"
)

// RiskDiscoveryPort discovers unseen risks for a proposal under a mandate.
// Implementations never return an error: every failure path yields a valid,
// if degraded, output with the failure recorded in the trace.
type RiskDiscoveryPort interface {
	DiscoverRisks(ctx context.Context, m mandate.Context, p proposal.Context) (decision.RiskDiscoveryOutput, decision.ModelTrace)
}

// LLMClient interface for LLM providers
type LLMClient interface {
	ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error)
}
