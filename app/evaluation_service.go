// Package app sequences the evaluation pipeline and assembles decision
// objects.
package app

import (
	"context"
	"fmt"

	"gomandate/domain/core"
	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/policy"
	"gomandate/domain/proposal"
	"gomandate/domain/scoring"
	"gomandate/internal"
	"gomandate/ports"
)

// EvaluationService runs one proposal through feature extraction, scoring,
// risk discovery, confidence computation, and the escalation ladder. The
// risk-discovery call is the pipeline's only suspension point; everything
// else is synchronous and pure. Concurrent evaluations share no state.
type EvaluationService struct {
	risk   ports.RiskDiscoveryPort
	logger *internal.Logger
}

// NewEvaluationService creates an evaluation service
func NewEvaluationService(risk ports.RiskDiscoveryPort) *EvaluationService {
	return &EvaluationService{
		risk:   risk,
		logger: internal.DefaultLogger,
	}
}

// Evaluate produces a complete decision object for the given frozen mandate
// and proposal. It cannot fail: model-call problems surface only inside the
// trace and as lowered confidence.
func (s *EvaluationService) Evaluate(ctx context.Context, m mandate.Context, p proposal.Context) (decision.Object, decision.ModelTrace) {
	features := scoring.ExtractFeatures(p)
	scores := scoring.Score(m, p, features)

	if m.Kind == mandate.KindWeighted {
		s.logger.Debug("[Evaluation] checked %d non-negotiable(s), %d violation(s)",
			len(m.NonNegotiables), len(scores.ConstraintViolations))
	}

	risks, trace := s.risk.DiscoverRisks(ctx, m, p)

	confidence, confidenceReasons := policy.Confidence(features, scores, risks, trace)
	outcome := policy.Escalate(m.Tolerance(), scores, risks, confidence)

	obj := decision.Object{
		Summary:              buildSummary(outcome.Recommendation, p.Title, scores),
		TradeoffScore:        scores.TradeoffScore,
		Conflicts:            scores.Conflicts,
		ConstraintViolations: scores.ConstraintViolations,
		UnseenRisks:          risks,
		Confidence:           confidence,
		ConfidenceReasons:    confidenceReasons,
		RequiredNextEvidence: risks.DataToCollectNext,
		Recommendation:       outcome.Recommendation,
		HumanRequired:        outcome.HumanRequired,
	}

	// The object carries the shape matching the mandate form
	if m.Kind == mandate.KindWeighted {
		impact := scores.ImpactEstimate
		obj.ImpactEstimate = &impact
	} else {
		obj.Outcomes = append([]string{}, m.Outcomes...)
	}
	if obj.RequiredNextEvidence == nil {
		obj.RequiredNextEvidence = []string{}
	}

	s.logger.Info("[Evaluation] %s recommendation=%s human=%v confidence=%.2f tradeoff=%.2f",
		p.Title, obj.Recommendation, obj.HumanRequired, obj.Confidence, obj.TradeoffScore)

	return obj, trace
}

// buildSummary concatenates a recommendation verb, the title, any finding
// counts, and the tradeoff score, truncated to the summary cap
func buildSummary(rec decision.Recommendation, title string, scores decision.Scores) string {
	var verb string
	switch rec {
	case decision.RecommendApprove:
		verb = "Proceed with"
	case decision.RecommendRevise:
		verb = "Revise"
	default:
		verb = "Escalate"
	}

	summary := fmt.Sprintf("%s %s", verb, title)
	if n := len(scores.ConstraintViolations); n > 0 {
		summary += fmt.Sprintf("; %d constraint violation(s)", n)
	}
	if n := len(scores.Conflicts); n > 0 {
		summary += fmt.Sprintf("; %d conflict(s)", n)
	}
	summary += fmt.Sprintf("; tradeoff %.0f%%", scores.TradeoffScore*100)

	return core.Truncate(summary, decision.MaxSummaryLen)
}
