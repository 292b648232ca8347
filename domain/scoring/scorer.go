package scoring

import (
	"gonum.org/v1/gonum/stat"

	"gomandate/domain/core"
	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/proposal"
)

// Penalty per structurally missing proposal field
const missingFieldPenalty = 0.05

// Score converts proposal text, derived features, and mandate priorities into
// an impact estimate, a tradeoff score, and the conflict and violation lists.
// Best-effort pattern matching throughout: unmatched text produces neutral
// bands or no findings, never an error.
func Score(m mandate.Context, p proposal.Context, f decision.Features) decision.Scores {
	in := ruleInput{Text: p.SearchText(), Features: f}

	impact := decision.ImpactEstimate{
		Growth: applyBandLadder(growthRules, in),
		Cost:   applyBandLadder(costRules, in),
		Risk:   applyBandLadder(riskRules, in),
		Brand:  applyBandLadder(brandRules, in),
	}

	scores := decision.Scores{
		ImpactEstimate:       impact,
		TradeoffScore:        tradeoffScore(m, impact, f),
		Conflicts:            detectConflicts(in),
		ConstraintViolations: []string{},
	}

	// The outcome-ranked shape carries no non-negotiables to check
	if m.Kind == mandate.KindWeighted {
		scores.ConstraintViolations = checkConstraints(m.NonNegotiables, in)
	}

	return scores
}

// tradeoffScore takes the weights-normalized mean of the band proxies, then
// subtracts the missing-field penalty. All-zero weights (and the
// outcome-ranked shape, which has none) average the proxies evenly.
func tradeoffScore(m mandate.Context, impact decision.ImpactEstimate, f decision.Features) float64 {
	proxies := []float64{
		BandProxy(impact.Growth),
		BandProxy(impact.Cost),
		BandProxy(impact.Risk),
		BandProxy(impact.Brand),
	}

	var base float64
	weights := m.Weights
	switch {
	case m.Kind != mandate.KindWeighted:
		// Outcome-ranked mandates carry no dimension weights
		base = stat.Mean(proxies, nil)
	case weights.Total() == 0:
		// Neutral rather than dividing by zero
		base = proxyUnknown
	default:
		base = stat.Mean(proxies, []float64{weights.Growth, weights.Cost, weights.Risk, weights.Brand})
	}

	return core.Clamp01(base - missingFieldPenalty*float64(f.MissingFieldsCount))
}
