package decision

import (
	"errors"
	"fmt"
)

// ErrSchema is the root of every risk-schema rejection; callers test with
// errors.Is
var ErrSchema = errors.New("risk schema violation")

// Validate enforces the risk-taxonomy schema: recognized severities, list
// caps, and free-text length caps. Oversized responses are rejected whole.
func (o RiskDiscoveryOutput) Validate() error {
	categories := []struct {
		name  string
		items []RiskItem
	}{
		{"implicit_assumptions", o.ImplicitAssumptions},
		{"second_order_effects", o.SecondOrderEffects},
		{"tail_risks", o.TailRisks},
		{"metric_gaming_vectors", o.MetricGamingVectors},
		{"cross_functional_impacts", o.CrossFunctionalImpacts},
	}

	for _, cat := range categories {
		if len(cat.items) > MaxRiskItemsPerCategory {
			return fmt.Errorf("%w: %s has %d items, max %d",
				ErrSchema, cat.name, len(cat.items), MaxRiskItemsPerCategory)
		}
		for i, item := range cat.items {
			if err := item.validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", cat.name, i, err)
			}
		}
	}

	if len(o.Top3UnseenRisks) > MaxTopUnseenRisks {
		return fmt.Errorf("%w: top3_unseen_risks has %d entries, max %d",
			ErrSchema, len(o.Top3UnseenRisks), MaxTopUnseenRisks)
	}
	for i, s := range o.Top3UnseenRisks {
		if len(s) > MaxRiskTextLen {
			return fmt.Errorf("%w: top3_unseen_risks[%d] exceeds %d chars", ErrSchema, i, MaxRiskTextLen)
		}
	}

	if len(o.DataToCollectNext) > MaxDataToCollect {
		return fmt.Errorf("%w: data_to_collect_next has %d entries, max %d",
			ErrSchema, len(o.DataToCollectNext), MaxDataToCollect)
	}
	for i, s := range o.DataToCollectNext {
		if len(s) > MaxRiskTextLen {
			return fmt.Errorf("%w: data_to_collect_next[%d] exceeds %d chars", ErrSchema, i, MaxRiskTextLen)
		}
	}

	return nil
}

func (r RiskItem) validate() error {
	if !r.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrSchema, r.Severity)
	}
	if len(r.Risk) > MaxRiskTextLen {
		return fmt.Errorf("%w: risk text exceeds %d chars", ErrSchema, MaxRiskTextLen)
	}
	if len(r.EvidenceNeeded) > MaxRiskTextLen {
		return fmt.Errorf("%w: evidence_needed exceeds %d chars", ErrSchema, MaxRiskTextLen)
	}
	return nil
}

// Normalize replaces nil lists with empty ones so serialized output always
// carries every field
func (o *RiskDiscoveryOutput) Normalize() {
	if o.ImplicitAssumptions == nil {
		o.ImplicitAssumptions = []RiskItem{}
	}
	if o.SecondOrderEffects == nil {
		o.SecondOrderEffects = []RiskItem{}
	}
	if o.TailRisks == nil {
		o.TailRisks = []RiskItem{}
	}
	if o.MetricGamingVectors == nil {
		o.MetricGamingVectors = []RiskItem{}
	}
	if o.CrossFunctionalImpacts == nil {
		o.CrossFunctionalImpacts = []RiskItem{}
	}
	if o.Top3UnseenRisks == nil {
		o.Top3UnseenRisks = []string{}
	}
	if o.DataToCollectNext == nil {
		o.DataToCollectNext = []string{}
	}
}
