// Package decision holds the evaluation pipeline's data model: derived
// features, deterministic scores, discovered risks, the model-call trace,
// and the final decision object consumed by storage and audit layers.
//
// JSON field names, enum values, and size caps here are a wire contract;
// downstream callers persist and re-validate these shapes byte for byte.
package decision

import "gomandate/domain/core"

// Features are deterministic, purely structural signals derived from a
// proposal. Created once per evaluation and never mutated.
type Features struct {
	MissingFieldsCount int     `json:"missing_fields_count"`
	ComplexityScore    float64 `json:"complexity_score"`
	DependencyCount    int     `json:"dependency_count"`
	AssumptionCount    int     `json:"assumption_count"`
	ScopeLength        int     `json:"scope_length"`
	HasAssumptions     bool    `json:"has_assumptions"`
	HasDependencies    bool    `json:"has_dependencies"`
}

// ImpactEstimate holds one banded value per mandate dimension. Each value is
// drawn from the band vocabulary ("High"/"Medium"/"Low", optionally with a
// qualifying annotation such as "High ($250,000 stated)").
type ImpactEstimate struct {
	Growth string `json:"growth"`
	Cost   string `json:"cost"`
	Risk   string `json:"risk"`
	Brand  string `json:"brand"`
}

// Scores is the deterministic scorer's complete output
type Scores struct {
	ImpactEstimate       ImpactEstimate `json:"impact_estimate"`
	TradeoffScore        float64        `json:"tradeoff_score"`
	Conflicts            []string       `json:"conflicts"`
	ConstraintViolations []string       `json:"constraint_violations"`
}

// Severity grades a discovered risk
type Severity string

const (
	SeverityLow  Severity = "low"
	SeverityMed  Severity = "med"
	SeverityHigh Severity = "high"
)

// Valid reports whether the severity is a recognized enum value
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMed, SeverityHigh:
		return true
	}
	return false
}

// RiskItem is a single AI-discovered risk with the evidence that would
// confirm or dismiss it
type RiskItem struct {
	Risk           string   `json:"risk"`
	Severity       Severity `json:"severity"`
	EvidenceNeeded string   `json:"evidence_needed"`
}

// Schema caps for risk-discovery output. Out-of-range model responses are
// rejected whole, never silently truncated.
const (
	MaxRiskItemsPerCategory = 5
	MaxTopUnseenRisks       = 3
	MaxDataToCollect        = 5
	MaxRiskTextLen          = 200
	MaxSummaryLen           = 240
)

// RiskDiscoveryOutput is the strict risk-taxonomy schema the model (or the
// canned generator) must satisfy
type RiskDiscoveryOutput struct {
	ImplicitAssumptions    []RiskItem `json:"implicit_assumptions"`
	SecondOrderEffects     []RiskItem `json:"second_order_effects"`
	TailRisks              []RiskItem `json:"tail_risks"`
	MetricGamingVectors    []RiskItem `json:"metric_gaming_vectors"`
	CrossFunctionalImpacts []RiskItem `json:"cross_functional_impacts"`
	Top3UnseenRisks        []string   `json:"top3_unseen_risks"`
	DataToCollectNext      []string   `json:"data_to_collect_next"`
}

// EmptyRiskDiscovery returns the degraded result substituted when the model
// path fails: every list present and empty, never nil
func EmptyRiskDiscovery() RiskDiscoveryOutput {
	return RiskDiscoveryOutput{
		ImplicitAssumptions:    []RiskItem{},
		SecondOrderEffects:     []RiskItem{},
		TailRisks:              []RiskItem{},
		MetricGamingVectors:    []RiskItem{},
		CrossFunctionalImpacts: []RiskItem{},
		Top3UnseenRisks:        []string{},
		DataToCollectNext:      []string{},
	}
}

// Categories returns the five category lists in their fixed order
func (o RiskDiscoveryOutput) Categories() [][]RiskItem {
	return [][]RiskItem{
		o.ImplicitAssumptions,
		o.SecondOrderEffects,
		o.TailRisks,
		o.MetricGamingVectors,
		o.CrossFunctionalImpacts,
	}
}

// TotalRiskCount counts risk items across all five categories
func (o RiskDiscoveryOutput) TotalRiskCount() int {
	n := 0
	for _, cat := range o.Categories() {
		n += len(cat)
	}
	return n
}

// HighSeverityCount counts severity="high" items across all five categories
func (o RiskDiscoveryOutput) HighSeverityCount() int {
	n := 0
	for _, cat := range o.Categories() {
		for _, item := range cat {
			if item.Severity == SeverityHigh {
				n++
			}
		}
	}
	return n
}

// HasHighTailRisk reports whether any tail-risk item carries high severity
func (o RiskDiscoveryOutput) HasHighTailRisk() bool {
	for _, item := range o.TailRisks {
		if item.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// EvidenceNeeded collects the evidence strings from every risk item,
// category order preserved
func (o RiskDiscoveryOutput) EvidenceNeeded() []string {
	out := []string{}
	for _, cat := range o.Categories() {
		for _, item := range cat {
			if item.EvidenceNeeded != "" {
				out = append(out, item.EvidenceNeeded)
			}
		}
	}
	return out
}

// TraceFailure records one failed stage of a model call
type TraceFailure struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// ModelTrace is call metadata for the risk-discovery invocation. It is
// always populated, including on failure. Prompt and response hashes let
// audits pin which exact texts produced a decision without storing them.
type ModelTrace struct {
	Provider     string         `json:"provider"`
	Model        string         `json:"model"`
	CalledAt     core.Timestamp `json:"called_at"`
	LatencyMs    int64          `json:"latency_ms"`
	PromptHash   string         `json:"prompt_hash,omitempty"`
	ResponseHash string         `json:"response_hash,omitempty"`
	Failures     []TraceFailure `json:"failures"`
}

// NewModelTrace builds a trace with an empty (non-nil) failure list
func NewModelTrace(provider, model string) ModelTrace {
	return ModelTrace{
		Provider: provider,
		Model:    model,
		CalledAt: core.Now(),
		Failures: []TraceFailure{},
	}
}

// AddFailure appends a stage failure entry
func (t *ModelTrace) AddFailure(stage string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	t.Failures = append(t.Failures, TraceFailure{Stage: stage, Error: msg})
}

// Degraded reports whether any stage of the model call failed
func (t ModelTrace) Degraded() bool {
	return len(t.Failures) > 0
}

// Recommendation is the machine-generated verdict on a proposal
type Recommendation string

const (
	RecommendApprove  Recommendation = "APPROVE"
	RecommendRevise   Recommendation = "REVISE"
	RecommendEscalate Recommendation = "ESCALATE"
)

// Object is the complete structured output of one evaluation. It carries no
// hidden state: it is fully re-derivable from the mandate, the proposal, the
// trace, and the risk-discovery output.
type Object struct {
	Summary              string              `json:"summary"`
	ImpactEstimate       *ImpactEstimate     `json:"impact_estimate,omitempty"`
	Outcomes             []string            `json:"outcomes,omitempty"`
	TradeoffScore        float64             `json:"tradeoff_score"`
	Conflicts            []string            `json:"conflicts"`
	ConstraintViolations []string            `json:"constraint_violations"`
	UnseenRisks          RiskDiscoveryOutput `json:"unseen_risks"`
	Confidence           float64             `json:"confidence"`
	ConfidenceReasons    []string            `json:"confidence_reasons"`
	RequiredNextEvidence []string            `json:"required_next_evidence"`
	Recommendation       Recommendation      `json:"recommendation"`
	HumanRequired        bool                `json:"human_required"`
}
