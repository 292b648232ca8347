// Package heuristic provides a deterministic risk generator used when no
// model credential is configured. Its canned output keeps demos and tests
// reproducible with no network access.
package heuristic

import (
	"strings"

	"gomandate/domain/decision"
	"gomandate/domain/proposal"
)

// ProposalFamily is the keyword classification a canned risk set keys on
type ProposalFamily string

const (
	FamilyExpansion  ProposalFamily = "expansion"
	FamilyCostCut    ProposalFamily = "cost_cutting"
	FamilyTechnology ProposalFamily = "technology"
	FamilyGeneric    ProposalFamily = "generic"
)

// Generator creates risk sets using keyword classification rules
type Generator struct{}

// NewGenerator creates a new heuristic risk generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateRisks classifies the proposal by keyword family and returns the
// matching hand-authored, schema-valid risk set. Fully deterministic.
func (g *Generator) GenerateRisks(p proposal.Context) decision.RiskDiscoveryOutput {
	switch g.Classify(p) {
	case FamilyExpansion:
		return expansionRisks()
	case FamilyCostCut:
		return costCuttingRisks()
	case FamilyTechnology:
		return technologyRisks()
	default:
		return genericRisks()
	}
}

// Classify assigns the proposal to a keyword family. Families are checked in
// fixed order; the first match wins.
func (g *Generator) Classify(p proposal.Context) ProposalFamily {
	text := strings.ToLower(p.Title + " " + p.Summary + " " + p.Scope)

	if g.containsAny(text, []string{"expansion", "expand", "market", "launch", "new region", "growth"}) {
		return FamilyExpansion
	}
	if g.containsAny(text, []string{"cost", "efficiency", "reduce", "consolidat", "downsize", "layoff"}) {
		return FamilyCostCut
	}
	if g.containsAny(text, []string{"technology", "platform", "infrastructure", "migration", "system", "software"}) {
		return FamilyTechnology
	}
	return FamilyGeneric
}

// containsAny checks if text contains any of the substrings
func (g *Generator) containsAny(text string, substrings []string) bool {
	for _, substr := range substrings {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

func expansionRisks() decision.RiskDiscoveryOutput {
	return decision.RiskDiscoveryOutput{
		ImplicitAssumptions: []decision.RiskItem{
			{Risk: "Assumes demand in the new market mirrors the home market", Severity: decision.SeverityMed, EvidenceNeeded: "Localized demand study or pilot cohort conversion data"},
			{Risk: "Assumes current team can absorb expansion workload", Severity: decision.SeverityMed, EvidenceNeeded: "Capacity plan with named owners per workstream"},
		},
		SecondOrderEffects: []decision.RiskItem{
			{Risk: "Support and fulfillment quality degrades in existing markets as attention shifts", Severity: decision.SeverityMed, EvidenceNeeded: "Baseline support SLAs and staffing coverage model"},
		},
		TailRisks: []decision.RiskItem{
			{Risk: "Regulatory regime in the target market blocks the core offering", Severity: decision.SeverityMed, EvidenceNeeded: "Legal review of target-market licensing requirements"},
		},
		MetricGamingVectors: []decision.RiskItem{
			{Risk: "Launch-count targets met with shallow market entries that never reach viability", Severity: decision.SeverityLow, EvidenceNeeded: "Per-market retention and unit economics, not launch counts"},
		},
		CrossFunctionalImpacts: []decision.RiskItem{
			{Risk: "Legal, finance, and support onboarding for new jurisdictions is unbudgeted", Severity: decision.SeverityMed, EvidenceNeeded: "Cross-team cost estimate signed by each function"},
		},
		Top3UnseenRisks: []string{
			"Localization costs routinely exceed initial estimates",
			"Existing-market churn during leadership attention shift",
			"Partner dependencies in the new market are single points of failure",
		},
		DataToCollectNext: []string{
			"Competitive density in the target market",
			"Pilot-cohort conversion and retention curves",
			"Jurisdictional compliance cost estimate",
		},
	}
}

func costCuttingRisks() decision.RiskDiscoveryOutput {
	return decision.RiskDiscoveryOutput{
		ImplicitAssumptions: []decision.RiskItem{
			{Risk: "Assumes cuts remove slack rather than load-bearing capacity", Severity: decision.SeverityHigh, EvidenceNeeded: "Workload mapping of affected teams before and after"},
		},
		SecondOrderEffects: []decision.RiskItem{
			{Risk: "Attrition among retained staff follows the cost program", Severity: decision.SeverityMed, EvidenceNeeded: "Engagement survey trend and regretted-attrition baseline"},
			{Risk: "Deferred maintenance accrues as invisible debt", Severity: decision.SeverityMed, EvidenceNeeded: "Inventory of deferred work with aging"},
		},
		TailRisks: []decision.RiskItem{
			{Risk: "A critical capability is lost and cannot be rehired at prior cost", Severity: decision.SeverityMed, EvidenceNeeded: "Single-point-of-knowledge audit for affected roles"},
		},
		MetricGamingVectors: []decision.RiskItem{
			{Risk: "Costs shift to other budget lines instead of disappearing", Severity: decision.SeverityMed, EvidenceNeeded: "Total cost of ownership across all affected budgets"},
		},
		CrossFunctionalImpacts: []decision.RiskItem{
			{Risk: "Downstream teams inherit work the cut function used to absorb", Severity: decision.SeverityMed, EvidenceNeeded: "Dependency map of services consumed by other teams"},
		},
		Top3UnseenRisks: []string{
			"Morale-driven productivity loss exceeding the savings",
			"Customer-visible quality regressions in the cut areas",
			"Rehiring costs if demand recovers within a year",
		},
		DataToCollectNext: []string{
			"Fully-loaded savings estimate net of severance and transition",
			"Service-level impact forecast for affected functions",
		},
	}
}

func technologyRisks() decision.RiskDiscoveryOutput {
	return decision.RiskDiscoveryOutput{
		ImplicitAssumptions: []decision.RiskItem{
			{Risk: "Assumes the legacy system's undocumented behavior is fully understood", Severity: decision.SeverityHigh, EvidenceNeeded: "Behavioral parity test suite over the legacy surface"},
			{Risk: "Assumes migration can proceed without a feature freeze", Severity: decision.SeverityMed, EvidenceNeeded: "Change-rate analysis of the system under migration"},
		},
		SecondOrderEffects: []decision.RiskItem{
			{Risk: "Integration partners must re-certify against the new platform", Severity: decision.SeverityMed, EvidenceNeeded: "Inventory of external integrations and their owners"},
		},
		TailRisks: []decision.RiskItem{
			{Risk: "Data loss or corruption during cutover with no tested rollback", Severity: decision.SeverityHigh, EvidenceNeeded: "Rehearsed rollback runbook and restore-time measurement"},
		},
		MetricGamingVectors: []decision.RiskItem{
			{Risk: "Migration declared complete while long-tail workloads stay on legacy", Severity: decision.SeverityMed, EvidenceNeeded: "Workload-level completion tracking, not system-level"},
		},
		CrossFunctionalImpacts: []decision.RiskItem{
			{Risk: "Operations and on-call rotations need retraining on the new stack", Severity: decision.SeverityLow, EvidenceNeeded: "Training plan with coverage dates"},
		},
		Top3UnseenRisks: []string{
			"Parallel-run costs of operating both systems longer than planned",
			"Vendor lock-in terms in the replacement platform",
			"Performance regressions only visible at peak load",
		},
		DataToCollectNext: []string{
			"Cutover rehearsal results",
			"Peak-load benchmark on the target platform",
			"Contract exit terms for the new vendor",
		},
	}
}

func genericRisks() decision.RiskDiscoveryOutput {
	return decision.RiskDiscoveryOutput{
		ImplicitAssumptions: []decision.RiskItem{
			{Risk: "Assumes stakeholders affected by the change have been consulted", Severity: decision.SeverityMed, EvidenceNeeded: "Stakeholder sign-off list"},
		},
		SecondOrderEffects: []decision.RiskItem{
			{Risk: "Opportunity cost: teams staffed here are unavailable for alternatives", Severity: decision.SeverityLow, EvidenceNeeded: "Ranked list of displaced initiatives"},
		},
		TailRisks: []decision.RiskItem{
			{Risk: "Key-person dependency on the proposal's champion", Severity: decision.SeverityLow, EvidenceNeeded: "Succession or handover plan"},
		},
		MetricGamingVectors: []decision.RiskItem{
			{Risk: "Success metric can be satisfied without the underlying outcome", Severity: decision.SeverityMed, EvidenceNeeded: "Counter-metric guarding the primary measure"},
		},
		CrossFunctionalImpacts: []decision.RiskItem{
			{Risk: "Adjacent teams learn of the change after commitments are made", Severity: decision.SeverityLow, EvidenceNeeded: "Communication plan with dates"},
		},
		Top3UnseenRisks: []string{
			"Scope creep beyond the stated boundaries",
			"Timeline optimism without buffer for unknowns",
		},
		DataToCollectNext: []string{
			"Baseline measurement of the outcome the proposal targets",
			"Explicit success and kill criteria",
		},
	}
}
