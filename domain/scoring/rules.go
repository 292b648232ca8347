package scoring

import (
	"fmt"
	"strings"

	"gomandate/domain/decision"
)

// ruleInput is everything a scoring rule may inspect: the flattened
// lower-cased proposal text plus the derived features
type ruleInput struct {
	Text     string
	Features decision.Features
}

func (in ruleInput) containsAny(keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(in.Text, kw) {
			return true
		}
	}
	return false
}

// bandRule is one (predicate, effect) pair of an impact band ladder. Ladders
// are evaluated top to bottom; the first matching rule assigns the band.
type bandRule struct {
	name string
	when func(in ruleInput) bool
	band func(in ruleInput) string
}

func staticBand(b string) func(ruleInput) string {
	return func(ruleInput) string { return b }
}

// growthRules band the growth dimension by expansion/contraction keywords
var growthRules = []bandRule{
	{
		name: "expansion_signals",
		when: func(in ruleInput) bool {
			return in.containsAny("expand", "growth", "new market", "launch", "acquisition")
		},
		band: staticBand(annotate(BandHigh, "expansion signals")),
	},
	{
		name: "contraction_signals",
		when: func(in ruleInput) bool {
			return in.containsAny("layoff", "shutdown", "wind down", "divest")
		},
		band: staticBand(annotate(BandLow, "contraction signals")),
	},
	{
		name: "market_adjacent",
		when: func(in ruleInput) bool {
			return in.containsAny("customer", "revenue", "market")
		},
		band: staticBand(annotate(BandMedium, "market-adjacent")),
	},
	{name: "default", when: func(ruleInput) bool { return true }, band: staticBand(BandUnknown)},
}

// costRules recognize an explicit currency figure first, then fall back to
// banding by structural complexity
var costRules = []bandRule{
	{
		name: "explicit_figure",
		when: func(in ruleInput) bool {
			_, _, ok := findCurrency(in.Text)
			return ok
		},
		band: func(in ruleInput) string {
			value, literal, _ := findCurrency(in.Text)
			switch {
			case value >= 100_000:
				return annotate(BandHigh, literal+" stated")
			case value >= 10_000:
				return annotate(BandMedium, literal+" stated")
			default:
				return annotate(BandLow, literal+" stated")
			}
		},
	},
	{
		name: "high_complexity",
		when: func(in ruleInput) bool { return in.Features.ComplexityScore > 0.66 },
		band: staticBand(annotate(BandHigh, "complexity proxy")),
	},
	{
		name: "moderate_complexity",
		when: func(in ruleInput) bool { return in.Features.ComplexityScore > 0.33 },
		band: staticBand(annotate(BandMedium, "complexity proxy")),
	},
	{name: "default", when: func(ruleInput) bool { return true }, band: staticBand(annotate(BandLow, "complexity proxy"))},
}

// riskRules band execution risk by dependency fan-out and complexity
var riskRules = []bandRule{
	{
		name: "heavy_dependencies",
		when: func(in ruleInput) bool {
			return in.Features.DependencyCount > 3 || in.Features.ComplexityScore > 0.7
		},
		band: func(in ruleInput) string {
			return annotate(BandHigh, fmt.Sprintf("%d dependencies", in.Features.DependencyCount))
		},
	},
	{
		name: "moderate_dependencies",
		when: func(in ruleInput) bool {
			return in.Features.DependencyCount > 1 || in.Features.ComplexityScore > 0.4
		},
		band: staticBand(BandMedium),
	},
	{name: "default", when: func(ruleInput) bool { return true }, band: staticBand(BandLow)},
}

// brandRules band reputational exposure
var brandRules = []bandRule{
	{
		name: "reputational_exposure",
		when: func(in ruleInput) bool {
			return in.containsAny("layoff", "lawsuit", "breach", "scandal")
		},
		band: staticBand(annotate(BandHigh, "reputational exposure")),
	},
	{
		name: "customer_facing",
		when: func(in ruleInput) bool {
			return in.containsAny("customer", "brand", "public", "press")
		},
		band: staticBand(annotate(BandMedium, "customer-facing")),
	},
	{name: "default", when: func(ruleInput) bool { return true }, band: staticBand(BandUnknown)},
}

// applyBandLadder walks a ladder and returns the first matching band. Every
// ladder ends in a catch-all so a band is always assigned.
func applyBandLadder(rules []bandRule, in ruleInput) string {
	for _, rule := range rules {
		if rule.when(in) {
			return rule.band(in)
		}
	}
	return BandUnknown
}

// conflictRule is one internal-contradiction detector. Rules run in fixed
// order and each appends at most one finding.
type conflictRule struct {
	name    string
	when    func(in ruleInput) bool
	finding string
}

var conflictRules = []conflictRule{
	{
		name:    "resource_conflict",
		when:    func(in ruleInput) bool { return in.containsAny("reduce cost") && in.containsAny("expand") },
		finding: "Resource conflict: proposal commits to cost reduction and expansion simultaneously",
	},
	{
		name:    "goal_conflict",
		when:    func(in ruleInput) bool { return in.containsAny("fast") && in.containsAny("thorough") },
		finding: "Goal conflict: proposal promises both speed and thoroughness without tradeoff",
	},
	{
		name: "timeline_conflict",
		when: func(in ruleInput) bool {
			return in.Features.DependencyCount > 3 && in.containsAny("quick")
		},
		finding: "Timeline conflict: quick delivery claimed despite heavy dependency fan-out",
	},
}

func detectConflicts(in ruleInput) []string {
	findings := []string{}
	for _, rule := range conflictRules {
		if rule.when(in) {
			findings = append(findings, rule.finding)
		}
	}
	return findings
}

// constraintMatcher handles one recognizable shape of non-negotiable
// constraint. Matchers run in fixed order; the first whose applies() accepts
// the constraint owns it. Constraint shapes no matcher recognizes produce no
// finding.
type constraintMatcher struct {
	name    string
	applies func(constraint string) bool
	check   func(constraint string, in ruleInput) (string, bool)
}

var constraintMatchers = []constraintMatcher{
	{
		// Budget caps: "$X" in the constraint is compared numerically
		// against any figure the proposal states
		name: "budget_cap",
		applies: func(constraint string) bool {
			_, _, ok := findCurrency(strings.ToLower(constraint))
			return ok
		},
		check: func(constraint string, in ruleInput) (string, bool) {
			limit, limitLiteral, _ := findCurrency(strings.ToLower(constraint))
			stated, statedLiteral, ok := findCurrency(in.Text)
			if !ok || stated <= limit {
				return "", false
			}
			return fmt.Sprintf("Non-negotiable %q violated: proposal states %s, exceeding the %s limit",
				constraint, statedLiteral, limitLiteral), true
		},
	},
	{
		// Literal prohibitions: "No layoffs" is violated when the
		// prohibited phrase appears in proposal text
		name: "prohibition",
		applies: func(constraint string) bool {
			return strings.Contains(strings.ToLower(constraint), "no ")
		},
		check: func(constraint string, in ruleInput) (string, bool) {
			lower := strings.ToLower(constraint)
			idx := strings.Index(lower, "no ")
			phrase := strings.TrimSpace(lower[idx+len("no "):])
			phrase = strings.Trim(phrase, ".!")
			if phrase == "" {
				return "", false
			}
			singular := strings.TrimSuffix(phrase, "s")
			if !strings.Contains(in.Text, phrase) && !strings.Contains(in.Text, singular) {
				return "", false
			}
			return fmt.Sprintf("Non-negotiable %q violated: prohibited subject %q appears in proposal text",
				constraint, phrase), true
		},
	},
	{
		// Privacy constraints trip on data-sharing language
		name: "privacy",
		applies: func(constraint string) bool {
			lower := strings.ToLower(constraint)
			return strings.Contains(lower, "privacy") || strings.Contains(lower, "data") ||
				strings.Contains(lower, "pii") || strings.Contains(lower, "gdpr")
		},
		check: func(constraint string, in ruleInput) (string, bool) {
			if !in.containsAny("share data", "third party", "third-party") {
				return "", false
			}
			return fmt.Sprintf("Non-negotiable %q violated: proposal involves external data sharing", constraint), true
		},
	},
}

// checkConstraints matches each non-negotiable against the proposal text.
// Constraints no matcher recognizes pass silently.
func checkConstraints(nonNegotiables []string, in ruleInput) []string {
	violations := []string{}
	for _, constraint := range nonNegotiables {
		if strings.TrimSpace(constraint) == "" {
			continue
		}
		for _, matcher := range constraintMatchers {
			if !matcher.applies(constraint) {
				continue
			}
			if finding, violated := matcher.check(constraint, in); violated {
				violations = append(violations, finding)
			}
			break
		}
	}
	return violations
}
