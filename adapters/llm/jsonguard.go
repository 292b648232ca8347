package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gomandate/domain/decision"
)

// ErrValidation marks model output that could not be turned into a
// schema-valid risk set by any extraction strategy
var ErrValidation = errors.New("model output validation failed")

// extractRiskOutput turns free-form model text into a validated risk set.
// Strategies run in order: direct parse, fenced code block, first balanced
// object span. The first parse that also passes schema validation wins.
func extractRiskOutput(raw string) (decision.RiskDiscoveryOutput, error) {
	candidates := []string{strings.TrimSpace(raw)}

	if fenced, ok := fencedBlock(raw); ok {
		candidates = append(candidates, fenced)
	}
	if span, ok := balancedObjectSpan(raw); ok {
		candidates = append(candidates, span)
	}

	var lastErr error
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		var out decision.RiskDiscoveryOutput
		if err := json.Unmarshal([]byte(candidate), &out); err != nil {
			lastErr = err
			continue
		}
		if err := out.Validate(); err != nil {
			lastErr = err
			continue
		}
		out.Normalize()
		return out, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no JSON object found in response")
	}
	return decision.RiskDiscoveryOutput{}, fmt.Errorf("%w: %v", ErrValidation, lastErr)
}

// fencedBlock returns the contents of the first ```-fenced block, trimming an
// optional language tag
func fencedBlock(raw string) (string, bool) {
	start := strings.Index(raw, "```")
	if start < 0 {
		return "", false
	}
	rest := raw[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	block := rest[:end]
	if nl := strings.IndexByte(block, '\n'); nl >= 0 && !strings.ContainsAny(block[:nl], "{[") {
		// First line is a language tag such as "json"
		block = block[nl+1:]
	}
	return strings.TrimSpace(block), true
}

// balancedObjectSpan extracts the first {...} span with balanced braces,
// ignoring braces inside string literals
func balancedObjectSpan(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == '{':
			depth++
		case !inString && c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
