// Package proposal defines the business initiative under evaluation.
package proposal

import "strings"

// Context is a frozen proposal, resolved upstream. No field is structurally
// required; emptiness is itself a signal tracked by feature extraction.
type Context struct {
	Title        string   `json:"title" yaml:"title"`
	Summary      string   `json:"summary" yaml:"summary"`
	Scope        string   `json:"scope" yaml:"scope"`
	Assumptions  []string `json:"assumptions" yaml:"assumptions"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// SearchText returns the lower-cased plain-text rendering of summary + scope,
// the haystack every keyword and currency matcher scans. Markdown authoring
// is flattened first so formatting never hides a keyword.
func (c Context) SearchText() string {
	var b strings.Builder
	b.WriteString(FlattenMarkdown(c.Summary))
	b.WriteString(" ")
	b.WriteString(FlattenMarkdown(c.Scope))
	return strings.ToLower(b.String())
}
