package proposal

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// FlattenMarkdown renders markdown-authored proposal text down to plain text.
// Plain strings pass through unchanged apart from whitespace normalization.
func FlattenMarkdown(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	p := parser.New()
	doc := p.Parse([]byte(text))

	var b strings.Builder
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := node.AsLeaf(); leaf != nil && len(leaf.Literal) > 0 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.Write(leaf.Literal)
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(b.String()), " ")
}
