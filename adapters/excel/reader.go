// Package excel reads proposal batches from spreadsheet files.
package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"gomandate/domain/proposal"
	apperrors "gomandate/internal/errors"
)

// Expected header columns, matched case-insensitively
var knownColumns = []string{"title", "summary", "scope", "assumptions", "dependencies"}

// listSeparator splits multi-valued cells
const listSeparator = ";"

// ReadProposals loads proposals from the first sheet of an xlsx file. The
// first row is a header; assumptions and dependencies cells hold
// semicolon-separated lists.
func ReadProposals(path string) ([]proposal.Context, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.InvalidInput("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read sheet rows")
	}
	if len(rows) < 2 {
		return nil, apperrors.InvalidInput("sheet needs a header row and at least one proposal row")
	}

	colIndex := headerIndex(rows[0])
	if _, ok := colIndex["title"]; !ok {
		return nil, apperrors.InvalidInput("sheet header must include a title column")
	}

	proposals := make([]proposal.Context, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := proposal.Context{
			Title:        cell(row, colIndex, "title"),
			Summary:      cell(row, colIndex, "summary"),
			Scope:        cell(row, colIndex, "scope"),
			Assumptions:  splitList(cell(row, colIndex, "assumptions")),
			Dependencies: splitList(cell(row, colIndex, "dependencies")),
		}
		if strings.TrimSpace(p.Title) == "" && strings.TrimSpace(p.Summary) == "" {
			continue // blank row
		}
		proposals = append(proposals, p)
	}

	return proposals, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(knownColumns))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, known := range knownColumns {
			if name == known {
				index[known] = i
			}
		}
	}
	return index
}

func cell(row []string, colIndex map[string]int, name string) string {
	i, ok := colIndex[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, listSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
