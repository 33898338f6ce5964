// Package catalog parses the pipe-table catalog dialect used by curated
// Markdown listings: `###`-anchored category headers followed by GFM-style
// tables of entries. The checks in pkg/format depend on raw line content
// (pipe positions, cell padding), so parsing stays line-oriented rather
// than going through a Markdown AST.
package catalog

import "strings"

// Anchor is the marker token that opens a category-header line.
const Anchor = "###"

// Delimiter separates cells in an entry row.
const Delimiter = "|"

const separatorPrefix = Delimiter + "---"

// LineKind labels the role a raw line plays in the catalog dialect.
type LineKind int

const (
	// LineOther is any line that is neither a header nor part of a table.
	LineOther LineKind = iota

	// LineCategoryHeader is an anchor-prefixed category header.
	LineCategoryHeader

	// LineSeparatorRow is the `|---|---|` row under a table header.
	LineSeparatorRow

	// LineDataRow is a pipe-delimited entry row.
	LineDataRow
)

// String returns the kind name for logs and test failure output.
func (k LineKind) String() string {
	switch k {
	case LineCategoryHeader:
		return "category-header"
	case LineSeparatorRow:
		return "separator-row"
	case LineDataRow:
		return "data-row"
	default:
		return "other"
	}
}

// Classify labels a single raw line. It is a pure function: the separator
// prefix is tested before the bare delimiter so `|---` rows are never
// mistaken for entries.
func Classify(line string) LineKind {
	switch {
	case strings.HasPrefix(line, Anchor):
		return LineCategoryHeader
	case strings.HasPrefix(line, separatorPrefix):
		return LineSeparatorRow
	case strings.HasPrefix(line, Delimiter):
		return LineDataRow
	default:
		return LineOther
	}
}

// SplitCells splits a data row on the delimiter and drops the two empty
// boundary fields produced by the leading and trailing pipes. Cells keep
// their surrounding whitespace so padding checks can inspect it.
func SplitCells(line string) []string {
	parts := strings.Split(line, Delimiter)
	if len(parts) <= 2 {
		return nil
	}
	return parts[1 : len(parts)-1]
}
