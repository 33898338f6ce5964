package catalog

import (
	"regexp"
	"strings"
)

// titleLinkPattern matches an entry title in `[TEXT](URL)` form. Anchored at
// the start of the cell only: trailing text after the closing parenthesis is
// tolerated, matching the dialect as published catalogs actually use it.
var titleLinkPattern = regexp.MustCompile(`^\[(.+)\]\((http.*)\)`)

// Categories holds the per-category entry titles extracted from a document,
// in document order.
type Categories struct {
	// Names lists category names in the order their headers appear.
	Names []string

	// Titles maps a category name to its entry titles, uppercased, in
	// document order.
	Titles map[string][]string

	// HeaderLine maps a category name to the 1-based line number of its
	// header.
	HeaderLine map[string]int
}

// ParseTitleLink extracts the TEXT and URL halves of a `[TEXT](URL)` cell.
// ok is false when the cell does not use link syntax.
func ParseTitleLink(cell string) (text, url string, ok bool) {
	m := titleLinkPattern.FindStringSubmatch(cell)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ExtractCategories walks the document once and groups entry titles under
// the most recent category header. Rows that appear before any header have
// no category to belong to and are skipped. Separator rows and non-table
// lines are ignored.
func ExtractCategories(lines []string) *Categories {
	cats := &Categories{
		Titles:     make(map[string][]string),
		HeaderLine: make(map[string]int),
	}

	current := ""
	for i, line := range lines {
		switch Classify(line) {
		case LineCategoryHeader:
			current = strings.TrimSpace(strings.TrimPrefix(line, Anchor))
			if _, seen := cats.Titles[current]; !seen {
				cats.Names = append(cats.Names, current)
			}
			cats.Titles[current] = []string{}
			cats.HeaderLine[current] = i + 1

		case LineDataRow:
			if current == "" {
				continue
			}
			cells := SplitCells(line)
			if len(cells) == 0 {
				continue
			}
			raw := strings.TrimSpace(cells[0])
			if text, _, ok := ParseTitleLink(raw); ok {
				cats.Titles[current] = append(cats.Titles[current], strings.ToUpper(text))
			}
		}
	}

	return cats
}
