package format

import (
	"regexp"
	"strings"

	"github.com/yaklabco/catlint/pkg/catalog"
)

// Default limits for the structural checks.
const (
	// DefaultMinEntriesPerCategory is the smallest entry count a category
	// may have before its next header boundary.
	DefaultMinEntriesPerCategory = 3

	// DefaultMaxDescriptionLength is the longest a description cell may be.
	DefaultMaxDescriptionLength = 100
)

var (
	// headerPattern validates a category header's own syntax: the anchor,
	// one whitespace character, then the category name.
	headerPattern = regexp.MustCompile(`^` + catalog.Anchor + `\s(.+)`)

	// indexBulletPattern matches an Index-section bullet link `* [NAME](...)`.
	indexBulletPattern = regexp.MustCompile(`^\*\s\[(.*)\]`)
)

// Validator runs the structural and style checks over a document.
type Validator struct {
	// MinEntriesPerCategory is the minimum entry count enforced at each
	// category's next header boundary.
	MinEntriesPerCategory int

	// MaxDescriptionLength bounds description cells, in characters.
	MaxDescriptionLength int
}

// NewValidator returns a Validator with the default limits.
func NewValidator() *Validator {
	return &Validator{
		MinEntriesPerCategory: DefaultMinEntriesPerCategory,
		MaxDescriptionLength:  DefaultMaxDescriptionLength,
	}
}

// pass is the accumulator threaded through the structural walk: the current
// category, its header line, the running entry count, and the Index-bullet
// names seen so far. Folding this explicitly keeps the walk a single
// dispatch point over classified lines.
type pass struct {
	category     string
	categoryLine int
	entries      int
	indexTitles  map[string]bool
	diags        []Diagnostic
}

// Validate runs every structural check over the document and returns the
// full ordered diagnostic list. Lines are expected to arrive with trailing
// whitespace already trimmed. Findings never abort the scan.
func (v *Validator) Validate(lines []string) []Diagnostic {
	st := &pass{
		// Start above the minimum so the first header does not flag a
		// nonexistent previous category.
		entries:     v.MinEntriesPerCategory + 1,
		indexTitles: make(map[string]bool),
	}

	st.diags = append(st.diags, v.CheckAlphabeticalOrder(lines)...)

	for i, line := range lines {
		lineNum := i + 1

		// Index bullets are accumulated incrementally: a bullet only
		// satisfies the cross-reference for headers that follow it.
		if m := indexBulletPattern.FindStringSubmatch(line); m != nil {
			st.indexTitles[m[1]] = true
		}

		switch catalog.Classify(line) {
		case catalog.LineCategoryHeader:
			v.checkHeader(st, lineNum, line)
		case catalog.LineDataRow:
			v.checkRow(st, lineNum, line)
		}
	}

	// The final category's entry count is deliberately left unchecked: the
	// minimum is only enforced at the next header boundary, and there is
	// none after the last category.
	return st.diags
}

// checkHeader closes out the previous category and opens a new one.
func (v *Validator) checkHeader(st *pass, lineNum int, line string) {
	if m := headerPattern.FindStringSubmatch(line); m != nil {
		if !st.indexTitles[m[1]] {
			st.diags = append(st.diags, diagf(lineNum, "category header (%s) not added to Index section", m[1]))
		}
	} else {
		st.diags = append(st.diags, diagf(lineNum, "category header is not formatted correctly"))
	}

	if st.entries < v.MinEntriesPerCategory {
		st.diags = append(st.diags, diagf(st.categoryLine,
			"%s category does not have the minimum %d entries (only has %d)",
			st.category, v.MinEntriesPerCategory, st.entries))
	}

	// The short name used in the minimum-entries message is the first
	// space-separated word after the anchor.
	if fields := strings.Split(line, " "); len(fields) > 1 {
		st.category = fields[1]
	} else {
		st.category = ""
	}
	st.categoryLine = lineNum
	st.entries = 0
}

// checkRow counts the entry and validates its cells.
func (v *Validator) checkRow(st *pass, lineNum int, line string) {
	st.entries++

	cells := catalog.SplitCells(line)
	if len(cells) < NumFields {
		st.diags = append(st.diags, diagf(lineNum,
			"entry does not have all the required columns (have %d, need %d)",
			len(cells), NumFields))
		return
	}

	for _, cell := range cells {
		leading := len(cell) - len(strings.TrimLeft(cell, " \t"))
		trailing := len(cell) - len(strings.TrimRight(cell, " \t"))
		if leading != 1 || trailing != 1 {
			st.diags = append(st.diags, diagf(lineNum, "each segment must start and end with exactly 1 space"))
		}
	}

	trimmed := make([]string, len(cells))
	for i, cell := range cells {
		trimmed[i] = strings.TrimSpace(cell)
	}
	st.diags = append(st.diags, v.CheckEntry(lineNum, trimmed)...)
}
