package format

import (
	"slices"

	"github.com/yaklabco/catlint/pkg/catalog"
)

// CheckAlphabeticalOrder verifies that every category lists its entries in
// lexicographic order. Titles are uppercased at extraction, so the
// comparison is case-insensitive. A category out of order yields exactly
// one diagnostic, attributed to its header line, no matter how many entries
// are misplaced.
func (v *Validator) CheckAlphabeticalOrder(lines []string) []Diagnostic {
	cats := catalog.ExtractCategories(lines)

	var diags []Diagnostic
	for _, name := range cats.Names {
		if !slices.IsSorted(cats.Titles[name]) {
			diags = append(diags, diagf(cats.HeaderLine[name], "%s category is not alphabetical order", name))
		}
	}
	return diags
}
