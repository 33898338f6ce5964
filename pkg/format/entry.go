package format

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/catlint/pkg/catalog"
)

// Column positions of the five semantic fields in an entry row.
const (
	indexTitle = iota
	indexDescription
	indexAuth
	indexHTTPS
	indexCORS

	// NumFields is the number of cells an entry row must have.
	NumFields = 5
)

// Allowed values for the enumerated fields.
var (
	authOptions  = []string{"apiKey", "OAuth", "X-Mashape-Key", "User-Agent", "No"}
	httpsOptions = []string{"Yes", "No"}
	corsOptions  = []string{"Yes", "No", "Unknown"}
)

// trailingPunctuation is the ASCII punctuation set a description must not
// end with. The two parenthesis characters are deliberately carved out:
// descriptions ending in a parenthesized remark are tolerated until the
// catalog policy for them settles.
const trailingPunctuation = "!\"#$%&'*+,-./:;<=>?@[\\]^_`{|}~"

// CheckTitle validates the title cell of an entry row. The cell must use
// `[TEXT](URL)` link syntax, and TEXT must not end with " API": every entry
// in the catalog is one.
func (v *Validator) CheckTitle(line int, rawTitle string) []Diagnostic {
	title, _, ok := catalog.ParseTitleLink(rawTitle)
	if !ok {
		return []Diagnostic{diagf(line, `Title syntax should be "[TITLE](LINK)"`)}
	}
	if strings.HasSuffix(strings.ToUpper(title), " API") {
		return []Diagnostic{diagf(line, `Title should not end with "... API". Every entry is an API here!`)}
	}
	return nil
}

// CheckDescription validates the description cell: leading capital, no
// trailing punctuation, bounded length. Each violated rule yields its own
// diagnostic.
func (v *Validator) CheckDescription(line int, description string) []Diagnostic {
	if description == "" {
		return nil
	}

	var diags []Diagnostic

	first, _ := utf8.DecodeRuneInString(description)
	if unicode.ToUpper(first) != first {
		diags = append(diags, diagf(line, "first character of description is not capitalized"))
	}

	last, _ := utf8.DecodeLastRuneInString(description)
	if strings.ContainsRune(trailingPunctuation, last) {
		diags = append(diags, diagf(line, "description should not end with %c", last))
	}

	if n := utf8.RuneCountInString(description); n > v.MaxDescriptionLength {
		diags = append(diags, diagf(line, "description should not exceed %d characters (currently %d)",
			v.MaxDescriptionLength, n))
	}

	return diags
}

// CheckAuth validates the auth cell. The two rules are independent and may
// both fire: a value other than the literal No must be backtick-enclosed,
// and the value with backticks stripped must be a known auth option.
func (v *Validator) CheckAuth(line int, auth string) []Diagnostic {
	var diags []Diagnostic

	const backtick = "`"
	if auth != "No" && (!strings.HasPrefix(auth, backtick) || !strings.HasSuffix(auth, backtick)) {
		diags = append(diags, diagf(line, "auth value is not enclosed with `backticks`"))
	}
	if !slices.Contains(authOptions, strings.ReplaceAll(auth, backtick, "")) {
		diags = append(diags, diagf(line, "%s is not a valid Auth option", auth))
	}

	return diags
}

// CheckHTTPS validates the https cell against its two allowed values.
func (v *Validator) CheckHTTPS(line int, https string) []Diagnostic {
	if !slices.Contains(httpsOptions, https) {
		return []Diagnostic{diagf(line, "%s is not a valid HTTPS option", https)}
	}
	return nil
}

// CheckCORS validates the cors cell against its three allowed values.
func (v *Validator) CheckCORS(line int, cors string) []Diagnostic {
	if !slices.Contains(corsOptions, cors) {
		return []Diagnostic{diagf(line, "%s is not a valid CORS option", cors)}
	}
	return nil
}

// CheckEntry runs the five field checks on a trimmed cell list and
// concatenates their diagnostics in fixed order: title, description, auth,
// https, cors.
func (v *Validator) CheckEntry(line int, cells []string) []Diagnostic {
	var diags []Diagnostic
	diags = append(diags, v.CheckTitle(line, cells[indexTitle])...)
	diags = append(diags, v.CheckDescription(line, cells[indexDescription])...)
	diags = append(diags, v.CheckAuth(line, cells[indexAuth])...)
	diags = append(diags, v.CheckHTTPS(line, cells[indexHTTPS])...)
	diags = append(diags, v.CheckCORS(line, cells[indexCORS])...)
	return diags
}
