// Package format implements the structural and style checks for catalog
// listings. Checks accumulate Diagnostics instead of returning errors: a run
// always completes and reports every finding, in document order.
package format

import "fmt"

// Diagnostic is a single line-addressed validation finding.
type Diagnostic struct {
	// Line is the 1-based line number the finding is attributed to.
	Line int

	// Message describes the violation. The text is part of the output
	// contract and is rendered verbatim.
	Message string
}

// String renders the diagnostic in its contractual `(L%03d) message` form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("(L%03d) %s", d.Line, d.Message)
}

// diagf builds a Diagnostic with a formatted message.
func diagf(line int, format string, args ...any) Diagnostic {
	return Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Render flattens diagnostics to their string form, preserving order.
func Render(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}
