// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldLines = "lines"

	// Check fields.
	FieldDiagnostics = "diagnostics"
	FieldCategories  = "categories"

	// Link fields.
	FieldLink       = "link"
	FieldLinks      = "links"
	FieldDuplicates = "duplicates"
	FieldFailures   = "failures"
	FieldKind       = "kind"
	FieldTimeout    = "timeout"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
