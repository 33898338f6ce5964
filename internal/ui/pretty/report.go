package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/catlint/pkg/format"
	"github.com/yaklabco/catlint/pkg/linkcheck"
)

// FormatDiagnostic renders one diagnostic line. The `(L%03d) message` body
// is the output contract and stays unstyled in substance; only the location
// prefix gets dimmed.
func (s *Styles) FormatDiagnostic(diag format.Diagnostic) string {
	return fmt.Sprintf("%s %s",
		s.Location.Render(fmt.Sprintf("(L%03d)", diag.Line)),
		s.Message.Render(diag.Message),
	)
}

// WriteDiagnostics renders the full ordered diagnostic list followed by a
// one-line summary.
func (s *Styles) WriteDiagnostics(w io.Writer, diags []format.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, s.FormatDiagnostic(d))
	}

	s.writeDivider(w)
	if len(diags) == 0 {
		fmt.Fprintln(w, s.Success.Render("No formatting issues found"))
		return
	}
	word := "issues"
	if len(diags) == 1 {
		word = "issue"
	}
	fmt.Fprintln(w, s.Failure.Render(fmt.Sprintf("%d formatting %s found", len(diags), word)))
}

// WriteDuplicates renders the duplicate-link report.
func (s *Styles) WriteDuplicates(w io.Writer, duplicates []string) {
	if len(duplicates) == 0 {
		fmt.Fprintln(w, s.Success.Render("No duplicate links."))
		return
	}

	fmt.Fprintln(w, s.Failure.Render("Found duplicate links:"))
	for _, link := range duplicates {
		fmt.Fprintln(w, "  "+s.Link.Render(link))
	}
}

// WriteProbeFailures renders the classified probe failures.
func (s *Styles) WriteProbeFailures(w io.Writer, total int, failures []linkcheck.ProbeResult) {
	s.writeDivider(w)
	if len(failures) == 0 {
		fmt.Fprintln(w, s.Success.Render(fmt.Sprintf("All %d links are working", total)))
		return
	}

	fmt.Fprintln(w, s.Failure.Render(
		fmt.Sprintf("Apparently %d links are not working properly. See in:", len(failures))))
	for _, f := range failures {
		fmt.Fprintf(w, "  %s %s\n",
			s.ErrorCode.Render("ERR:"+f.Kind.Code()+":"),
			s.Detail.Render(probeDetail(f)),
		)
	}
}

func probeDetail(f linkcheck.ProbeResult) string {
	if f.Kind == linkcheck.ErrorTimeout || f.Detail == "" {
		return f.URL
	}
	return f.Detail + " : " + f.URL
}

func (s *Styles) writeDivider(w io.Writer) {
	fmt.Fprintln(w, s.Dim.Render(strings.Repeat("─", DividerWidth(w))))
}
