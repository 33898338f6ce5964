package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/catlint/internal/ui/pretty"
	"github.com/yaklabco/catlint/pkg/format"
	"github.com/yaklabco/catlint/pkg/linkcheck"
)

func TestFormatDiagnostic(t *testing.T) {
	styles := pretty.NewStyles(false)

	got := styles.FormatDiagnostic(format.Diagnostic{Line: 7, Message: "something is off"})
	assert.Equal(t, "(L007) something is off", got)
}

func TestWriteDiagnostics(t *testing.T) {
	styles := pretty.NewStyles(false)

	t.Run("clean document", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteDiagnostics(&buf, nil)
		assert.Contains(t, buf.String(), "No formatting issues found")
	})

	t.Run("single issue", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteDiagnostics(&buf, []format.Diagnostic{
			{Line: 12, Message: "category header is not formatted correctly"},
		})
		out := buf.String()
		assert.Contains(t, out, "(L012) category header is not formatted correctly")
		assert.Contains(t, out, "1 formatting issue found")
	})

	t.Run("several issues in order", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteDiagnostics(&buf, []format.Diagnostic{
			{Line: 3, Message: "first"},
			{Line: 9, Message: "second"},
		})
		out := buf.String()
		assert.Contains(t, out, "(L003) first")
		assert.Contains(t, out, "(L009) second")
		assert.Less(t, strings.Index(out, "(L003)"), strings.Index(out, "(L009)"))
		assert.Contains(t, out, "2 formatting issues found")
	})
}

func TestWriteDuplicates(t *testing.T) {
	styles := pretty.NewStyles(false)

	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteDuplicates(&buf, nil)
		assert.Contains(t, buf.String(), "No duplicate links.")
	})

	t.Run("some", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteDuplicates(&buf, []string{"http://a.com", "http://b.com"})
		out := buf.String()
		assert.Contains(t, out, "Found duplicate links:")
		assert.Contains(t, out, "http://a.com")
		assert.Contains(t, out, "http://b.com")
	})
}

func TestWriteProbeFailures(t *testing.T) {
	styles := pretty.NewStyles(false)

	t.Run("all healthy", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteProbeFailures(&buf, 42, nil)
		assert.Contains(t, buf.String(), "All 42 links are working")
	})

	t.Run("failures listed with codes", func(t *testing.T) {
		var buf bytes.Buffer
		styles.WriteProbeFailures(&buf, 3, []linkcheck.ProbeResult{
			{URL: "https://a.com", Kind: linkcheck.ErrorClient, Detail: "404"},
			{URL: "https://b.com", Kind: linkcheck.ErrorTimeout, Detail: "ignored"},
		})
		out := buf.String()
		assert.Contains(t, out, "Apparently 2 links are not working properly. See in:")
		assert.Contains(t, out, "ERR:CLT: 404 : https://a.com")
		// Timeouts print without the detail segment.
		assert.Contains(t, out, "ERR:TMO: https://b.com")
		assert.NotContains(t, out, "ignored")
	})
}
