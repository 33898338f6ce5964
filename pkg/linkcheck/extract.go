// Package linkcheck extracts the hyperlinks from a catalog document, flags
// duplicates, and probes each link's liveness over the network. Extraction
// and classification are pure; the network side goes through a narrow Doer
// so tests can substitute a deterministic transport.
package linkcheck

import (
	"regexp"
	"strings"
)

// indexMarker is where link extraction starts. Everything before the Index
// section is prose and badges that are not part of the catalog contract.
const indexMarker = "## Index"

// urlPattern is a permissive URL matcher: it accepts http(s) and bare-domain
// forms (www.example.com, example.com/path) and tolerates balanced
// parentheses inside link targets, while refusing to swallow the trailing
// punctuation that surrounds links in Markdown.
var urlPattern = regexp.MustCompile(
	`(?:https?://|www\d{0,3}[.]|[a-z0-9.\-]+[.][a-z]{2,4}/)` +
		`(?:[^\s()<>]+|\((?:[^\s()<>]+|\([^\s()<>]+\))*\))+` +
		`(?:\((?:[^\s()<>]+|\([^\s()<>]+\))*\)|[^\s` + "`" + `!()\[\]{};:'".,<>?«»“”‘’])`)

// ExtractLinks scans a document for URL-shaped substrings, starting at the
// first occurrence of the Index marker (or the whole text when absent).
// Duplicates are preserved and order is first-occurrence order.
func ExtractLinks(text string) []string {
	if idx := strings.Index(text, indexMarker); idx >= 0 {
		text = text[idx:]
	}
	return urlPattern.FindAllString(text, -1)
}
