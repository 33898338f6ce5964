package linkcheck

import "strings"

// Normalize strips exactly one trailing slash so `http://a.com/` and
// `http://a.com` compare equal for duplicate detection.
func Normalize(link string) string {
	return strings.TrimSuffix(link, "/")
}

// FindDuplicates reports every normalized link that occurs more than once.
// The result is a membership list, not a count: each duplicate appears once,
// in the order its second occurrence was seen.
func FindDuplicates(links []string) (bool, []string) {
	seen := make(map[string]int, len(links))
	var duplicates []string

	for _, link := range links {
		link = Normalize(link)
		seen[link]++
		if seen[link] == 2 {
			duplicates = append(duplicates, link)
		}
	}

	return len(duplicates) > 0, duplicates
}
