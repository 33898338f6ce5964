package linkcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "http://a.com", Normalize("http://a.com/"))
	assert.Equal(t, "http://a.com", Normalize("http://a.com"))
	// Exactly one trailing slash is stripped.
	assert.Equal(t, "http://a.com/", Normalize("http://a.com//"))
	assert.Equal(t, "http://a.com/path", Normalize("http://a.com/path/"))
}

func TestFindDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		links    []string
		wantHas  bool
		wantDups []string
	}{
		{
			name:  "no duplicates",
			links: []string{"http://a.com", "http://b.com"},
		},
		{
			name:     "exact duplicate",
			links:    []string{"http://a.com", "http://b.com", "http://a.com"},
			wantHas:  true,
			wantDups: []string{"http://a.com"},
		},
		{
			name:     "trailing slash compares equal",
			links:    []string{"http://a.com/", "http://a.com"},
			wantHas:  true,
			wantDups: []string{"http://a.com"},
		},
		{
			name:     "triple occurrence reported once",
			links:    []string{"http://a.com", "http://a.com", "http://a.com"},
			wantHas:  true,
			wantDups: []string{"http://a.com"},
		},
		{
			name:     "order follows second occurrence",
			links:    []string{"http://a.com", "http://b.com", "http://b.com", "http://a.com"},
			wantHas:  true,
			wantDups: []string{"http://b.com", "http://a.com"},
		},
		{
			name:  "empty input",
			links: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			has, dups := FindDuplicates(tt.links)
			assert.Equal(t, tt.wantHas, has)
			assert.Equal(t, tt.wantDups, dups)
		})
	}
}
