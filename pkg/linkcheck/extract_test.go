package linkcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "http and https links",
			text: "## Index\nsee http://example.com/a and https://example.com/b",
			want: []string{"http://example.com/a", "https://example.com/b"},
		},
		{
			name: "bare www domain",
			text: "## Index\nvisit www.example.com for more",
			want: []string{"www.example.com"},
		},
		{
			name: "bare domain with path",
			text: "## Index\ndocs at example.com/docs today",
			want: []string{"example.com/docs"},
		},
		{
			name: "text before index marker is skipped",
			text: "badge: https://img.example.com/badge.svg\n## Index\nhttps://example.com/a",
			want: []string{"https://example.com/a"},
		},
		{
			name: "whole text scanned when marker absent",
			text: "https://example.com/a and https://example.com/b",
			want: []string{"https://example.com/a", "https://example.com/b"},
		},
		{
			name: "duplicates and order preserved",
			text: "## Index\nhttps://example.com/b https://example.com/a https://example.com/b",
			want: []string{"https://example.com/b", "https://example.com/a", "https://example.com/b"},
		},
		{
			name: "markdown link target excludes closing parenthesis",
			text: "## Index\n| [Foo](https://example.com/foo) | Desc | No | Yes | Yes |",
			want: []string{"https://example.com/foo"},
		},
		{
			name: "trailing punctuation is not swallowed",
			text: "## Index\nsee https://example.com/a, then https://example.com/b.",
			want: []string{"https://example.com/a", "https://example.com/b"},
		},
		{
			name: "no links",
			text: "## Index\nnothing here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLinks(tt.text))
		})
	}
}
