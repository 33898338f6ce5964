package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitleLink(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		wantText string
		wantURL  string
		wantOK   bool
	}{
		{"well formed", "[Cat Facts](https://example.com)", "Cat Facts", "https://example.com", true},
		{"http scheme", "[A](http://a.com)", "A", "http://a.com", true},
		{"bare text", "Cat Facts", "", "", false},
		{"missing url", "[Cat Facts]", "", "", false},
		{"relative target rejected", "[Docs](/docs)", "", "", false},
		{"empty cell", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, url, ok := ParseTitleLink(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestExtractCategories(t *testing.T) {
	lines := []string{
		"# Catalog",
		"",
		"### Animals",
		"| API | Description | Auth | HTTPS | CORS |",
		"|---|---|---|---|---|",
		"| [Cat Facts](https://catfact.ninja) | Daily cat facts | No | Yes | No |",
		"| [Dogs](https://dog.ceo) | Dog pictures | No | Yes | Yes |",
		"",
		"### Books",
		"| API | Description | Auth | HTTPS | CORS |",
		"|---|---|---|---|---|",
		"| [Open Library](https://openlibrary.org) | Book data | No | Yes | No |",
	}

	cats := ExtractCategories(lines)

	require.Equal(t, []string{"Animals", "Books"}, cats.Names)
	assert.Equal(t, []string{"CAT FACTS", "DOGS"}, cats.Titles["Animals"])
	assert.Equal(t, []string{"OPEN LIBRARY"}, cats.Titles["Books"])
	assert.Equal(t, 3, cats.HeaderLine["Animals"])
	assert.Equal(t, 9, cats.HeaderLine["Books"])
}

func TestExtractCategoriesSkipsRowsBeforeAnyHeader(t *testing.T) {
	lines := []string{
		"| [Orphan](https://example.com) | No category yet | No | Yes | No |",
		"### Animals",
		"| [Cat Facts](https://catfact.ninja) | Daily cat facts | No | Yes | No |",
	}

	cats := ExtractCategories(lines)

	require.Equal(t, []string{"Animals"}, cats.Names)
	assert.Equal(t, []string{"CAT FACTS"}, cats.Titles["Animals"])
}

func TestExtractCategoriesIgnoresNonLinkTitles(t *testing.T) {
	lines := []string{
		"### Animals",
		"| API | Description | Auth | HTTPS | CORS |",
		"|---|---|---|---|---|",
		"| [Cat Facts](https://catfact.ninja) | Daily cat facts | No | Yes | No |",
	}

	cats := ExtractCategories(lines)

	// The column-header row has no link syntax and contributes no title.
	assert.Equal(t, []string{"CAT FACTS"}, cats.Titles["Animals"])
}

func TestExtractCategoriesRedeclaredCategoryResets(t *testing.T) {
	lines := []string{
		"### Animals",
		"| [Cat Facts](https://catfact.ninja) | Daily cat facts | No | Yes | No |",
		"### Animals",
		"| [Dogs](https://dog.ceo) | Dog pictures | No | Yes | Yes |",
	}

	cats := ExtractCategories(lines)

	// A redeclared header resets the category's titles and points at the
	// later line.
	require.Equal(t, []string{"Animals"}, cats.Names)
	assert.Equal(t, []string{"DOGS"}, cats.Titles["Animals"])
	assert.Equal(t, 3, cats.HeaderLine["Animals"])
}

func TestExtractCategoriesEmptyDocument(t *testing.T) {
	cats := ExtractCategories(nil)
	assert.Empty(t, cats.Names)
	assert.Empty(t, cats.Titles)
}
