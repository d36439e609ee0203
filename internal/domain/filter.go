package domain

import (
	"slices"
	"strings"
)

// Orderable fields per collection.
var (
	ArticleOrderingFields = []string{"publication_date", "created_at", "identifier", "title"}
	CommentOrderingFields = []string{"created_at"}
)

// SortField is one ordering term.
type SortField struct {
	Field string
	Desc  bool
}

// ArticleFilter narrows the article set. Every populated field is AND-ed;
// zero values impose no constraint.
type ArticleFilter struct {
	Year    *int
	Month   *int
	Authors []string // any of
	Tags    []string // any of
	Keyword string   // case-insensitive, title or abstract

	// Search terms must all match title or abstract.
	Search []string

	// Identifiers is the export allow-list.
	Identifiers []string

	Ordering []SortField
}

// Page is a limit/offset window over a list.
type Page struct {
	Limit  int
	Offset int
}

// Unbounded reports whether the page imposes no limit.
func (p Page) Unbounded() bool {
	return p.Limit <= 0
}

// SplitList parses a comma-separated parameter into trimmed, de-duplicated
// values. Blank entries are dropped.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	return NormalizeNames(strings.Split(raw, ","))
}

// SearchTerms splits free text on whitespace and commas.
func SearchTerms(raw string) []string {
	raw = strings.ReplaceAll(raw, ",", " ")
	return NormalizeNames(strings.Fields(raw))
}

// ParseOrdering parses "field,-other" into sort fields, keeping only fields
// listed in allowed. Unknown fields are ignored.
func ParseOrdering(raw string, allowed []string) []SortField {
	var out []SortField

	for _, term := range SplitList(raw) {
		desc := strings.HasPrefix(term, "-")
		name := strings.TrimPrefix(term, "-")

		if !slices.Contains(allowed, name) {
			continue
		}

		out = append(out, SortField{Field: name, Desc: desc})
	}

	return out
}
