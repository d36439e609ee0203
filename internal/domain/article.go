package domain

import (
	"strings"
	"time"
)

// Field limits shared by validation and the storage schema.
const (
	MaxIdentifierLength = 64
	MaxTitleLength      = 300
	MaxAuthorNameLength = 200
	MaxTagNameLength    = 100
	MaxUsernameLength   = 150
)

// DateLayout is the wire and storage format of publication dates.
const DateLayout = "2006-01-02"

// Identity is the authenticated caller of a request. The zero value is an
// anonymous caller.
type Identity struct {
	Username string
}

// IsAnonymous reports whether no identity was established.
func (i Identity) IsAnonymous() bool {
	return i.Username == ""
}

// User is a persisted identity that can own articles and comments.
type User struct {
	ID       int64
	Username string
}

// Author is a person credited on articles. Authors are created implicitly
// when an article write references a new name.
type Author struct {
	ID   int64
	Name string
}

// Tag labels articles. Tags share the Author lifecycle.
type Tag struct {
	ID   int64
	Name string
}

// Article is a published piece with linked authors and tags.
// Authors and Tags are in link-creation order.
type Article struct {
	ID              int64
	Identifier      string
	PublicationDate time.Time
	Title           string
	Abstract        string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Authors         []Author
	Tags            []Tag
}

// OwnedBy reports whether the identity created the article.
func (a *Article) OwnedBy(id Identity) bool {
	return !id.IsAnonymous() && a.CreatedBy == id.Username
}

// AuthorNames returns the linked author names in link order.
func (a *Article) AuthorNames() []string {
	names := make([]string, 0, len(a.Authors))
	for _, au := range a.Authors {
		names = append(names, au.Name)
	}

	return names
}

// TagNames returns the linked tag names in link order.
func (a *Article) TagNames() []string {
	names := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		names = append(names, t.Name)
	}

	return names
}

// ArticleInput carries the writable article fields. A nil field was not
// supplied by the caller; for Authors and Tags that means "leave links as
// they are", while a non-nil empty slice clears them.
type ArticleInput struct {
	Identifier      *string
	PublicationDate *time.Time
	Title           *string
	Abstract        *string
	Authors         *[]string
	Tags            *[]string
}

// Comment is a remark left by a user on an article.
type Comment struct {
	ID        int64
	ArticleID int64
	Author    string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the identity wrote the comment.
func (c *Comment) OwnedBy(id Identity) bool {
	return !id.IsAnonymous() && c.Author == id.Username
}

// CommentInput carries the writable comment fields; nil means not supplied.
type CommentInput struct {
	ArticleID *int64
	Body      *string
}

// NormalizeNames trims every name, drops blanks and collapses duplicates
// while keeping first-seen order.
func NormalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		if _, dup := seen[n]; dup {
			continue
		}

		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
