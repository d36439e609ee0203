// Package ports declares the storage and health contracts the use cases
// depend on. Methods take a context first, return domain types and report
// failures as domain errors. Each write runs in one store transaction.
package ports

import (
	"context"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// ArticleRepository persists articles together with their author and tag
// links.
type ArticleRepository interface {
	// List returns one page of articles matching filter and the total match
	// count. An unbounded page returns every match.
	List(ctx context.Context, filter domain.ArticleFilter, page domain.Page) ([]domain.Article, int64, error)

	// Get returns the article with its authors and tags in link order.
	// Returns domain.ErrNotFound if the article does not exist.
	Get(ctx context.Context, id int64) (*domain.Article, error)

	// Create inserts the article owned by createdBy, resolving author and tag
	// names to existing rows or new ones. A taken identifier is reported as a
	// validation error on "identifier".
	Create(ctx context.Context, createdBy string, in domain.ArticleInput) (*domain.Article, error)

	// Update applies the supplied fields. Non-nil Authors or Tags replace the
	// current link set; nil leaves it untouched.
	// Returns domain.ErrNotFound if the article does not exist.
	Update(ctx context.Context, id int64, in domain.ArticleInput) (*domain.Article, error)

	// Delete removes the article with its comments and links. Author and tag
	// rows are kept.
	// Returns domain.ErrNotFound if the article does not exist.
	Delete(ctx context.Context, id int64) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	// List returns one page of comments and the total count.
	List(ctx context.Context, ordering []domain.SortField, page domain.Page) ([]domain.Comment, int64, error)

	// Get returns domain.ErrNotFound if the comment does not exist.
	Get(ctx context.Context, id int64) (*domain.Comment, error)

	// Create inserts a comment written by author. The referenced article must
	// exist, otherwise domain.ErrNotFound is returned.
	Create(ctx context.Context, author string, in domain.CommentInput) (*domain.Comment, error)

	// Update applies the supplied fields. Moving a comment to another article
	// requires that article to exist.
	Update(ctx context.Context, id int64, in domain.CommentInput) (*domain.Comment, error)

	// Delete returns domain.ErrNotFound if the comment does not exist.
	Delete(ctx context.Context, id int64) error
}

// CatalogRepository reads authors and tags. Both are created implicitly by
// article writes and are never modified through this port.
type CatalogRepository interface {
	ListAuthors(ctx context.Context, page domain.Page) ([]domain.Author, int64, error)
	GetAuthor(ctx context.Context, id int64) (*domain.Author, error)
	ListTags(ctx context.Context, page domain.Page) ([]domain.Tag, int64, error)
	GetTag(ctx context.Context, id int64) (*domain.Tag, error)
}

// Seeder bulk-loads demo data. Implementations must be idempotent.
type Seeder interface {
	// SeedUsers ensures every username exists and returns how many were new.
	SeedUsers(ctx context.Context, usernames []string) (int, error)

	// SeedArticles ensures each article exists by identifier, owned by
	// owner, and returns how many were inserted. It runs in one transaction.
	SeedArticles(ctx context.Context, owner string, articles []domain.ArticleInput) (int, error)
}
