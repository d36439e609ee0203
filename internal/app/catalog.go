package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

// CatalogService exposes authors and tags read-only.
type CatalogService struct {
	catalog ports.CatalogRepository
}

// NewCatalogService creates a catalog service. It panics without a
// repository.
func NewCatalogService(catalog ports.CatalogRepository) *CatalogService {
	if catalog == nil {
		panic("app: catalog repository is required")
	}

	return &CatalogService{catalog: catalog}
}

// ListAuthors returns one page of authors in creation order.
func (s *CatalogService) ListAuthors(ctx context.Context, page domain.Page) ([]domain.Author, int64, error) {
	authors, total, err := s.catalog.ListAuthors(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing authors: %w", err)
	}

	return authors, total, nil
}

// GetAuthor returns a single author.
func (s *CatalogService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	a, err := s.catalog.GetAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting author: %w", err)
	}

	return a, nil
}

// ListTags returns one page of tags in creation order.
func (s *CatalogService) ListTags(ctx context.Context, page domain.Page) ([]domain.Tag, int64, error) {
	tags, total, err := s.catalog.ListTags(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing tags: %w", err)
	}

	return tags, total, nil
}

// GetTag returns a single tag.
func (s *CatalogService) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	t, err := s.catalog.GetTag(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	return t, nil
}
