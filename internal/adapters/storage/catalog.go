package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// CatalogRepository implements ports.CatalogRepository.
type CatalogRepository struct {
	db *DB
}

// ListAuthors returns authors in creation (primary key) order.
func (r *CatalogRepository) ListAuthors(ctx context.Context, page domain.Page) ([]domain.Author, int64, error) {
	var rows []authorModel

	total, err := r.list(ctx, &authorModel{}, &rows, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing authors: %w", err)
	}

	out := make([]domain.Author, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Author{ID: m.ID, Name: m.Name})
	}

	return out, total, nil
}

// GetAuthor returns domain.ErrNotFound for an unknown id.
func (r *CatalogRepository) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	var m authorModel
	if err := r.db.gorm.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, notFound(err, "author", id)
	}

	return &domain.Author{ID: m.ID, Name: m.Name}, nil
}

// ListTags returns tags in creation (primary key) order.
func (r *CatalogRepository) ListTags(ctx context.Context, page domain.Page) ([]domain.Tag, int64, error) {
	var rows []tagModel

	total, err := r.list(ctx, &tagModel{}, &rows, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing tags: %w", err)
	}

	out := make([]domain.Tag, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Tag{ID: m.ID, Name: m.Name})
	}

	return out, total, nil
}

// GetTag returns domain.ErrNotFound for an unknown id.
func (r *CatalogRepository) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	var m tagModel
	if err := r.db.gorm.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, notFound(err, "tag", id)
	}

	return &domain.Tag{ID: m.ID, Name: m.Name}, nil
}

func (r *CatalogRepository) list(ctx context.Context, model, dest any, page domain.Page) (int64, error) {
	q := r.db.gorm.WithContext(ctx).Model(model).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}

	if err := q.Scopes(paginate(page)).Order("id").Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}
