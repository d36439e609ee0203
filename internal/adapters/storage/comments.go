package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// CommentRepository implements ports.CommentRepository.
type CommentRepository struct {
	db *DB
}

// List implements ports.CommentRepository.
func (r *CommentRepository) List(
	ctx context.Context,
	ordering []domain.SortField,
	page domain.Page,
) ([]domain.Comment, int64, error) {
	q := r.db.gorm.WithContext(ctx)

	var total int64
	if err := q.Model(&commentModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting comments: %w", err)
	}

	var rows []commentModel

	err := q.Preload("Author").
		Scopes(paginate(page)).
		Clauses(orderBy("comments", ordering, defaultCommentOrdering)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing comments: %w", err)
	}

	out := make([]domain.Comment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}

	return out, total, nil
}

// Get implements ports.CommentRepository.
func (r *CommentRepository) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	return loadComment(r.db.gorm.WithContext(ctx), id)
}

func loadComment(q *gorm.DB, id int64) (*domain.Comment, error) {
	var m commentModel
	if err := q.Preload("Author").Take(&m, id).Error; err != nil {
		return nil, notFound(err, "comment", id)
	}

	c := m.toDomain()

	return &c, nil
}

// Create implements ports.CommentRepository.
func (r *CommentRepository) Create(ctx context.Context, author string, in domain.CommentInput) (*domain.Comment, error) {
	var created *domain.Comment

	err := r.db.transaction(ctx, func(tx *gorm.DB) error {
		if err := requireArticle(tx, in.ArticleID); err != nil {
			return err
		}

		u, err := ensureUser(tx, author)
		if err != nil {
			return err
		}

		m := commentModel{AuthorID: u.ID}
		if in.ArticleID != nil {
			m.ArticleID = *in.ArticleID
		}

		if in.Body != nil {
			m.Body = *in.Body
		}

		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return fmt.Errorf("inserting comment: %w", err)
		}

		created, err = loadComment(tx, m.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update implements ports.CommentRepository.
func (r *CommentRepository) Update(ctx context.Context, id int64, in domain.CommentInput) (*domain.Comment, error) {
	var updated *domain.Comment

	err := r.db.transaction(ctx, func(tx *gorm.DB) error {
		var current commentModel
		if err := tx.Select("id").Take(&current, id).Error; err != nil {
			return notFound(err, "comment", id)
		}

		changes := map[string]any{"updated_at": time.Now().UTC()}

		if in.ArticleID != nil {
			if err := requireArticle(tx, in.ArticleID); err != nil {
				return err
			}

			changes["article_id"] = *in.ArticleID
		}

		if in.Body != nil {
			changes["body"] = *in.Body
		}

		if err := tx.Model(&commentModel{ID: id}).Updates(changes).Error; err != nil {
			return fmt.Errorf("updating comment %d: %w", id, err)
		}

		var err error
		updated, err = loadComment(tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements ports.CommentRepository.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.gorm.WithContext(ctx).Delete(&commentModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting comment %d: %w", id, res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("comment", strconv.FormatInt(id, 10))
	}

	return nil
}

// requireArticle reports a missing article as not found.
func requireArticle(tx *gorm.DB, id *int64) error {
	if id == nil {
		return domain.NewValidationError("article_id", "This field is required.")
	}

	var n int64
	if err := tx.Model(&articleModel{}).Where("id = ?", *id).Count(&n).Error; err != nil {
		return fmt.Errorf("checking article %d: %w", *id, err)
	}

	if n == 0 {
		return domain.NewNotFoundError("article", strconv.FormatInt(*id, 10))
	}

	return nil
}
