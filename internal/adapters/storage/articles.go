package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// ArticleRepository implements ports.ArticleRepository.
type ArticleRepository struct {
	db *DB
}

// withLinks preloads the owner and both link sets in insertion order.
func withLinks(q *gorm.DB) *gorm.DB {
	return q.
		Preload("CreatedBy").
		Preload("Authorships", func(q *gorm.DB) *gorm.DB { return q.Order("id") }).
		Preload("Authorships.Author").
		Preload("ArticleTags", func(q *gorm.DB) *gorm.DB { return q.Order("id") }).
		Preload("ArticleTags.Tag")
}

// List implements ports.ArticleRepository.
func (r *ArticleRepository) List(
	ctx context.Context,
	filter domain.ArticleFilter,
	page domain.Page,
) ([]domain.Article, int64, error) {
	base := func() *gorm.DB {
		return r.db.gorm.WithContext(ctx).Model(&articleModel{}).Scopes(r.db.articleFilter(filter))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting articles: %w", err)
	}

	var rows []articleModel

	err := base().
		Scopes(withLinks, paginate(page)).
		Clauses(orderBy("articles", filter.Ordering, defaultArticleOrdering)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing articles: %w", err)
	}

	out := make([]domain.Article, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}

	return out, total, nil
}

// Get implements ports.ArticleRepository.
func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return loadArticle(r.db.gorm.WithContext(ctx), id)
}

func loadArticle(q *gorm.DB, id int64) (*domain.Article, error) {
	var m articleModel
	if err := q.Scopes(withLinks).Take(&m, id).Error; err != nil {
		return nil, notFound(err, "article", id)
	}

	a := m.toDomain()

	return &a, nil
}

// Create implements ports.ArticleRepository.
func (r *ArticleRepository) Create(
	ctx context.Context,
	createdBy string,
	in domain.ArticleInput,
) (*domain.Article, error) {
	var created *domain.Article

	err := r.db.transaction(ctx, func(tx *gorm.DB) error {
		owner, err := ensureUser(tx, createdBy)
		if err != nil {
			return err
		}

		m := articleModel{CreatedByID: owner.ID}
		applyScalars(&m, in)

		if err := checkIdentifierFree(tx, m.Identifier, 0); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return identifierTaken()
			}

			return fmt.Errorf("inserting article: %w", err)
		}

		if err := relink(tx, m.ID, in, false); err != nil {
			return err
		}

		created, err = loadArticle(tx, m.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update implements ports.ArticleRepository.
func (r *ArticleRepository) Update(ctx context.Context, id int64, in domain.ArticleInput) (*domain.Article, error) {
	var updated *domain.Article

	err := r.db.transaction(ctx, func(tx *gorm.DB) error {
		var current articleModel
		if err := tx.Select("id").Take(&current, id).Error; err != nil {
			return notFound(err, "article", id)
		}

		if in.Identifier != nil {
			if err := checkIdentifierFree(tx, *in.Identifier, id); err != nil {
				return err
			}
		}

		changes := scalarChanges(in)
		changes["updated_at"] = time.Now().UTC()

		if err := tx.Model(&articleModel{ID: id}).Updates(changes).Error; err != nil {
			if isUniqueViolation(err) {
				return identifierTaken()
			}

			return fmt.Errorf("updating article %d: %w", id, err)
		}

		if err := relink(tx, id, in, true); err != nil {
			return err
		}

		var err error
		updated, err = loadArticle(tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements ports.ArticleRepository. Comments and link rows go in
// the same transaction; authors and tags are kept.
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.transaction(ctx, func(tx *gorm.DB) error {
		var current articleModel
		if err := tx.Select("id").Take(&current, id).Error; err != nil {
			return notFound(err, "article", id)
		}

		for _, child := range []any{&commentModel{}, &authorshipModel{}, &articleTagModel{}} {
			if err := tx.Where("article_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("deleting dependents of article %d: %w", id, err)
			}
		}

		if err := tx.Delete(&articleModel{}, id).Error; err != nil {
			return fmt.Errorf("deleting article %d: %w", id, err)
		}

		return nil
	})
}

func applyScalars(m *articleModel, in domain.ArticleInput) {
	if in.Identifier != nil {
		m.Identifier = *in.Identifier
	}

	if in.PublicationDate != nil {
		m.PublicationDate = NewDate(*in.PublicationDate)
	}

	if in.Title != nil {
		m.Title = *in.Title
	}

	if in.Abstract != nil {
		m.Abstract = *in.Abstract
	}
}

func scalarChanges(in domain.ArticleInput) map[string]any {
	changes := make(map[string]any, 5)

	if in.Identifier != nil {
		changes["identifier"] = *in.Identifier
	}

	if in.PublicationDate != nil {
		changes["publication_date"] = NewDate(*in.PublicationDate)
	}

	if in.Title != nil {
		changes["title"] = *in.Title
	}

	if in.Abstract != nil {
		changes["abstract"] = *in.Abstract
	}

	return changes
}

// checkIdentifierFree fails when another article already uses identifier.
func checkIdentifierFree(tx *gorm.DB, identifier string, self int64) error {
	q := tx.Model(&articleModel{}).Where("identifier = ?", identifier)
	if self != 0 {
		q = q.Where("id <> ?", self)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("checking identifier: %w", err)
	}

	if n > 0 {
		return identifierTaken()
	}

	return nil
}

// relink resolves the supplied name lists and links them to the article.
// With replace set, existing links of a supplied list are removed first.
func relink(tx *gorm.DB, articleID int64, in domain.ArticleInput, replace bool) error {
	if in.Authors != nil {
		if replace {
			if err := tx.Where("article_id = ?", articleID).Delete(&authorshipModel{}).Error; err != nil {
				return fmt.Errorf("clearing authors: %w", err)
			}
		}

		if err := linkAuthors(tx, articleID, *in.Authors); err != nil {
			return err
		}
	}

	if in.Tags != nil {
		if replace {
			if err := tx.Where("article_id = ?", articleID).Delete(&articleTagModel{}).Error; err != nil {
				return fmt.Errorf("clearing tags: %w", err)
			}
		}

		if err := linkTags(tx, articleID, *in.Tags); err != nil {
			return err
		}
	}

	return nil
}

func linkAuthors(tx *gorm.DB, articleID int64, names []string) error {
	names = domain.NormalizeNames(names)
	if len(names) == 0 {
		return nil
	}

	links := make([]authorshipModel, 0, len(names))

	for _, name := range names {
		author := authorModel{Name: name}
		if _, err := firstOrInsert(tx, &author, "name = ?", name); err != nil {
			return fmt.Errorf("resolving author %q: %w", name, err)
		}

		links = append(links, authorshipModel{ArticleID: articleID, AuthorID: author.ID})
	}

	err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	if err != nil {
		return fmt.Errorf("linking authors: %w", err)
	}

	return nil
}

func linkTags(tx *gorm.DB, articleID int64, names []string) error {
	names = domain.NormalizeNames(names)
	if len(names) == 0 {
		return nil
	}

	links := make([]articleTagModel, 0, len(names))

	for _, name := range names {
		tag := tagModel{Name: name}
		if _, err := firstOrInsert(tx, &tag, "name = ?", name); err != nil {
			return fmt.Errorf("resolving tag %q: %w", name, err)
		}

		links = append(links, articleTagModel{ArticleID: articleID, TagID: tag.ID})
	}

	err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	if err != nil {
		return fmt.Errorf("linking tags: %w", err)
	}

	return nil
}

// firstOrInsert loads the row matching where into row, inserting row when
// none exists. The insert ignores unique conflicts so a concurrent writer
// that won the race is found by the second lookup. It reports whether row
// was inserted.
func firstOrInsert[T any](tx *gorm.DB, row *T, where string, arg any) (bool, error) {
	err := tx.Where(where, arg).Take(row).Error
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}

	if res.RowsAffected == 0 {
		return false, tx.Where(where, arg).Take(row).Error
	}

	return true, nil
}

// ensureUser returns the user row for username, creating it on first use.
func ensureUser(tx *gorm.DB, username string) (*userModel, error) {
	u := userModel{Username: username}
	if _, err := firstOrInsert(tx, &u, "username = ?", username); err != nil {
		return nil, fmt.Errorf("resolving user %q: %w", username, err)
	}

	return &u, nil
}
