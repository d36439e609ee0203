package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// seedBatchSize bounds the rows per INSERT statement.
const seedBatchSize = 500

// Seeder implements ports.Seeder.
type Seeder struct {
	db *DB
}

// SeedUsers implements ports.Seeder.
func (s *Seeder) SeedUsers(ctx context.Context, usernames []string) (int, error) {
	created := 0

	err := s.db.transaction(ctx, func(tx *gorm.DB) error {
		for _, name := range usernames {
			u := userModel{Username: name}

			inserted, err := firstOrInsert(tx, &u, "username = ?", name)
			if err != nil {
				return fmt.Errorf("seeding user %q: %w", name, err)
			}

			if inserted {
				created++
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// SeedArticles implements ports.Seeder. Articles whose identifier already
// exists are left untouched.
func (s *Seeder) SeedArticles(ctx context.Context, owner string, articles []domain.ArticleInput) (int, error) {
	identifiers := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.Identifier != nil {
			identifiers = append(identifiers, *a.Identifier)
		}
	}

	created := 0

	err := s.db.transaction(ctx, func(tx *gorm.DB) error {
		u, err := ensureUser(tx, owner)
		if err != nil {
			return err
		}

		present, err := existingIdentifiers(tx, identifiers)
		if err != nil {
			return err
		}

		rows := make([]articleModel, 0, len(articles))

		for _, a := range articles {
			if a.Identifier == nil {
				continue
			}

			if _, ok := present[*a.Identifier]; ok {
				continue
			}

			m := articleModel{CreatedByID: u.ID}
			applyScalars(&m, a)
			rows = append(rows, m)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.Omit(clause.Associations).CreateInBatches(&rows, seedBatchSize).Error; err != nil {
			return fmt.Errorf("inserting seed articles: %w", err)
		}

		created = len(rows)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// existingIdentifiers returns which of identifiers are already stored. The
// lookup is split into seedBatchSize chunks to stay under the drivers' bind
// parameter limits.
func existingIdentifiers(tx *gorm.DB, identifiers []string) (map[string]struct{}, error) {
	present := make(map[string]struct{})

	for start := 0; start < len(identifiers); start += seedBatchSize {
		chunk := identifiers[start:min(start+seedBatchSize, len(identifiers))]

		var found []string
		if err := tx.Model(&articleModel{}).
			Where("identifier IN ?", chunk).
			Pluck("identifier", &found).Error; err != nil {
			return nil, fmt.Errorf("loading existing identifiers: %w", err)
		}

		for _, id := range found {
			present[id] = struct{}{}
		}
	}

	return present, nil
}
