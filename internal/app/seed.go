package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

// Demo data defaults.
const (
	DefaultSeedArticleCount = 150
	DefaultSeedOwner        = "demo_user"
)

// DemoUsers are created by SeedUsers.
var DemoUsers = []string{"demo_user1", "demo_user2"}

// SeedService loads deterministic demo data.
type SeedService struct {
	seeder ports.Seeder
	now    func() time.Time
	logger *slog.Logger
}

// NewSeedService creates a seed service. now defaults to time.Now.
func NewSeedService(seeder ports.Seeder, now func() time.Time, logger *slog.Logger) *SeedService {
	if now == nil {
		now = time.Now
	}

	return &SeedService{
		seeder: seeder,
		now:    now,
		logger: orDefault(logger, "app.SeedService"),
	}
}

// SeedUsers ensures the demo users exist and returns how many were created.
func (s *SeedService) SeedUsers(ctx context.Context) (int, error) {
	created, err := s.seeder.SeedUsers(ctx, DemoUsers)
	if err != nil {
		return 0, fmt.Errorf("seeding users: %w", err)
	}

	s.logger.InfoContext(ctx, "demo users ensured",
		slog.Int("created", created),
		slog.Int("existing", len(DemoUsers)-created),
	)

	return created, nil
}

// SeedArticles ensures count sample articles owned by owner exist and
// returns how many were created.
func (s *SeedService) SeedArticles(ctx context.Context, count int, owner string) (int, error) {
	if count < 0 {
		return 0, domain.NewValidationError("count", "Ensure this value is greater than or equal to 0.")
	}

	if owner == "" {
		return 0, domain.NewValidationError("username", domain.MsgBlank)
	}

	created, err := s.seeder.SeedArticles(ctx, owner, SampleArticles(count, s.now()))
	if err != nil {
		return 0, fmt.Errorf("seeding articles: %w", err)
	}

	s.logger.InfoContext(ctx, "sample articles ensured",
		slog.Int("count", count),
		slog.Int("created", created),
		slog.Int("existing", count-created),
	)

	return created, nil
}

// SampleArticles builds articles ART-000001 to ART-<count>. Article i is
// published i%365 days before today.
func SampleArticles(count int, today time.Time) []domain.ArticleInput {
	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]domain.ArticleInput, 0, count)

	for i := 1; i <= count; i++ {
		identifier := fmt.Sprintf("ART-%06d", i)
		published := base.AddDate(0, 0, -(i % 365))
		title := fmt.Sprintf("Sample Article %03d", i)
		abstract := fmt.Sprintf("This is a sample abstract for article number %03d. "+
			"It contains placeholder content for testing the API and database. "+
			"Repeated text helps simulate realistic abstract length.", i)

		out = append(out, domain.ArticleInput{
			Identifier:      &identifier,
			PublicationDate: &published,
			Title:           &title,
			Abstract:        &abstract,
		})
	}

	return out
}
