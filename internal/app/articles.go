package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

const entityArticle = "article"

// ArticleService orchestrates article use cases.
type ArticleService struct {
	articles ports.ArticleRepository
	recorder Recorder
	logger   *slog.Logger
}

// ArticleServiceConfig contains dependencies for the article service.
type ArticleServiceConfig struct {
	Articles ports.ArticleRepository
	Recorder Recorder
	Logger   *slog.Logger
}

// NewArticleService creates an article service. It panics without a
// repository since no use case can run without one.
func NewArticleService(cfg ArticleServiceConfig) *ArticleService {
	if cfg.Articles == nil {
		panic("app: ArticleServiceConfig.Articles is required")
	}

	return &ArticleService{
		articles: cfg.Articles,
		recorder: orNoop(cfg.Recorder),
		logger:   orDefault(cfg.Logger, "app.ArticleService"),
	}
}

// List returns one page of articles matching filter and the total count.
func (s *ArticleService) List(
	ctx context.Context,
	filter domain.ArticleFilter,
	page domain.Page,
) ([]domain.Article, int64, error) {
	articles, total, err := s.articles.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing articles: %w", err)
	}

	return articles, total, nil
}

// Get returns a single article.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting article: %w", err)
	}

	return a, nil
}

// Create validates in and stores a new article owned by actor.
func (s *ArticleService) Create(ctx context.Context, actor domain.Identity, in domain.ArticleInput) (*domain.Article, error) {
	ctx, done := traceWrite(ctx, s.recorder, entityArticle, "create", 0)
	a, err := s.create(ctx, actor, in)
	done(err)

	return a, err
}

func (s *ArticleService) create(ctx context.Context, actor domain.Identity, in domain.ArticleInput) (*domain.Article, error) {
	if err := requireIdentity(actor, "create article"); err != nil {
		return nil, err
	}

	in = normalizeArticle(in)
	if err := domain.NewFieldsValidationError(domain.ValidateArticleInput(in, false)); err != nil {
		return nil, err
	}

	in.Authors = normalizeNamesPtr(in.Authors)
	in.Tags = normalizeNamesPtr(in.Tags)

	a, err := s.articles.Create(ctx, actor.Username, in)
	if err != nil {
		return nil, fmt.Errorf("creating article: %w", err)
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "article created",
		slog.Int64("article_id", a.ID),
		slog.String("identifier", a.Identifier),
		slog.String("created_by", a.CreatedBy),
	)

	return a, nil
}

// Update applies in to an article owned by actor. A partial update only
// validates the supplied fields; a full update requires all of them.
func (s *ArticleService) Update(
	ctx context.Context,
	actor domain.Identity,
	id int64,
	in domain.ArticleInput,
	partial bool,
) (*domain.Article, error) {
	ctx, done := traceWrite(ctx, s.recorder, entityArticle, "update", id)
	a, err := s.update(ctx, actor, id, in, partial)
	done(err)

	return a, err
}

func (s *ArticleService) update(
	ctx context.Context,
	actor domain.Identity,
	id int64,
	in domain.ArticleInput,
	partial bool,
) (*domain.Article, error) {
	if err := requireIdentity(actor, "update article"); err != nil {
		return nil, err
	}

	current, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading article: %w", err)
	}

	if err := authorizeArticle(actor, current, "update article", msgUpdateOwnArticle); err != nil {
		return nil, err
	}

	in = normalizeArticle(in)
	if err := domain.NewFieldsValidationError(domain.ValidateArticleInput(in, partial)); err != nil {
		return nil, err
	}

	in.Authors = normalizeNamesPtr(in.Authors)
	in.Tags = normalizeNamesPtr(in.Tags)

	a, err := s.articles.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("updating article: %w", err)
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "article updated",
		slog.Int64("article_id", a.ID),
		slog.Bool("partial", partial),
	)

	return a, nil
}

// Delete removes an article owned by actor together with its comments
// and links.
func (s *ArticleService) Delete(ctx context.Context, actor domain.Identity, id int64) error {
	ctx, done := traceWrite(ctx, s.recorder, entityArticle, "delete", id)
	err := s.delete(ctx, actor, id)
	done(err)

	return err
}

func (s *ArticleService) delete(ctx context.Context, actor domain.Identity, id int64) error {
	if err := requireIdentity(actor, "delete article"); err != nil {
		return err
	}

	current, err := s.articles.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading article: %w", err)
	}

	if err := authorizeArticle(actor, current, "delete article", msgDeleteOwnArticle); err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "article deleted", slog.Int64("article_id", id))

	return nil
}
