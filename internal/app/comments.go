package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

const entityComment = "comment"

// CommentService orchestrates comment use cases.
type CommentService struct {
	comments ports.CommentRepository
	recorder Recorder
	logger   *slog.Logger
}

// CommentServiceConfig contains dependencies for the comment service.
type CommentServiceConfig struct {
	Comments ports.CommentRepository
	Recorder Recorder
	Logger   *slog.Logger
}

// NewCommentService creates a comment service. It panics without a
// repository.
func NewCommentService(cfg CommentServiceConfig) *CommentService {
	if cfg.Comments == nil {
		panic("app: CommentServiceConfig.Comments is required")
	}

	return &CommentService{
		comments: cfg.Comments,
		recorder: orNoop(cfg.Recorder),
		logger:   orDefault(cfg.Logger, "app.CommentService"),
	}
}

// List returns one page of comments and the total count.
func (s *CommentService) List(
	ctx context.Context,
	ordering []domain.SortField,
	page domain.Page,
) ([]domain.Comment, int64, error) {
	comments, total, err := s.comments.List(ctx, ordering, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing comments: %w", err)
	}

	return comments, total, nil
}

// Get returns a single comment.
func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := s.comments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	return c, nil
}

// Create stores a comment written by actor.
func (s *CommentService) Create(ctx context.Context, actor domain.Identity, in domain.CommentInput) (*domain.Comment, error) {
	ctx, done := traceWrite(ctx, s.recorder, entityComment, "create", 0)
	c, err := s.create(ctx, actor, in)
	done(err)

	return c, err
}

func (s *CommentService) create(ctx context.Context, actor domain.Identity, in domain.CommentInput) (*domain.Comment, error) {
	if err := requireIdentity(actor, "create comment"); err != nil {
		return nil, err
	}

	in.Body = trimPtr(in.Body)
	if err := domain.NewFieldsValidationError(domain.ValidateCommentInput(in, false)); err != nil {
		return nil, err
	}

	c, err := s.comments.Create(ctx, actor.Username, in)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	loggerFor(ctx, s.logger).InfoContext(ctx, "comment created",
		slog.Int64("comment_id", c.ID),
		slog.Int64("article_id", c.ArticleID),
	)

	return c, nil
}

// Update applies in to a comment written by actor.
func (s *CommentService) Update(
	ctx context.Context,
	actor domain.Identity,
	id int64,
	in domain.CommentInput,
	partial bool,
) (*domain.Comment, error) {
	ctx, done := traceWrite(ctx, s.recorder, entityComment, "update", id)
	c, err := s.update(ctx, actor, id, in, partial)
	done(err)

	return c, err
}

func (s *CommentService) update(
	ctx context.Context,
	actor domain.Identity,
	id int64,
	in domain.CommentInput,
	partial bool,
) (*domain.Comment, error) {
	if err := requireIdentity(actor, "update comment"); err != nil {
		return nil, err
	}

	current, err := s.comments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading comment: %w", err)
	}

	if err := authorizeComment(actor, current, "update comment", msgUpdateOwnComment); err != nil {
		return nil, err
	}

	in.Body = trimPtr(in.Body)
	if err := domain.NewFieldsValidationError(domain.ValidateCommentInput(in, partial)); err != nil {
		return nil, err
	}

	c, err := s.comments.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	return c, nil
}

// Delete removes a comment written by actor.
func (s *CommentService) Delete(ctx context.Context, actor domain.Identity, id int64) error {
	ctx, done := traceWrite(ctx, s.recorder, entityComment, "delete", id)
	err := s.delete(ctx, actor, id)
	done(err)

	return err
}

func (s *CommentService) delete(ctx context.Context, actor domain.Identity, id int64) error {
	if err := requireIdentity(actor, "delete comment"); err != nil {
		return err
	}

	current, err := s.comments.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading comment: %w", err)
	}

	if err := authorizeComment(actor, current, "delete comment", msgDeleteOwnComment); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	return nil
}
