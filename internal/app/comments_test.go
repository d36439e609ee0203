package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/mocks"
)

func newCommentService(t *testing.T) (*CommentService, *mocks.MockCommentRepository) {
	t.Helper()

	repo := mocks.NewMockCommentRepository(t)

	return NewCommentService(CommentServiceConfig{Comments: repo, Logger: discardLogger()}), repo
}

func TestNewCommentService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewCommentService(CommentServiceConfig{})
	})
}

func TestCommentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		actor     domain.Identity
		input     domain.CommentInput
		setupMock func(*mocks.MockCommentRepository)
		errCheck  func(error) bool
	}{
		{
			name:     "anonymous caller",
			actor:    anonymous,
			input:    domain.CommentInput{ArticleID: ptr(int64(1)), Body: ptr("hi")},
			errCheck: domain.IsUnauthorized,
		},
		{
			name:     "blank body",
			actor:    bob,
			input:    domain.CommentInput{ArticleID: ptr(int64(1)), Body: ptr("   ")},
			errCheck: domain.IsValidation,
		},
		{
			name:     "missing article id",
			actor:    bob,
			input:    domain.CommentInput{Body: ptr("hi")},
			errCheck: domain.IsValidation,
		},
		{
			name:  "unknown article",
			actor: bob,
			input: domain.CommentInput{ArticleID: ptr(int64(99)), Body: ptr("hi")},
			setupMock: func(m *mocks.MockCommentRepository) {
				m.EXPECT().Create(mock.Anything, "bob", mock.Anything).
					Return(nil, domain.NewNotFoundError("article", "99"))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name:  "author is the acting identity",
			actor: bob,
			input: domain.CommentInput{ArticleID: ptr(int64(1)), Body: ptr(" hi ")},
			setupMock: func(m *mocks.MockCommentRepository) {
				m.EXPECT().Create(mock.Anything, "bob", mock.MatchedBy(func(in domain.CommentInput) bool {
					return *in.Body == "hi" && *in.ArticleID == 1
				})).Return(&domain.Comment{ID: 5, ArticleID: 1, Author: "bob", Body: "hi"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newCommentService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			c, err := svc.Create(context.Background(), tt.actor, tt.input)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "bob", c.Author)
		})
	}
}

func TestCommentService_OwnerChecks(t *testing.T) {
	existing := &domain.Comment{ID: 5, ArticleID: 1, Author: "bob", Body: "hi"}

	t.Run("non-owner update", func(t *testing.T) {
		svc, repo := newCommentService(t)
		repo.EXPECT().Get(mock.Anything, int64(5)).Return(existing, nil)

		_, err := svc.Update(context.Background(), alice, 5, domain.CommentInput{Body: ptr("x")}, true)

		require.True(t, domain.IsForbidden(err))
		assert.Equal(t, "You can only update your own comments.", err.Error())
	})

	t.Run("non-owner delete", func(t *testing.T) {
		svc, repo := newCommentService(t)
		repo.EXPECT().Get(mock.Anything, int64(5)).Return(existing, nil)

		err := svc.Delete(context.Background(), alice, 5)

		require.True(t, domain.IsForbidden(err))
		assert.Equal(t, "You can only delete your own comments.", err.Error())
	})

	t.Run("owner update", func(t *testing.T) {
		svc, repo := newCommentService(t)
		repo.EXPECT().Get(mock.Anything, int64(5)).Return(existing, nil)
		repo.EXPECT().Update(mock.Anything, int64(5), mock.Anything).
			Return(&domain.Comment{ID: 5, ArticleID: 1, Author: "bob", Body: "edited"}, nil)

		c, err := svc.Update(context.Background(), bob, 5, domain.CommentInput{Body: ptr("edited")}, true)
		require.NoError(t, err)
		assert.Equal(t, "edited", c.Body)
	})

	t.Run("owner full update without article id", func(t *testing.T) {
		svc, repo := newCommentService(t)
		repo.EXPECT().Get(mock.Anything, int64(5)).Return(existing, nil)

		_, err := svc.Update(context.Background(), bob, 5, domain.CommentInput{Body: ptr("edited")}, false)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("owner delete", func(t *testing.T) {
		svc, repo := newCommentService(t)
		repo.EXPECT().Get(mock.Anything, int64(5)).Return(existing, nil)
		repo.EXPECT().Delete(mock.Anything, int64(5)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), bob, 5))
	})

	t.Run("unknown comment", func(t *testing.T) {
		svc, repo := newCommentService(t)
		repo.EXPECT().Get(mock.Anything, int64(9)).Return(nil, domain.NewNotFoundError("comment", "9"))

		assert.True(t, domain.IsNotFound(svc.Delete(context.Background(), bob, 9)))
	})
}

func TestCatalogService(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().ListAuthors(mock.Anything, domain.Page{Limit: 20}).
		Return([]domain.Author{{ID: 1, Name: "Ada"}}, int64(1), nil)
	repo.EXPECT().GetTag(mock.Anything, int64(4)).
		Return(nil, domain.NewNotFoundError("tag", "4"))

	authors, total, err := svc.ListAuthors(context.Background(), domain.Page{Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Ada", authors[0].Name)

	_, err = svc.GetTag(context.Background(), 4)
	assert.True(t, domain.IsNotFound(err))

	assert.Panics(t, func() { NewCatalogService(nil) })
}
