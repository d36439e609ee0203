package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

func TestArticleService_Export(t *testing.T) {
	svc, repo, rec := newArticleService(t)

	filter := domain.ArticleFilter{Identifiers: []string{"ART-1", "ART-2"}}

	repo.EXPECT().List(mock.Anything, filter, domain.Page{}).Return([]domain.Article{
		{
			Identifier:      "ART-1",
			PublicationDate: day(2024, 1, 15),
			Title:           "Graphs",
			Abstract:        "On graphs, mostly.",
			Authors:         []domain.Author{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}},
			Tags:            []domain.Tag{{ID: 1, Name: "ml"}},
		},
		{
			Identifier:      "ART-2",
			PublicationDate: day(2023, 12, 1),
			Title:           `Say "hi"`,
		},
	}, int64(2), nil)

	var buf bytes.Buffer

	n, err := svc.Export(context.Background(), filter, &buf)
	require.NoError(t, err)

	want := "identifier,publication_date,title,abstract,authors,tags\r\n" +
		"ART-1,2024-01-15,Graphs,\"On graphs, mostly.\",\"B, A\",ml\r\n" +
		"ART-2,2023-12-01,\"Say \"\"hi\"\"\",,,\r\n"

	assert.Equal(t, 2, n)
	assert.Equal(t, want, buf.String())
	assert.Equal(t, []int{2}, rec.rows)
}

func TestArticleService_Export_EmptyResultStillHasHeader(t *testing.T) {
	svc, repo, _ := newArticleService(t)
	repo.EXPECT().List(mock.Anything, mock.Anything, domain.Page{}).Return(nil, int64(0), nil)

	var buf bytes.Buffer

	n, err := svc.Export(context.Background(), domain.ArticleFilter{}, &buf)
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Equal(t, "identifier,publication_date,title,abstract,authors,tags\r\n", buf.String())
}

func TestArticleService_Export_RepositoryError(t *testing.T) {
	svc, repo, rec := newArticleService(t)
	repo.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("boom"))

	var buf bytes.Buffer

	_, err := svc.Export(context.Background(), domain.ArticleFilter{}, &buf)
	require.Error(t, err)
	assert.Empty(t, buf.String())
	assert.Empty(t, rec.rows)
}
