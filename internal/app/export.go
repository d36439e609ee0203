package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
)

// ExportHeader is the first row of every article export.
var ExportHeader = []string{"identifier", "publication_date", "title", "abstract", "authors", "tags"}

// exportNameSeparator joins author and tag names within one cell.
const exportNameSeparator = ", "

// Export writes every article matching filter to w as CSV with CRLF line
// endings and returns the number of data rows.
func (s *ArticleService) Export(ctx context.Context, filter domain.ArticleFilter, w io.Writer) (rows int, err error) {
	ctx, end := telemetry.StartSpan(ctx, "article.export")
	defer func() { end(err) }()

	articles, _, err := s.articles.List(ctx, filter, domain.Page{})
	if err != nil {
		return 0, fmt.Errorf("exporting articles: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(ExportHeader); err != nil {
		return 0, fmt.Errorf("writing export header: %w", err)
	}

	for i := range articles {
		if err := cw.Write(exportRow(&articles[i])); err != nil {
			return 0, fmt.Errorf("writing export row: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing export: %w", err)
	}

	s.recorder.ExportCompleted(len(articles))
	loggerFor(ctx, s.logger).InfoContext(ctx, "articles exported", slog.Int("rows", len(articles)))

	return len(articles), nil
}

func exportRow(a *domain.Article) []string {
	return []string{
		a.Identifier,
		a.PublicationDate.Format(domain.DateLayout),
		a.Title,
		a.Abstract,
		strings.Join(a.AuthorNames(), exportNameSeparator),
		strings.Join(a.TagNames(), exportNameSeparator),
	}
}
