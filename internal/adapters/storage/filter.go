package storage

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// dialect renders the expressions that differ between stores.
type dialect interface {
	year(column string) string
	month(column string) string
	// contains is a case-insensitive LIKE over column taking one pattern
	// built by containsPattern.
	contains(column string) string
}

type sqliteDialect struct{}

func (sqliteDialect) year(column string) string {
	return "CAST(strftime('%Y', " + column + ") AS INTEGER)"
}

func (sqliteDialect) month(column string) string {
	return "CAST(strftime('%m', " + column + ") AS INTEGER)"
}

// SQLite LIKE already ignores ASCII case. Lowering either side would break
// matches on non-ASCII letters, which its LOWER leaves alone.
func (sqliteDialect) contains(column string) string {
	return column + ` LIKE ? ESCAPE '\'`
}

type postgresDialect struct{}

func (postgresDialect) year(column string) string {
	return "EXTRACT(YEAR FROM " + column + ")"
}

func (postgresDialect) month(column string) string {
	return "EXTRACT(MONTH FROM " + column + ")"
}

func (postgresDialect) contains(column string) string {
	return column + ` ILIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// titleOrAbstract matches one pattern against either text column.
func (db *DB) titleOrAbstract() string {
	return "(" + db.dialect.contains("articles.title") + " OR " + db.dialect.contains("articles.abstract") + ")"
}

// articleFilter narrows an articles query. Join-based predicates are
// subqueries on articles.id so a match on several links yields one row.
func (db *DB) articleFilter(f domain.ArticleFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.Year != nil {
			q = q.Where(db.dialect.year("articles.publication_date")+" = ?", *f.Year)
		}

		if f.Month != nil {
			q = q.Where(db.dialect.month("articles.publication_date")+" = ?", *f.Month)
		}

		if len(f.Authors) > 0 {
			sub := q.Session(&gorm.Session{NewDB: true}).
				Table("authorships").
				Select("authorships.article_id").
				Joins("JOIN authors ON authors.id = authorships.author_id").
				Where("authors.name IN ?", f.Authors)
			q = q.Where("articles.id IN (?)", sub)
		}

		if len(f.Tags) > 0 {
			sub := q.Session(&gorm.Session{NewDB: true}).
				Table("article_tags").
				Select("article_tags.article_id").
				Joins("JOIN tags ON tags.id = article_tags.tag_id").
				Where("tags.name IN ?", f.Tags)
			q = q.Where("articles.id IN (?)", sub)
		}

		match := db.titleOrAbstract()

		if f.Keyword != "" {
			p := containsPattern(f.Keyword)
			q = q.Where(match, p, p)
		}

		for _, term := range f.Search {
			p := containsPattern(term)
			q = q.Where(match, p, p)
		}

		if len(f.Identifiers) > 0 {
			q = q.Where("articles.identifier IN ?", f.Identifiers)
		}

		return q
	}
}

var defaultArticleOrdering = []domain.SortField{
	{Field: "publication_date", Desc: true},
	{Field: "created_at", Desc: true},
}

var defaultCommentOrdering = []domain.SortField{
	{Field: "created_at", Desc: true},
}

// orderBy applies fields, or fallback when fields is empty, and always ends
// with id descending so pagination is stable.
func orderBy(table string, fields, fallback []domain.SortField) clause.OrderBy {
	if len(fields) == 0 {
		fields = fallback
	}

	cols := make([]clause.OrderByColumn, 0, len(fields)+1)
	for _, f := range fields {
		cols = append(cols, clause.OrderByColumn{
			Column: clause.Column{Table: table, Name: f.Field},
			Desc:   f.Desc,
		})
	}

	cols = append(cols, clause.OrderByColumn{
		Column: clause.Column{Table: table, Name: "id"},
		Desc:   true,
	})

	return clause.OrderBy{Columns: cols}
}

// paginate applies a limit/offset window; an unbounded page only skips.
func paginate(page domain.Page) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if !page.Unbounded() {
			q = q.Limit(page.Limit)
		}

		if page.Offset > 0 {
			q = q.Offset(page.Offset)
		}

		return q
	}
}
