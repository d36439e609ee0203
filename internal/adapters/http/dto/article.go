package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// NamedRef is the read shape of authors and tags.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AuthorResponse converts a domain author.
func AuthorResponse(a *domain.Author) NamedRef {
	return NamedRef{ID: a.ID, Name: a.Name}
}

// TagResponse converts a domain tag.
func TagResponse(t *domain.Tag) NamedRef {
	return NamedRef{ID: t.ID, Name: t.Name}
}

// ArticleRequest is the body of article create and update requests.
// Omitted fields decode to nil.
type ArticleRequest struct {
	Identifier      *string   `json:"identifier"`
	PublicationDate *string   `json:"publication_date"`
	Title           *string   `json:"title"`
	Abstract        *string   `json:"abstract"`
	Authors         *[]string `json:"authors"`
	Tags            *[]string `json:"tags"`
}

// ToInput converts the request into a domain input. Fields that cannot be
// decoded are reported in the returned map and left unset.
func (r *ArticleRequest) ToInput() (domain.ArticleInput, map[string]string) {
	var problems map[string]string

	in := domain.ArticleInput{
		Identifier: r.Identifier,
		Title:      r.Title,
		Abstract:   r.Abstract,
		Authors:    r.Authors,
		Tags:       r.Tags,
	}

	if r.PublicationDate != nil {
		d, err := time.Parse(domain.DateLayout, strings.TrimSpace(*r.PublicationDate))
		if err != nil {
			problems = map[string]string{"publication_date": MsgDateFormat}
		} else {
			in.PublicationDate = &d
		}
	}

	return in, problems
}

// ArticleResponse is the read shape of an article.
type ArticleResponse struct {
	ID              int64      `json:"id"`
	Identifier      string     `json:"identifier"`
	PublicationDate string     `json:"publication_date"`
	Title           string     `json:"title"`
	Abstract        string     `json:"abstract"`
	AuthorsDetail   []NamedRef `json:"authors_detail"`
	TagsDetail      []NamedRef `json:"tags_detail"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewArticleResponse converts a domain article.
func NewArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:              a.ID,
		Identifier:      a.Identifier,
		PublicationDate: a.PublicationDate.Format(domain.DateLayout),
		Title:           a.Title,
		Abstract:        a.Abstract,
		AuthorsDetail:   MapSlice(a.Authors, AuthorResponse),
		TagsDetail:      MapSlice(a.Tags, TagResponse),
		CreatedBy:       a.CreatedBy,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ArticleQuery holds the raw filter parameters shared by list and export.
type ArticleQuery struct {
	Year     string `form:"year"`
	Month    string `form:"month"`
	Author   string `form:"author"`
	Tag      string `form:"tag"`
	Keyword  string `form:"keyword"`
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
	IDs      string `form:"ids"`
}

// Filter converts the query into a domain filter. Non-integer year or
// month values are reported per field.
func (q *ArticleQuery) Filter() (domain.ArticleFilter, error) {
	problems := make(map[string]string)

	f := domain.ArticleFilter{
		Year:        parseIntParam(problems, "year", q.Year),
		Month:       parseIntParam(problems, "month", q.Month),
		Authors:     domain.SplitList(q.Author),
		Tags:        domain.SplitList(q.Tag),
		Keyword:     strings.TrimSpace(q.Keyword),
		Search:      domain.SearchTerms(q.Search),
		Identifiers: domain.SplitList(q.IDs),
		Ordering:    domain.ParseOrdering(q.Ordering, domain.ArticleOrderingFields),
	}

	if err := domain.NewFieldsValidationError(problems); err != nil {
		return domain.ArticleFilter{}, err
	}

	return f, nil
}

func parseIntParam(problems map[string]string, name, raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		problems[name] = MsgNotANumber
		return nil
	}

	return &n
}
