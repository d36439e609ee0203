package dto

import (
	"time"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// CommentRequest is the body of comment create and update requests.
type CommentRequest struct {
	ArticleID *int64  `json:"article_id"`
	Body      *string `json:"body"`
}

// ToInput converts the request into a domain input.
func (r *CommentRequest) ToInput() domain.CommentInput {
	return domain.CommentInput{ArticleID: r.ArticleID, Body: r.Body}
}

// CommentResponse is the read shape of a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentResponse converts a domain comment.
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CommentQuery holds the comment list parameters.
type CommentQuery struct {
	Ordering string `form:"ordering"`
}

// SortFields returns the parsed sort fields.
func (q *CommentQuery) SortFields() []domain.SortField {
	return domain.ParseOrdering(q.Ordering, domain.CommentOrderingFields)
}
