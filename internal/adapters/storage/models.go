package storage

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// Date is a calendar date persisted in a DATE column as YYYY-MM-DD.
type Date time.Time

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// GormDataType implements gorm's schema.GormDataTypeInterface.
func (Date) GormDataType() string {
	return "date"
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d).Format(domain.DateLayout), nil
}

// Scan implements sql.Scanner. Drivers hand back either a time.Time or the
// stored text depending on column affinity.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d = Date{}
	default:
		return fmt.Errorf("scanning date from %T", src)
	}

	return nil
}

func (d *Date) parse(s string) error {
	if len(s) > len(domain.DateLayout) {
		s = s[:len(domain.DateLayout)]
	}

	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("scanning date: %w", err)
	}

	*d = Date(t)

	return nil
}

type userModel struct {
	ID        int64     `gorm:"primaryKey"`
	Username  string    `gorm:"size:150;not null;uniqueIndex"`
	CreatedAt time.Time
}

func (userModel) TableName() string { return "users" }

type authorModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:200;not null;uniqueIndex"`
}

func (authorModel) TableName() string { return "authors" }

type tagModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

func (tagModel) TableName() string { return "tags" }

type articleModel struct {
	ID              int64     `gorm:"primaryKey"`
	Identifier      string    `gorm:"size:64;not null;uniqueIndex"`
	PublicationDate Date      `gorm:"not null;index"`
	Title           string    `gorm:"size:300;not null"`
	Abstract        string    `gorm:"type:text;not null"`
	CreatedByID     int64     `gorm:"not null;index"`
	CreatedBy       userModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Authorships []authorshipModel `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	ArticleTags []articleTagModel `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Comments    []commentModel    `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

func (articleModel) TableName() string { return "articles" }

// authorshipModel links an article to an author; its id records link order.
type authorshipModel struct {
	ID        int64       `gorm:"primaryKey"`
	ArticleID int64       `gorm:"not null;uniqueIndex:idx_authorships_pair,priority:1"`
	AuthorID  int64       `gorm:"not null;uniqueIndex:idx_authorships_pair,priority:2;index"`
	Author    authorModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (authorshipModel) TableName() string { return "authorships" }

type articleTagModel struct {
	ID        int64    `gorm:"primaryKey"`
	ArticleID int64    `gorm:"not null;uniqueIndex:idx_article_tags_pair,priority:1"`
	TagID     int64    `gorm:"not null;uniqueIndex:idx_article_tags_pair,priority:2;index"`
	Tag       tagModel `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (articleTagModel) TableName() string { return "article_tags" }

type commentModel struct {
	ID        int64     `gorm:"primaryKey"`
	ArticleID int64     `gorm:"not null;index"`
	AuthorID  int64     `gorm:"not null;index"`
	Author    userModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (commentModel) TableName() string { return "comments" }

func (m *articleModel) toDomain() domain.Article {
	a := domain.Article{
		ID:              m.ID,
		Identifier:      m.Identifier,
		PublicationDate: m.PublicationDate.Time(),
		Title:           m.Title,
		Abstract:        m.Abstract,
		CreatedBy:       m.CreatedBy.Username,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Authors:         make([]domain.Author, 0, len(m.Authorships)),
		Tags:            make([]domain.Tag, 0, len(m.ArticleTags)),
	}

	for _, link := range m.Authorships {
		a.Authors = append(a.Authors, domain.Author{ID: link.Author.ID, Name: link.Author.Name})
	}

	for _, link := range m.ArticleTags {
		a.Tags = append(a.Tags, domain.Tag{ID: link.Tag.ID, Name: link.Tag.Name})
	}

	return a
}

func (m *commentModel) toDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		Author:    m.Author.Username,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
