package domain

import (
	"fmt"
	"strings"
)

// Field messages reported by validation.
const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
)

// MsgMaxLength reports a string longer than limit.
func MsgMaxLength(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}

// ValidateArticleInput checks the writable article fields and returns every
// problem keyed by wire field name. A partial input only checks the fields
// it carries.
func ValidateArticleInput(in ArticleInput, partial bool) map[string]string {
	errs := make(map[string]string)

	checkText(errs, "identifier", in.Identifier, MaxIdentifierLength, partial, false)
	checkText(errs, "title", in.Title, MaxTitleLength, partial, false)
	checkText(errs, "abstract", in.Abstract, 0, true, true)

	if in.PublicationDate == nil && !partial {
		errs["publication_date"] = MsgRequired
	}

	checkNames(errs, "authors", in.Authors, MaxAuthorNameLength)
	checkNames(errs, "tags", in.Tags, MaxTagNameLength)

	return errs
}

// ValidateCommentInput checks the writable comment fields.
func ValidateCommentInput(in CommentInput, partial bool) map[string]string {
	errs := make(map[string]string)

	if in.ArticleID == nil && !partial {
		errs["article_id"] = MsgRequired
	}

	checkText(errs, "body", in.Body, 0, partial, false)

	return errs
}

func checkText(errs map[string]string, field string, v *string, limit int, optional, allowBlank bool) {
	switch {
	case v == nil:
		if !optional {
			errs[field] = MsgRequired
		}
	case !allowBlank && strings.TrimSpace(*v) == "":
		errs[field] = MsgBlank
	case limit > 0 && len([]rune(*v)) > limit:
		errs[field] = MsgMaxLength(limit)
	}
}

func checkNames(errs map[string]string, field string, names *[]string, limit int) {
	if names == nil {
		return
	}

	for _, n := range *names {
		n = strings.TrimSpace(n)
		if n == "" {
			errs[field] = MsgBlank
			return
		}

		if len([]rune(n)) > limit {
			errs[field] = MsgMaxLength(limit)
			return
		}
	}
}
