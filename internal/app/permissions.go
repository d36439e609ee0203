package app

import (
	"github.com/jsamuelsen/articles-service/internal/domain"
)

// Messages returned to non-owners.
const (
	msgUpdateOwnArticle = "You can only update your own articles."
	msgDeleteOwnArticle = "You can only delete your own articles."
	msgUpdateOwnComment = "You can only update your own comments."
	msgDeleteOwnComment = "You can only delete your own comments."
)

// requireIdentity rejects anonymous callers before any lookup.
func requireIdentity(actor domain.Identity, operation string) error {
	if actor.IsAnonymous() {
		return domain.NewUnauthorizedError(operation)
	}

	return nil
}

func authorizeArticle(actor domain.Identity, a *domain.Article, operation, reason string) error {
	if !a.OwnedBy(actor) {
		return domain.NewForbiddenError(operation, reason)
	}

	return nil
}

func authorizeComment(actor domain.Identity, c *domain.Comment, operation, reason string) error {
	if !c.OwnedBy(actor) {
		return domain.NewForbiddenError(operation, reason)
	}

	return nil
}
