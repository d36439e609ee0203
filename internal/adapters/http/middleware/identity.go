package middleware

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/domain"
	"github.com/jsamuelsen/articles-service/internal/platform/auth"
	"github.com/jsamuelsen/articles-service/internal/platform/config"
	"github.com/jsamuelsen/articles-service/internal/platform/logging"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
)

const (
	// ContextKeyIdentity is the gin context key for the acting identity.
	ContextKeyIdentity = "identity"

	defaultSubjectHeader = "X-User-ID"
	bearerPrefix         = "bearer "
)

// Identify returns middleware that establishes the acting identity.
//
// With a JWT secret configured the identity is the subject of a verified
// HS256 bearer token; a request without a token is anonymous and a request
// with a bad token is rejected with 401. Without a secret the identity is
// read from the gateway subject header.
func Identify(cfg *config.AuthConfig) gin.HandlerFunc {
	header := defaultSubjectHeader

	var tokens *auth.Tokens

	if cfg != nil {
		if cfg.SubjectHeader != "" {
			header = cfg.SubjectHeader
		}

		if cfg.TokensEnabled() {
			tokens = auth.NewTokens(auth.Config{
				Secret:   []byte(cfg.JWTSecret),
				Issuer:   cfg.Issuer,
				Audience: cfg.Audience,
				Leeway:   cfg.Leeway,
			})
		}
	}

	return func(c *gin.Context) {
		var username string

		if tokens != nil {
			raw, present := bearerToken(c)
			if present {
				sub, err := tokens.Verify(raw)
				if err != nil {
					logging.FromContext(c.Request.Context()).Debug("bearer token rejected", "error", err)
					dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "Given token not valid.")

					return
				}

				username = sub
			}
		} else {
			username = strings.TrimSpace(c.GetHeader(header))
		}

		if utf8.RuneCountInString(username) > domain.MaxUsernameLength {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "Identity is too long.")
			return
		}

		id := domain.Identity{Username: username}
		c.Set(ContextKeyIdentity, id)

		if !id.IsAnonymous() {
			c.Request = c.Request.WithContext(logging.WithUser(c.Request.Context(), id.Username))
			telemetry.AnnotateUser(c.Request.Context(), id.Username)
		}

		c.Next()
	}
}

// GetIdentity returns the acting identity. It is anonymous when Identify
// did not run or found no credentials.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(ContextKeyIdentity); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}

	return domain.Identity{}
}

// RequireAuth returns middleware that rejects anonymous callers with 401
// before any handler runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIdentity(c).IsAnonymous() {
			dto.AbortWithError(c, domain.NewUnauthorizedError(c.Request.Method+" "+c.FullPath()))
			return
		}

		c.Next()
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", false
	}

	if len(h) < len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", true
	}

	return strings.TrimSpace(h[len(bearerPrefix):]), true
}
