package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/atln0/GigBooker/internal/auth"
	"github.com/atln0/GigBooker/internal/domain"
)

const sessionKey = "session"

type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Session parses the bearer token and attaches the live session to the
// request context. Requests without a token pass through; role-gated
// routes reject them in RequireRole.
func Session(tokens *auth.Manager, resolver SessionResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "malformed authorization header"},
			)
			return
		}

		sessionID, _, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": auth.ErrInvalidToken.Error()},
			)
			return
		}

		// A logged-out session invalidates its token immediately.
		session, err := resolver.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": auth.ErrInvalidToken.Error()},
			)
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireRole gates a view to the listed roles. This is advisory
// routing in service of the UI, not a trust boundary.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": domain.ErrForbidden.Error()},
		)
	}
}

func SessionFrom(c *ginext.Context) (*domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*domain.Session)
	return session, ok
}
