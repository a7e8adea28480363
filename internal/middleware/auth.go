package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
)

const sessionKey = "session"

type sessionRestorer interface {
	Restore(ctx context.Context, token string) (*session.Session, error)
}

type adminGate interface {
	RequireAdmin(ctx context.Context, sessionID string, who *domain.Identity) error
}

// Session restores the visitor's session from the cookie or a bearer token.
// Requests without a valid session continue anonymously.
func Session(sessions sessionRestorer, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		sess, err := sessions.Restore(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrSessionEnded) {
				log.LogAttrs(c.Request.Context(), logger.WarnLevel, "session restore failed",
					logger.String("error", err.Error()),
				)
			}
			ClearSessionCookie(c, cookieName)
			c.Next()
			return
		}

		SetSession(c, sess)
		c.Next()
	}
}

// RequireAdmin stops the request unless the signed-in visitor is an admin.
func RequireAdmin(authz adminGate) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			abortWith(c, http.StatusUnauthorized, domain.ErrNotSignedIn)
			return
		}

		if err := authz.RequireAdmin(c.Request.Context(), sess.ID, &sess.Identity); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotSignedIn):
				abortWith(c, http.StatusUnauthorized, err)
			case errors.Is(err, domain.ErrForbidden):
				abortWith(c, http.StatusForbidden, err)
			default:
				abortWith(c, http.StatusInternalServerError, err)
			}
			return
		}

		c.Next()
	}
}

func abortWith(c *ginext.Context, status int, err error) {
	c.Set("error", err.Error())
	c.AbortWithStatusJSON(status, ginext.H{"error": domain.UserMessage(err)})
}

// SessionToken reads the session token from the cookie, falling back to an
// Authorization: Bearer header.
func SessionToken(c *ginext.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	const prefix = "Bearer "
	auth := c.GetHeader("Authorization")
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

func SetSession(c *ginext.Context, sess *session.Session) {
	c.Set(sessionKey, sess)
}

// CurrentSession is nil for anonymous visitors.
func CurrentSession(c *ginext.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// CurrentIdentity is nil for anonymous visitors.
func CurrentIdentity(c *ginext.Context) *domain.Identity {
	sess := CurrentSession(c)
	if sess == nil {
		return nil
	}
	return &sess.Identity
}

func ClearSessionCookie(c *ginext.Context, cookieName string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
