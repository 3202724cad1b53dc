package middleware

import (
	"context"
	"strings"

	"github.com/ajiang05/vibeCheck/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionKey = "auth_session"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Context, error)
}

// Auth resolves the access token of the request into an auth.Context. It
// never rejects a request: handlers decide what an anonymous caller may see.
// A nil authenticator makes every request anonymous.
func Auth(authenticator Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.Anonymous()

		if token := accessToken(c, cookieName); token != "" && authenticator != nil {
			resolved, err := authenticator.Authenticate(c.Request.Context(), token)
			switch {
			case err == nil:
				session = resolved
			case auth.IsAuthError(err):
				logrus.WithField("request_id", GetRequestID(c)).WithError(err).Debug("Rejected access token")
			default:
				logrus.WithField("request_id", GetRequestID(c)).WithError(err).Warn("Failed to resolve session")
			}
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// Session returns the auth.Context set by Auth, or an anonymous one.
func Session(c *gin.Context) auth.Context {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(auth.Context); ok {
			return session
		}
	}
	return auth.Anonymous()
}

func accessToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
