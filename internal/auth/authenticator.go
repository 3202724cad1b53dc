package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajiang05/vibeCheck/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims issued by the identity provider.
type Claims struct {
	Email     string `json:"email"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionStore remembers signed-out sessions.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type Authenticator struct {
	secret   []byte
	sessions SessionStore
	now      func() time.Time
}

// NewAuthenticator verifies HS256 tokens signed with secret. sessions may be
// nil, in which case sign-out cannot outlive the client's cookie.
func NewAuthenticator(secret string, sessions SessionStore) *Authenticator {
	return &Authenticator{
		secret:   []byte(secret),
		sessions: sessions,
		now:      time.Now,
	}
}

// Authenticate validates token and returns the context of its user.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (Context, error) {
	if token == "" || len(a.secret) == 0 {
		return Anonymous(), entity.ErrUnauthorized
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return Anonymous(), fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return Anonymous(), fmt.Errorf("%w: token has no subject", entity.ErrUnauthorized)
	}

	sessionID := claims.SessionID
	if sessionID == "" {
		sessionID = claims.ID
	}

	if a.sessions != nil && sessionID != "" {
		revoked, err := a.sessions.IsRevoked(ctx, sessionID)
		if err != nil {
			return Anonymous(), fmt.Errorf("failed to check session %s: %w", sessionID, err)
		}
		if revoked {
			return Anonymous(), entity.ErrSessionRevoked
		}
	}

	user := &entity.User{
		ID:        claims.Subject,
		Email:     claims.Email,
		SessionID: sessionID,
	}
	expiresAt := claims.ExpiresAt.Time

	return NewContext(user, func(ctx context.Context) error {
		return a.revoke(ctx, sessionID, expiresAt)
	}), nil
}

func (a *Authenticator) revoke(ctx context.Context, sessionID string, expiresAt time.Time) error {
	if a.sessions == nil || sessionID == "" {
		return nil
	}
	if err := a.sessions.Revoke(ctx, sessionID, expiresAt.Sub(a.now())); err != nil {
		return fmt.Errorf("failed to revoke session %s: %w", sessionID, err)
	}
	return nil
}

// IsAuthError reports whether err means "no valid session" rather than an
// infrastructure failure.
func IsAuthError(err error) bool {
	return errors.Is(err, entity.ErrUnauthorized) || errors.Is(err, entity.ErrSessionRevoked)
}
