// Package auth turns identity provider access tokens into the read-only
// authentication context handed to handlers and services.
package auth

import (
	"context"

	"github.com/ajiang05/vibeCheck/internal/entity"
)

// Context is the authentication state of one request: the current user
// (nil when signed out), whether the session is still being resolved, and
// the capability to sign out. Components only read it.
type Context struct {
	User    *entity.User
	Loading bool

	signOut func(ctx context.Context) error
}

func Anonymous() Context {
	return Context{}
}

// Pending is the context of a request whose session is not resolved yet.
func Pending() Context {
	return Context{Loading: true}
}

func NewContext(user *entity.User, signOut func(ctx context.Context) error) Context {
	return Context{User: user, signOut: signOut}
}

func (c Context) Authenticated() bool {
	return c.User != nil
}

// SignOut ends the session. It is a no-op for anonymous contexts.
func (c Context) SignOut(ctx context.Context) error {
	if c.signOut == nil {
		return nil
	}
	return c.signOut(ctx)
}
