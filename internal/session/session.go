// Package session manages the dashboard session credential: the bearer
// token, the user-type discriminator, the locale preference and the
// aggregated auth-state blob. The token is opaque; nothing in the SDK
// inspects it.
package session

import (
	"context"
	"encoding/json"
	"errors"
)

// Session is the persisted client-side state.
type Session struct {
	Token     string          `json:"token,omitempty"`
	UserType  string          `json:"user_type,omitempty"`
	Locale    string          `json:"locale,omitempty"`
	AuthState json.RawMessage `json:"auth_state,omitempty"`
}

// ErrNotFound is returned by Load when no session has been saved.
var ErrNotFound = errors.New("session: not found")

// Store persists the session credential. Load returns a zero Session
// (not ErrNotFound) when a store exists but holds no credential.
//
// Clear removes the token, user type and auth-state blob atomically. The
// locale survives a clear: it is a UI preference, not a credential.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Token is a convenience that loads the store and returns the bearer
// token, empty when absent or on load failure.
func Token(ctx context.Context, store Store) string {
	if store == nil {
		return ""
	}
	s, err := store.Load(ctx)
	if err != nil {
		return ""
	}
	return s.Token
}

// Locale loads the stored locale preference, empty when absent.
func Locale(ctx context.Context, store Store) string {
	if store == nil {
		return ""
	}
	s, err := store.Load(ctx)
	if err != nil {
		return ""
	}
	return s.Locale
}

// SetToken saves a new token in place, preserving the other fields.
func SetToken(ctx context.Context, store Store, token string) error {
	s, err := store.Load(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	s.Token = token
	return store.Save(ctx, s)
}

// SetLocale saves a new locale preference in place.
func SetLocale(ctx context.Context, store Store, locale string) error {
	s, err := store.Load(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	s.Locale = locale
	return store.Save(ctx, s)
}

// cleared returns s with credentials removed but the locale kept.
func cleared(s Session) Session {
	return Session{Locale: s.Locale}
}
