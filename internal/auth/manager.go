// Package auth resolves a valid YouTube API credential: it loads a cached
// token, refreshes it when possible, or drives one of two interactive
// authorization flows, and persists the result for the next run.
package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Error reports a failed interactive authorization. The CLI maps it to
// remediation text and a non-zero exit.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "authorization failed: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// RefreshFunc exchanges an expired token carrying a refresh token for a
// fresh one.
type RefreshFunc func(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error)

// Manager owns the credential for the duration of one run.
type Manager struct {
	cfg        *oauth2.Config
	store      Store
	authorizer Authorizer
	refresh    RefreshFunc
	out        io.Writer
}

// Option configures a Manager.
type Option func(*Manager)

// WithOutput sets the writer for diagnostic text.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) { m.out = w }
}

// WithRefresh overrides how an expired token is refreshed.
func WithRefresh(fn RefreshFunc) Option {
	return func(m *Manager) { m.refresh = fn }
}

// NewManager creates a Manager bound to the given oauth2 config, token
// store and interactive authorizer.
func NewManager(cfg *oauth2.Config, store Store, authorizer Authorizer, opts ...Option) *Manager {
	m := &Manager{
		cfg:        cfg,
		store:      store,
		authorizer: authorizer,
		out:        os.Stdout,
	}
	m.refresh = func(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
		return m.cfg.TokenSource(ctx, tok).Token()
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token resolves a valid credential.
//
// A cached valid token is returned as-is without touching the network.
// An expired token with a refresh token is refreshed in place; refresh
// failure propagates rather than silently falling back to a re-login, so a
// revoked token surfaces as the error it is. Anything else (no cache,
// corrupt cache, no refresh token) runs the interactive authorizer. Any
// newly obtained token is persisted before it is returned.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := m.store.Load()
	if err != nil {
		// A missing or unreadable cache means starting from scratch.
		tok = nil
	}

	if tok != nil && tok.Valid() {
		return tok, nil
	}

	if tok != nil && tok.RefreshToken != "" {
		tok, err = m.refresh(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("refreshing token: %w", err)
		}
	} else {
		tok, err = m.authorizer.Authorize(ctx, m.cfg)
		if err != nil {
			return nil, &Error{Err: err}
		}
	}

	fmt.Fprintln(m.out, "Saving credential for future runs")
	if err := m.store.Save(tok); err != nil {
		return nil, fmt.Errorf("caching token: %w", err)
	}
	return tok, nil
}

// Client returns an HTTP client bound to a valid credential.
func (m *Manager) Client(ctx context.Context) (*http.Client, error) {
	tok, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	return m.cfg.Client(ctx, tok), nil
}

// Service returns an authenticated YouTube service.
func (m *Manager) Service(ctx context.Context) (*youtube.Service, error) {
	client, err := m.Client(ctx)
	if err != nil {
		return nil, err
	}
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("creating YouTube service: %w", err)
	}
	return svc, nil
}
