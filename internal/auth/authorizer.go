package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Authorizer obtains a brand-new credential through an interactive
// authorization flow.
type Authorizer interface {
	Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)
}

// ManualCode prints an authorization URL and blocks until the operator
// enters the authorization code retrieved on another device or session.
type ManualCode struct {
	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
}

// Authorize implements the manual-code flow.
func (m ManualCode) Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOffline)
	fmt.Fprintf(m.out(), "Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Fscan(m.in(), &code); err != nil {
		return nil, fmt.Errorf("reading authorization code: %w", err)
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return tok, nil
}

func (m ManualCode) in() io.Reader {
	if m.In != nil {
		return m.In
	}
	return os.Stdin
}

func (m ManualCode) out() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// LocalCallback serves a short-lived loopback listener to receive the
// authorization code after the browser redirect.
type LocalCallback struct {
	Out io.Writer // defaults to os.Stdout

	// Addr is the listen address, defaulting to an ephemeral loopback port.
	Addr string

	// AuthURLFunc, when set, is called with the authorization URL in
	// addition to printing it. Lets callers open a browser themselves.
	AuthURLFunc func(authURL string)
}

type callbackResult struct {
	code string
	err  error
}

// Authorize implements the local-callback flow. It blocks until the
// redirect delivers an authorization code, the user refuses, or ctx is
// cancelled.
func (l LocalCallback) Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	addr := l.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting callback listener: %w", err)
	}
	defer lis.Close()

	state := uuid.NewString()
	results := make(chan callbackResult, 1)

	// The oauth2 config is copied so the redirect URL of this run's
	// listener never leaks into the caller's config.
	bound := *cfg
	bound.RedirectURL = fmt.Sprintf("http://%s/", lis.Addr())

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var res callbackResult
		switch {
		case q.Get("error") != "":
			res.err = fmt.Errorf("authorization refused: %s", q.Get("error"))
			http.Error(w, "Authorization refused. You can close this tab.", http.StatusForbidden)
		case q.Get("state") != state:
			res.err = errors.New("authorization state mismatch")
			http.Error(w, "State mismatch.", http.StatusBadRequest)
		case q.Get("code") == "":
			res.err = errors.New("callback carried no authorization code")
			http.Error(w, "Missing authorization code.", http.StatusBadRequest)
		default:
			res.code = q.Get("code")
			fmt.Fprintln(w, "Authorization received. You can close this tab.")
		}
		select {
		case results <- res:
		default: // a result has already been delivered
		}
	})}
	go srv.Serve(lis)
	defer srv.Close()

	authURL := bound.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintf(l.out(), "Open the following link in your browser to authorize:\n%v\n", authURL)
	if l.AuthURLFunc != nil {
		l.AuthURLFunc(authURL)
	}

	var res callbackResult
	select {
	case res = <-results:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.err != nil {
		return nil, res.err
	}

	tok, err := bound.Exchange(ctx, res.code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	return tok, nil
}

func (l LocalCallback) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}
