package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
)

// ErrCancel is returned by an authenticator which already answered the
// request, the chain stops without calling the next handler.
var ErrCancel = errors.New("cancel")

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (User, error)
}

type AuthenticateFunc func(w http.ResponseWriter, r *http.Request) (User, error)

func (fn AuthenticateFunc) Authenticate(w http.ResponseWriter, r *http.Request) (User, error) {
	return fn(w, r)
}

type OnAuthenticatedFunc func(r *http.Request, user User) (*http.Request, error)

type OnErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// Chain returns a middleware trying each authenticator in turn. The first
// one returning a user wins; when none does, the unauthorized handler
// answers.
func Chain(funcs ...MiddlewareOptionFunc) func(http.Handler) http.Handler {
	opts := NewMiddlewareOptions(funcs...)

	return func(next http.Handler) http.Handler {
		return &chain{opts: opts, next: next}
	}
}

type chain struct {
	opts *MiddlewareOptions
	next http.Handler
}

func (c *chain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := c.authenticate(w, r)
	if errors.Is(err, ErrCancel) {
		return
	}

	if err != nil {
		c.opts.OnError(w, r, err)
		return
	}

	if user == nil {
		c.opts.UnauthorizedHandler.ServeHTTP(w, r)
		return
	}

	ctx := WithContextUser(r.Context(), user)
	ctx = log.WithAttrs(ctx, slog.String("user", user.UserSubject()+"@"+user.UserProvider()))

	authenticated, err := c.opts.OnAuthenticated(r.WithContext(ctx), user)
	if err != nil {
		c.opts.OnError(w, r, err)
		return
	}

	c.next.ServeHTTP(w, authenticated)
}

func (c *chain) authenticate(w http.ResponseWriter, r *http.Request) (User, error) {
	for _, auth := range c.opts.Authenticators {
		user, err := auth.Authenticate(w, r)
		if errors.Is(err, ErrCancel) {
			return nil, err
		}

		if user != nil {
			return user, nil
		}
	}

	return nil, nil
}

type MiddlewareOptions struct {
	UnauthorizedHandler http.Handler
	Authenticators      []Authenticator
	OnAuthenticated     OnAuthenticatedFunc
	OnError             OnErrorFunc
}

type MiddlewareOptionFunc func(opts *MiddlewareOptions)

func NewMiddlewareOptions(funcs ...MiddlewareOptionFunc) *MiddlewareOptions {
	opts := &MiddlewareOptions{
		OnAuthenticated: func(r *http.Request, user User) (*http.Request, error) {
			return r, nil
		},
		UnauthorizedHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}),
		OnError: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.ErrorContext(r.Context(), "authentication error", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithAuthenticators(authenticators ...Authenticator) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.Authenticators = authenticators
	}
}

func WithUnauthorizedHandler(h http.Handler) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.UnauthorizedHandler = h
	}
}

func WithOnAuthenticated(fn OnAuthenticatedFunc) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.OnAuthenticated = fn
	}
}

func WithOnError(fn OnErrorFunc) MiddlewareOptionFunc {
	return func(opts *MiddlewareOptions) {
		opts.OnError = fn
	}
}
