// Package basic authenticates admin users with HTTP basic authentication.
package basic

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/comptoir/internal/authn"
	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
)

const DefaultRealm = "admin"

type UserProvider interface {
	Authenticate(ctx context.Context, username, password string) (authn.User, error)
}

type UserProviderFunc func(ctx context.Context, username, password string) (authn.User, error)

func (fn UserProviderFunc) Authenticate(ctx context.Context, username, password string) (authn.User, error) {
	return fn(ctx, username, password)
}

type Options struct {
	Realm string
}

type OptionFunc func(opts *Options)

func WithRealm(realm string) OptionFunc {
	return func(opts *Options) {
		opts.Realm = realm
	}
}

// NewAuthenticator returns an authenticator challenging the client until it
// sends credentials accepted by userProvider.
func NewAuthenticator(userProvider UserProvider, funcs ...OptionFunc) authn.Authenticator {
	opts := &Options{Realm: DefaultRealm}
	for _, fn := range funcs {
		fn(opts)
	}

	challenge := fmt.Sprintf(`Basic realm=%q, charset="UTF-8"`, opts.Realm)

	return authn.AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (authn.User, error) {
		ctx := r.Context()

		if username, password, ok := r.BasicAuth(); ok {
			user, err := userProvider.Authenticate(ctx, username, password)
			if err != nil {
				slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)), slog.String("username", username))
			}

			if user != nil {
				return user, nil
			}

			slog.WarnContext(ctx, "invalid admin credentials", slog.String("username", username))
		}

		w.Header().Set("WWW-Authenticate", challenge)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)

		return nil, errors.WithStack(authn.ErrCancel)
	})
}
