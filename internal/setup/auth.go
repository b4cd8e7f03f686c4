package setup

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/bornholm/comptoir/internal/authn"
	"github.com/bornholm/comptoir/internal/authn/basic"
	"github.com/bornholm/comptoir/internal/config"
	"github.com/pkg/errors"
)

func NewUserProviderFromConfig(ctx context.Context, conf *config.Config) (*basic.StaticUsers, error) {
	credentials := make([]basic.Credentials, 0, len(conf.Auth.Users))

	for _, u := range conf.Auth.Users {
		if u.PasswordHash == "" {
			slog.DebugContext(ctx, "ignoring user without password hash", slog.String("username", string(u.Username)))
			continue
		}

		hash, err := base64.StdEncoding.DecodeString(string(u.PasswordHash))
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode password hash of user '%s'", u.Username)
		}

		credentials = append(credentials, basic.Credentials{
			Username:     string(u.Username),
			PasswordHash: hash,
		})
	}

	return basic.NewStaticUsers(credentials...), nil
}

// NewAuthMiddlewareFromConfig returns the authentication middleware
// protecting the admin pages.
func NewAuthMiddlewareFromConfig(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	users, err := NewUserProviderFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if users.Len() == 0 {
		slog.WarnContext(ctx, "no admin user configured, admin pages are not protected")

		return func(next http.Handler) http.Handler {
			return next
		}, nil
	}

	return authn.Chain(
		authn.WithAuthenticators(
			basic.NewAuthenticator(users),
		),
	), nil
}
