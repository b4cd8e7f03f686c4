package authn

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNoUser = errors.New("no user in context")

type contextKey struct{}

// ContextUser returns the user authenticated for the request, or ErrNoUser.
func ContextUser(ctx context.Context) (User, error) {
	if user, ok := ctx.Value(contextKey{}).(User); ok {
		return user, nil
	}

	return nil, errors.WithStack(ErrNoUser)
}

func WithContextUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}
