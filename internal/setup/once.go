package setup

import (
	"context"
	"sync"

	"github.com/bornholm/comptoir/internal/config"
	"github.com/pkg/errors"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes fn per configuration, so that components
// shared by several handlers are built only once.
func createFromConfigOnce[T any](fn fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		mutex   sync.Mutex
		results = map[*config.Config]T{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if value, exists := results[conf]; exists {
			return value, nil
		}

		value, err := fn(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		results[conf] = value

		return value, nil
	}
}
