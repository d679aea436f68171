package setup

import (
	"context"
	"sync"

	"github.com/bornholm/scribe/internal/config"
	"github.com/pkg/errors"
)

type result[T any] struct {
	value T
	err   error
}

// createFromConfigOnce memoizes the given factory per configuration so
// that shared resources (database handle, session codec) are built once.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		mutex   sync.Mutex
		results = make(map[*config.Config]*result[T])
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if r, exists := results[conf]; exists {
			return r.value, r.err
		}

		value, err := factory(ctx, conf)
		if err != nil {
			err = errors.WithStack(err)
		}

		results[conf] = &result[T]{value, err}

		return value, err
	}
}
