package util

import (
	"context"
)

// Sel runs f in its own goroutine and returns its error,
// or the context error if ctx is done first.
func Sel(ctx context.Context, f func() error) error {
	var d = make(chan error, 1)
	go func() {
		d <- f()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-d:
		return err
	}
}

// All runs every f concurrently and waits for all of them. It returns
// the first non nil error received, or the context error if ctx is done
// before they all return. Functions still running when ctx is done are
// not interrupted.
func All(ctx context.Context, fs ...func() error) error {
	return Sel(ctx, func() error {
		var d = make(chan error, len(fs))
		for _, f := range fs {
			f := f
			go func() {
				d <- f()
			}()
		}

		var first error
		for range fs {
			if err := <-d; err != nil && first == nil {
				first = err
			}
		}
		return first
	})
}
