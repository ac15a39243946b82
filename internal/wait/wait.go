// Package wait polls a condition until it holds or a timeout elapses.
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ritvik-Gupta/scraprs/internal/page"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultInterval = 500 * time.Millisecond
)

var errNotReady = errors.New("condition not met")

type Options struct {
	Timeout  time.Duration
	Interval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	return o
}

// Condition reports whether the awaited state has been reached. A non-nil
// error stops polling immediately.
type Condition func(ctx context.Context) (bool, error)

// Until polls cond at a fixed interval. It returns an error wrapping
// scrapeerr.ErrTimeout when the condition does not hold within opts.Timeout.
func Until(ctx context.Context, opts Options, what string, cond Condition) error {
	opts = opts.withDefaults()

	waitCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	op := func() error {
		ok, err := cond(waitCtx)
		if err != nil {
			if waitCtx.Err() != nil {
				return waitCtx.Err()
			}
			return backoff.Permanent(err)
		}
		if !ok {
			return errNotReady
		}
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(opts.Interval), waitCtx)
	err := backoff.Retry(op, b)
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if waitCtx.Err() != nil || errors.Is(err, errNotReady) {
		return fmt.Errorf("%w: waiting for %s after %s", scrapeerr.ErrTimeout, what, opts.Timeout)
	}
	return fmt.Errorf("waiting for %s: %w", what, err)
}

// ForElement waits until parent has a descendant matching selector and
// returns it.
func ForElement(ctx context.Context, opts Options, parent page.Element, selector string) (page.Element, error) {
	var found page.Element
	err := Until(ctx, opts, selector, func(ctx context.Context) (bool, error) {
		el, ok, err := parent.Query(ctx, selector)
		if err != nil {
			return false, err
		}
		found = el
		return ok, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
