package memdb

import (
	"context"
	"sync"
)

// Exclusive serializes compound operations (mutate a collection, then append
// an audit entry) across the whole store.
type Exclusive struct {
	mu sync.Mutex
}

// Do runs fn while holding the store-wide lock. A cancelled context is
// reported before fn runs. Panics release the lock and are rethrown.
//
// Typical use:
//
//	err := x.Do(ctx, func(ctx context.Context) error {
//	    // read, mutate, append audit
//	    return nil
//	})
func (x *Exclusive) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	return fn(ctx)
}
