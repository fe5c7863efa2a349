package changefeed

import "context"

// Feed carries "something changed" signals between writers and watchers.
// Signals have no payload; watchers re-read the store when one arrives.
// Implementations are safe for concurrent use.
type Feed interface {
	// Publish announces a change to every current subscriber.
	Publish(ctx context.Context) error

	// Subscribe returns a channel that receives a signal per change.
	// Signals coalesce: a slow subscriber sees at least one signal after
	// the last change, not one per change. The channel closes when ctx is done.
	Subscribe(ctx context.Context) (<-chan struct{}, error)

	Close() error
}
