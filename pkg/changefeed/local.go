package changefeed

import (
	"context"
	"sync"
)

// Local is an in-process Feed.
type Local struct {
	mu     sync.Mutex
	subs   map[chan struct{}]struct{}
	closed bool
}

// NewLocal creates an in-process Feed.
func NewLocal() *Local {
	return &Local{subs: make(map[chan struct{}]struct{})}
}

func (f *Local) Publish(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	for ch := range f.subs {
		notify(ch)
	}
	return nil
}

func (f *Local) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrClosed
	}

	ch := make(chan struct{}, 1)
	f.subs[ch] = struct{}{}

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.subs[ch]; ok {
			delete(f.subs, ch)
			close(ch)
		}
	}()

	return ch, nil
}

func (f *Local) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
	return nil
}

// notify does a non-blocking send on a 1-buffered channel, which coalesces bursts.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
