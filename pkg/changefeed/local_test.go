package changefeed

import (
	"context"
	"testing"
	"time"
)

func TestLocal(t *testing.T) {
	t.Run("Publish reaches every subscriber", func(t *testing.T) {
		f := NewLocal()
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a, _ := f.Subscribe(ctx)
		b, _ := f.Subscribe(ctx)

		if err := f.Publish(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expectSignal(t, a)
		expectSignal(t, b)
	})

	t.Run("Bursts coalesce", func(t *testing.T) {
		f := NewLocal()
		defer f.Close()

		ch, _ := f.Subscribe(context.Background())
		for i := 0; i < 5; i++ {
			f.Publish(context.Background())
		}
		expectSignal(t, ch)
		select {
		case <-ch:
			t.Error("expected a single coalesced signal")
		case <-time.After(20 * time.Millisecond):
		}
	})

	t.Run("Cancelled subscription closes", func(t *testing.T) {
		f := NewLocal()
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		ch, _ := f.Subscribe(ctx)
		cancel()

		select {
		case _, ok := <-ch:
			if ok {
				t.Error("expected closed channel")
			}
		case <-time.After(time.Second):
			t.Fatal("channel not closed after cancel")
		}
	})

	t.Run("Closed feed rejects calls", func(t *testing.T) {
		f := NewLocal()
		f.Close()
		if err := f.Publish(context.Background()); err != ErrClosed {
			t.Errorf("expected ErrClosed, got %v", err)
		}
		if _, err := f.Subscribe(context.Background()); err != ErrClosed {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	})
}

func expectSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for signal")
	}
}
