package postgre

import (
	"context"

	repo "ai-todo/internal/task/repository"
)

// Watch streams full-collection snapshots. The subscription is taken before
// the first read so a write racing the initial snapshot still triggers a re-read.
func (g *implGateway) Watch(ctx context.Context) (<-chan []repo.TaskRow, error) {
	signals, err := g.feed.Subscribe(ctx)
	if err != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("Watch"), err)
		return nil, repo.ErrFailedToWatch
	}

	first, err := g.List(ctx, repo.ListOptions{View: repo.ViewAll})
	if err != nil {
		return nil, err
	}

	out := make(chan []repo.TaskRow, 1)
	out <- first

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				rows, err := g.List(ctx, repo.ListOptions{View: repo.ViewAll})
				if err != nil {
					g.l.Warnf(ctx, "%s: reload: %v", g.dsn("Watch"), err)
					continue
				}
				offerLatest(out, rows)
			}
		}
	}()

	return out, nil
}

// offerLatest replaces an unread snapshot with rows. Only the watch goroutine
// sends on out, so after draining the single buffer slot the send cannot block.
func offerLatest(out chan []repo.TaskRow, rows []repo.TaskRow) {
	select {
	case <-out:
	default:
	}
	out <- rows
}
