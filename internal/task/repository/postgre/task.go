package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "ai-todo/internal/task/repository"
)

// Upsert inserts the row or replaces every column of the row with the same id.
func (g *implGateway) Upsert(ctx context.Context, row repo.TaskRow) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("Upsert"), err)
		return repo.ErrFailedToUpsert
	}
	g.publish(ctx)
	return nil
}

// DeleteByID removes one row. Deleting a missing id is not an error.
func (g *implGateway) DeleteByID(ctx context.Context, id string) error {
	err := g.db.WithContext(ctx).Delete(&repo.TaskRow{}, "id = ?", id).Error
	if err != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("DeleteByID"), err)
		return repo.ErrFailedToDelete
	}
	g.publish(ctx)
	return nil
}

// DeleteCompleted removes every completed row in one statement.
func (g *implGateway) DeleteCompleted(ctx context.Context) error {
	res := g.db.WithContext(ctx).Where("is_completed = ?", true).Delete(&repo.TaskRow{})
	if res.Error != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("DeleteCompleted"), res.Error)
		return repo.ErrFailedToDelete
	}
	g.l.Debugf(ctx, "%s: removed %d rows", g.dsn("DeleteCompleted"), res.RowsAffected)
	g.publish(ctx)
	return nil
}

// GetByID returns (nil, nil) when not found.
func (g *implGateway) GetByID(ctx context.Context, id string) (*repo.TaskRow, error) {
	var row repo.TaskRow
	err := g.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("GetByID"), err)
		return nil, repo.ErrFailedToGet
	}
	return &row, nil
}

// List returns the rows of one view in that view's order.
func (g *implGateway) List(ctx context.Context, opt repo.ListOptions) ([]repo.TaskRow, error) {
	q, err := g.buildListQuery(g.db.WithContext(ctx), opt)
	if err != nil {
		return nil, err
	}

	rows := make([]repo.TaskRow, 0)
	if err := q.Find(&rows).Error; err != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return rows, nil
}

// Count returns the number of rows in a view.
func (g *implGateway) Count(ctx context.Context, opt repo.CountOptions) (int, error) {
	q, err := g.buildFilter(g.db.WithContext(ctx).Model(&repo.TaskRow{}), opt.View)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		g.l.Errorf(ctx, "%s: %v", g.dsn("Count"), err)
		return 0, repo.ErrFailedToCount
	}
	return int(n), nil
}

// publish announces a write. A failed announcement only delays watchers, so it is logged, not returned.
func (g *implGateway) publish(ctx context.Context) {
	if err := g.feed.Publish(ctx); err != nil {
		g.l.Warnf(ctx, "%s: %v", g.dsn("publish"), err)
	}
}
