package postgre

import (
	"gorm.io/gorm"

	repo "ai-todo/internal/task/repository"
)

// buildFilter applies the WHERE clause of a view.
func (g *implGateway) buildFilter(q *gorm.DB, v repo.View) (*gorm.DB, error) {
	switch v {
	case "", repo.ViewAll:
		return q, nil
	case repo.ViewIncomplete:
		return q.Where("is_completed = ?", false), nil
	case repo.ViewCompleted:
		return q.Where("is_completed = ?", true), nil
	default:
		return nil, repo.ErrUnknownView
	}
}

// buildListQuery applies the WHERE and ORDER BY clauses of a view.
func (g *implGateway) buildListQuery(q *gorm.DB, opt repo.ListOptions) (*gorm.DB, error) {
	q, err := g.buildFilter(q, opt.View)
	if err != nil {
		return nil, err
	}

	switch opt.View {
	case repo.ViewIncomplete:
		// "due_date IS NULL" sorts false before true on both postgres and sqlite.
		q = q.Order("priority_rank DESC").
			Order("due_date IS NULL").
			Order("due_date ASC").
			Order("created_at DESC")
	case repo.ViewCompleted:
		q = q.Order("completed_at DESC")
	default:
		q = q.Order("created_at DESC")
	}
	return q, nil
}
