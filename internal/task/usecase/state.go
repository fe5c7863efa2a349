package usecase

import (
	"ai-todo/internal/model"
	"ai-todo/internal/task"
)

func (uc *implUseCase) State() task.BoardState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.state
	if s.EditingTask != nil {
		t := s.EditingTask.Clone()
		s.EditingTask = &t
	}
	return s
}

func (uc *implUseCase) ShowAddDialog() {
	uc.mu.Lock()
	uc.state.ShowAddDialog = true
	uc.mu.Unlock()
}

func (uc *implUseCase) HideAddDialog() {
	uc.mu.Lock()
	uc.state.ShowAddDialog = false
	uc.mu.Unlock()
}

func (uc *implUseCase) ToggleIncompleteCollapsed() {
	uc.mu.Lock()
	uc.state.IncompleteCollapsed = !uc.state.IncompleteCollapsed
	uc.mu.Unlock()
}

func (uc *implUseCase) ToggleCompletedCollapsed() {
	uc.mu.Lock()
	uc.state.CompletedCollapsed = !uc.state.CompletedCollapsed
	uc.mu.Unlock()
}

func (uc *implUseCase) StartEditing(t model.Task) {
	c := t.Clone()
	uc.mu.Lock()
	uc.state.EditingTask = &c
	uc.mu.Unlock()
}

func (uc *implUseCase) CancelEditing() {
	uc.mu.Lock()
	uc.state.EditingTask = nil
	uc.mu.Unlock()
}
