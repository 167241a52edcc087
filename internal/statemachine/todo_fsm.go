package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/looplab/fsm"
	"github.com/vaibhav/lifehub-api/internal/models"
)

// TodoFSM wraps a todo with its status state machine
type TodoFSM struct {
	todo *models.Todo
	fsm  *fsm.FSM
}

// NewTodoFSM creates a new todo state machine
func NewTodoFSM(todo *models.Todo) *TodoFSM {
	tfsm := &TodoFSM{
		todo: todo,
	}

	tfsm.fsm = fsm.NewFSM(
		todo.Status,
		fsm.Events{
			// pending → in_progress
			{Name: "start", Src: []string{models.TodoStatusPending}, Dst: models.TodoStatusInProgress},

			// pending/in_progress → completed
			{Name: "complete", Src: []string{models.TodoStatusPending, models.TodoStatusInProgress}, Dst: models.TodoStatusCompleted},

			// completed → pending (reopen)
			{Name: "reopen", Src: []string{models.TodoStatusCompleted}, Dst: models.TodoStatusPending},
		},
		fsm.Callbacks{},
	)

	return tfsm
}

// Start transitions the todo to in_progress
func (t *TodoFSM) Start(ctx context.Context) error {
	if !t.todo.MayStart() {
		return fmt.Errorf("todo cannot be started in current state: %s", t.todo.Status)
	}

	if err := t.fsm.Event(ctx, "start"); err != nil {
		return fmt.Errorf("failed to start todo: %w", err)
	}

	t.todo.Status = t.fsm.Current()
	return nil
}

// Complete transitions the todo to completed and stamps completed_at
func (t *TodoFSM) Complete(ctx context.Context) error {
	if !t.todo.MayComplete() {
		return fmt.Errorf("todo cannot be completed in current state: %s", t.todo.Status)
	}

	if err := t.fsm.Event(ctx, "complete"); err != nil {
		return fmt.Errorf("failed to complete todo: %w", err)
	}

	t.todo.Status = t.fsm.Current()
	now := time.Now()
	t.todo.CompletedAt = &now
	return nil
}

// Reopen transitions a completed todo back to pending
func (t *TodoFSM) Reopen(ctx context.Context) error {
	if !t.todo.MayReopen() {
		return fmt.Errorf("todo cannot be reopened in current state: %s", t.todo.Status)
	}

	if err := t.fsm.Event(ctx, "reopen"); err != nil {
		return fmt.Errorf("failed to reopen todo: %w", err)
	}

	t.todo.Status = t.fsm.Current()
	t.todo.CompletedAt = nil
	return nil
}

// Current returns the current state
func (t *TodoFSM) Current() string {
	return t.fsm.Current()
}
