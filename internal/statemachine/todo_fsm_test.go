package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaibhav/lifehub-api/internal/models"
)

func TestTodoFSMLifecycle(t *testing.T) {
	ctx := context.Background()
	todo := &models.Todo{Status: models.TodoStatusPending}

	m := NewTodoFSM(todo)
	require.NoError(t, m.Start(ctx))
	assert.Equal(t, models.TodoStatusInProgress, todo.Status)

	require.NoError(t, m.Complete(ctx))
	assert.Equal(t, models.TodoStatusCompleted, todo.Status)
	require.NotNil(t, todo.CompletedAt)

	require.NoError(t, m.Reopen(ctx))
	assert.Equal(t, models.TodoStatusPending, todo.Status)
	assert.Nil(t, todo.CompletedAt)
}

func TestTodoFSMCompleteFromPending(t *testing.T) {
	ctx := context.Background()
	todo := &models.Todo{Status: models.TodoStatusPending}

	// completing without starting is allowed
	require.NoError(t, NewTodoFSM(todo).Complete(ctx))
	assert.Equal(t, models.TodoStatusCompleted, todo.Status)
}

func TestTodoFSMInvalidTransitions(t *testing.T) {
	ctx := context.Background()

	completed := &models.Todo{Status: models.TodoStatusCompleted}
	assert.Error(t, NewTodoFSM(completed).Start(ctx))
	assert.Error(t, NewTodoFSM(completed).Complete(ctx))

	pending := &models.Todo{Status: models.TodoStatusPending}
	assert.Error(t, NewTodoFSM(pending).Reopen(ctx))

	inProgress := &models.Todo{Status: models.TodoStatusInProgress}
	assert.Error(t, NewTodoFSM(inProgress).Start(ctx))
	assert.Error(t, NewTodoFSM(inProgress).Reopen(ctx))
}
