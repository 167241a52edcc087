package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_OrderClause(t *testing.T) {
	sortable := map[string]bool{"name": true, "created_at": true}

	q := NewListQuery()
	q.SortBy = "name"
	assert.Equal(t, "name ASC", q.OrderClause(sortable, "created_at DESC"))

	q.SortDir = "desc"
	assert.Equal(t, "name DESC", q.OrderClause(sortable, "created_at DESC"))

	// empty and unknown columns fall back to the default clause
	q.SortBy = ""
	assert.Equal(t, "created_at DESC", q.OrderClause(sortable, "created_at DESC"))

	q.SortBy = "balance"
	assert.Equal(t, "created_at DESC", q.OrderClause(sortable, "created_at DESC"))
}

func TestListQuery_OrderClause_RejectsRawSQL(t *testing.T) {
	sortable := map[string]bool{"name": true}

	q := NewListQuery()
	q.SortBy = "name;--x"
	assert.Equal(t, "created_at DESC", q.OrderClause(sortable, "created_at DESC"))

	q.SortBy = "name, (SELECT 1)"
	assert.Equal(t, "created_at DESC", q.OrderClause(sortable, "created_at DESC"))
}
