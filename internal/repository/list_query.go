package repository

// ListQuery represents common query parameters. Repository methods apply at
// most one equality filter each; anything richer is filtered by the caller
// after a broader fetch, which is fine at single-user volume.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 50,
		Filters: make(map[string]string),
	}
}

// OrderClause builds an ORDER BY fragment from the query. SortBy is matched
// against the sortable allowlist; ORDER BY identifiers cannot be bound as
// placeholders, so anything not on the list falls back to the default clause.
func (q *ListQuery) OrderClause(sortable map[string]bool, fallback string) string {
	if !sortable[q.SortBy] {
		return fallback
	}
	dir := "ASC"
	if q.SortDir == "desc" {
		dir = "DESC"
	}
	return q.SortBy + " " + dir
}
