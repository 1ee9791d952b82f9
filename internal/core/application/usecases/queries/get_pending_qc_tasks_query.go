package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingQCTasksQueryIsNotConstructed = errors.New(
	"GetPendingQCTasksQuery must be created via NewGetPendingQCTasksQuery constructor",
)

// GetPendingQCTasksQuery retrieves every order waiting in the QC pool.
// The pool is shared: any reviewer may pick any pending draft.
type GetPendingQCTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingQCTasksQuery creates a query for the shared QC pool.
func NewGetPendingQCTasksQuery() GetPendingQCTasksQuery {
	return GetPendingQCTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingQCTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingQCTasksQueryIsNotConstructed)
}

// GetPendingQCTasksQueryResponse is one draft awaiting review.
type GetPendingQCTasksQueryResponse struct {
	ID          kernel.UUID
	WriterID    kernel.UUID
	DraftURL    string
	ReworkCount int
}
