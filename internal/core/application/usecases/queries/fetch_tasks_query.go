package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// TaskFilter selects which slice of the task pool a writer sees.
type TaskFilter string

const (
	// FilterAssigned returns orders currently held by the writer.
	FilterAssigned TaskFilter = "assigned"

	// FilterAvailable returns offered orders the writer may still claim,
	// excluding orders the writer previously declined.
	FilterAvailable TaskFilter = "available"
)

// Validate checks that the filter is one of the defined values.
func (f TaskFilter) Validate() error {
	if f != FilterAssigned && f != FilterAvailable {
		return errs.NewValueIsInvalidError("filter")
	}
	return nil
}

// TaskFilterFromString parses a filter from its wire representation.
func TaskFilterFromString(value string) (TaskFilter, error) {
	filter := TaskFilter(value)
	if err := filter.Validate(); err != nil {
		return "", err
	}
	return filter, nil
}

var ErrFetchTasksQueryIsNotConstructed = errors.New(
	"FetchTasksQuery must be created via NewFetchTasksQuery constructor",
)

// FetchTasksQuery retrieves a writer's task list: either the orders the
// writer currently holds, or the offered orders the writer may claim.
type FetchTasksQuery struct {
	writerID kernel.UUID
	filter   TaskFilter

	guard guard.ConstructorGuard
}

// NewFetchTasksQuery creates a task list query for the given writer.
func NewFetchTasksQuery(writerID kernel.UUID, filter TaskFilter) (FetchTasksQuery, error) {
	if err := writerID.Validate(); err != nil {
		return FetchTasksQuery{}, err
	}
	if err := filter.Validate(); err != nil {
		return FetchTasksQuery{}, err
	}

	return FetchTasksQuery{
		writerID: writerID,
		filter:   filter,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FetchTasksQuery) Validate() error {
	return q.guard.Validate(ErrFetchTasksQueryIsNotConstructed)
}

// WriterID returns the writer whose tasks are requested.
func (q FetchTasksQuery) WriterID() kernel.UUID {
	return q.writerID
}

// Filter returns which slice of the pool is requested.
func (q FetchTasksQuery) Filter() TaskFilter {
	return q.filter
}

// FetchTasksQueryResponse is one row of a writer's task list.
type FetchTasksQueryResponse struct {
	ID        kernel.UUID
	Status    order.Status
	Units     int
	OfferedAt *time.Time
}
