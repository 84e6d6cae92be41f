package geocore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// Query adds pagination, ordering, date ranges and a parent filter to
// Operation, and the Get, All and Count terminal methods.
type Query[Q Builder] struct {
	Operation[Q]

	name            string
	num             int
	page            int
	recentlyCreated bool
	recentlyUpdated bool
	updatedAfter    time.Time
	updatedBefore   time.Time
	createdAfter    time.Time
	createdBefore   time.Time
	parentID        string
}

// WithName filters by name.
func (q *Query[Q]) WithName(name string) Q {
	q.name = name

	return q.self
}

// WithNumberPerPage sets the page size.
func (q *Query[Q]) WithNumberPerPage(num int) Q {
	q.num = num

	return q.self
}

// SetNum is an alias of WithNumberPerPage.
func (q *Query[Q]) SetNum(num int) Q {
	return q.WithNumberPerPage(num)
}

// WithPage sets the page to fetch.
func (q *Query[Q]) WithPage(page int) Q {
	q.page = page

	return q.self
}

// SetPage is an alias of WithPage.
func (q *Query[Q]) SetPage(page int) Q {
	return q.WithPage(page)
}

// OrderByRecentlyCreated orders results by creation time, newest first.
func (q *Query[Q]) OrderByRecentlyCreated() Q {
	q.recentlyCreated = true

	return q.self
}

// OrderByRecentlyUpdated orders results by update time, newest first.
func (q *Query[Q]) OrderByRecentlyUpdated() Q {
	q.recentlyUpdated = true

	return q.self
}

// UpdatedAfter keeps entities updated after t.
func (q *Query[Q]) UpdatedAfter(t time.Time) Q {
	q.updatedAfter = t

	return q.self
}

// UpdatedBefore keeps entities updated before t.
func (q *Query[Q]) UpdatedBefore(t time.Time) Q {
	q.updatedBefore = t

	return q.self
}

// CreatedAfter keeps entities created after t.
func (q *Query[Q]) CreatedAfter(t time.Time) Q {
	q.createdAfter = t

	return q.self
}

// CreatedBefore keeps entities created before t.
func (q *Query[Q]) CreatedBefore(t time.Time) Q {
	q.createdBefore = t

	return q.self
}

// WithParent keeps the children of the given entity.
func (q *Query[Q]) WithParent(parentID string) Q {
	q.parentID = parentID

	return q.self
}

// BuildQueryParameters extends the Operation parameters with the fields
// that were set.
func (q *Query[Q]) BuildQueryParameters() *QueryOptions {
	params := q.Operation.BuildQueryParameters()

	if q.name != "" {
		params.Set(constants.ParamName, q.name)
	}

	if q.num > 0 {
		params.Set(constants.ParamNum, q.num)
	}

	if q.page > 0 {
		params.Set(constants.ParamPage, q.page)
	}

	if q.recentlyCreated {
		params.Set(constants.ParamRecentCreated, true)
	}

	if q.recentlyUpdated {
		params.Set(constants.ParamRecentUpdated, true)
	}

	setDate(params, constants.ParamUpdateAfter, q.updatedAfter)
	setDate(params, constants.ParamUpdateBefore, q.updatedBefore)
	setDate(params, constants.ParamCreateAfter, q.createdAfter)
	setDate(params, constants.ParamCreateBefore, q.createdBefore)

	if q.parentID != "" {
		params.Set(constants.ParamParentID, q.parentID)
	}

	return params
}

// Get fetches the entity set with WithID.
func (q *Query[Q]) Get(ctx context.Context) (Entity, error) {
	if q.id == "" {
		return nil, missing("id")
	}

	return q.entity(ctx, http.MethodGet, q.basePath+"/"+q.id, "getting "+q.basePath)
}

// All lists the entities matching the accumulated parameters, in the order
// returned by the service.
func (q *Query[Q]) All(ctx context.Context) ([]Entity, error) {
	path := q.basePath + BuildQueryString(q.self.BuildQueryParameters())

	return q.entities(ctx, path, "listing "+q.basePath)
}

// Count counts the entities matching the accumulated parameters.
func (q *Query[Q]) Count(ctx context.Context) (int64, error) {
	path := q.basePath + "/count" + BuildQueryString(q.self.BuildQueryParameters())

	result, err := q.do(ctx, http.MethodGet, path)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", q.basePath, err)
	}

	return decodeCount(result)
}

func setDate(params *QueryOptions, name string, t time.Time) {
	if !t.IsZero() {
		params.Set(name, t.Format(constants.DateFormat))
	}
}

// decodeCount accepts a bare number or an object with a "count" field.
func decodeCount(result json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(result)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Count int64 `json:"count"`
		}

		err := json.Unmarshal(trimmed, &wrapped)
		if err != nil {
			return 0, fmt.Errorf("parsing count response: %w", err)
		}

		return wrapped.Count, nil
	}

	var count int64

	err := json.Unmarshal(trimmed, &count)
	if err != nil {
		return 0, fmt.Errorf("parsing count response: %w", err)
	}

	return count, nil
}
