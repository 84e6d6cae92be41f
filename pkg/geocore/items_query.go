package geocore

import (
	"context"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// ItemsQuery queries items. Its Get and All return items bound to the
// query's requester.
type ItemsQuery struct {
	TaggableQuery[*ItemsQuery]
}

// NewItemsQuery creates an items query issuing its calls through r.
func NewItemsQuery(r Requester) *ItemsQuery {
	q := &ItemsQuery{}
	q.bind(q, r, constants.APIPathItems)

	return q
}

// Get fetches the item set with WithID.
func (q *ItemsQuery) Get(ctx context.Context) (*Item, error) {
	entity, err := q.TaggableQuery.Get(ctx)
	if err != nil {
		return nil, err
	}

	return NewItem(entity, q.requester), nil
}

// All lists the items matching the accumulated parameters.
func (q *ItemsQuery) All(ctx context.Context) ([]*Item, error) {
	entities, err := q.TaggableQuery.All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(entities))
	for _, entity := range entities {
		items = append(items, NewItem(entity, q.requester))
	}

	return items, nil
}
