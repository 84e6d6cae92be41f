package geocore

import (
	"context"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// GroupsQuery queries user groups.
type GroupsQuery struct {
	TaggableQuery[*GroupsQuery]
}

// NewGroupsQuery creates a groups query issuing its calls through r.
func NewGroupsQuery(r Requester) *GroupsQuery {
	q := &GroupsQuery{}
	q.bind(q, r, constants.APIPathGroups)

	return q
}

// Authorities lists the authorities granted to the group.
func (q *GroupsQuery) Authorities(ctx context.Context) ([]Entity, error) {
	return q.related(ctx, "auths")
}

// Tags lists the tags of the group.
func (q *GroupsQuery) Tags(ctx context.Context) ([]Entity, error) {
	return q.related(ctx, "tags")
}

func (q *GroupsQuery) related(ctx context.Context, resource string) ([]Entity, error) {
	if q.id == "" {
		return nil, missing("id")
	}

	return q.entities(ctx, q.basePath+"/"+q.id+"/"+resource, "listing group "+resource)
}
