package geocore

import (
	"github.com/mapmotion/geocore-go/internal/constants"
)

// TagsQuery queries tags.
type TagsQuery struct {
	TaggableQuery[*TagsQuery]
}

// NewTagsQuery creates a tags query issuing its calls through r.
func NewTagsQuery(r Requester) *TagsQuery {
	q := &TagsQuery{}
	q.bind(q, r, constants.APIPathTags)

	return q
}
