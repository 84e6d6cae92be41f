package geocore

import (
	"github.com/mapmotion/geocore-go/internal/constants"
)

// ObjectsQuery queries generic objects.
type ObjectsQuery struct {
	Query[*ObjectsQuery]
}

// NewObjectsQuery creates an objects query issuing its calls through r.
func NewObjectsQuery(r Requester) *ObjectsQuery {
	q := &ObjectsQuery{}
	q.bind(q, r, constants.APIPathObjects)

	return q
}
