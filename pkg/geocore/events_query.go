package geocore

import (
	"github.com/mapmotion/geocore-go/internal/constants"
)

// EventsQuery queries events.
type EventsQuery struct {
	TaggableQuery[*EventsQuery]
}

// NewEventsQuery creates an events query issuing its calls through r.
func NewEventsQuery(r Requester) *EventsQuery {
	q := &EventsQuery{}
	q.bind(q, r, constants.APIPathEvents)

	return q
}
