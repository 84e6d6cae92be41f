package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// EventsClient implements the geocore.EventsClient interface.
type EventsClient struct {
	requester *requester
}

// NewEventsClient creates a new EventsClient.
func NewEventsClient(httpClient *internalhttp.Client) *EventsClient {
	return &EventsClient{requester: newRequester(httpClient)}
}

// Get retrieves an event by id.
func (c *EventsClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathEvents+"/"+id, nil, "getting event")
}

// Query starts an events query.
func (c *EventsClient) Query() *geocore.EventsQuery {
	return geocore.NewEventsQuery(c.requester)
}
