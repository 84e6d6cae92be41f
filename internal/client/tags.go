package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// TagsClient implements the geocore.TagsClient interface.
type TagsClient struct {
	requester *requester
}

// NewTagsClient creates a new TagsClient.
func NewTagsClient(httpClient *internalhttp.Client) *TagsClient {
	return &TagsClient{requester: newRequester(httpClient)}
}

// Get retrieves a tag by id.
func (c *TagsClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathTags+"/"+id, nil, "getting tag")
}

// Query starts a tags query.
func (c *TagsClient) Query() *geocore.TagsQuery {
	return geocore.NewTagsQuery(c.requester)
}
