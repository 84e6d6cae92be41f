package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// ItemsClient implements the geocore.ItemsClient interface.
type ItemsClient struct {
	requester *requester
}

// NewItemsClient creates a new ItemsClient.
func NewItemsClient(httpClient *internalhttp.Client) *ItemsClient {
	return &ItemsClient{requester: newRequester(httpClient)}
}

// Get retrieves an item by id.
func (c *ItemsClient) Get(ctx context.Context, id string) (*geocore.Item, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	entity, err := c.requester.entity(ctx, http.MethodGet, constants.APIPathItems+"/"+id, nil, "getting item")
	if err != nil {
		return nil, err
	}

	return geocore.NewItem(entity, c.requester), nil
}

// Query starts an items query.
func (c *ItemsClient) Query() *geocore.ItemsQuery {
	return geocore.NewItemsQuery(c.requester)
}

// List lists items.
func (c *ItemsClient) List(ctx context.Context, opts *geocore.QueryOptions) ([]*geocore.Item, error) {
	return c.requester.items(ctx, constants.APIPathItems+geocore.BuildQueryString(opts), "listing items")
}

// Add creates an item, tagged with tagNames when given.
func (c *ItemsClient) Add(ctx context.Context, item interface{}, tagNames []string) (geocore.Entity, error) {
	path := withNames(constants.APIPathItems, constants.ParamTagNames, tagNames)

	return c.requester.entity(ctx, http.MethodPost, path, item, "creating item")
}

// Update updates an item.
func (c *ItemsClient) Update(ctx context.Context, id string, update interface{}) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodPost, constants.APIPathItems+"/"+id, update, "updating item")
}

// Delete deletes an item.
func (c *ItemsClient) Delete(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodDelete, constants.APIPathItems+"/"+id, nil, "deleting item")
}

// Tags returns the item tags client.
func (c *ItemsClient) Tags() geocore.TaggedResourceClient {
	return &taggedResourceClient{requester: c.requester, basePath: constants.APIPathItems, resource: "item"}
}
