package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// ObjectsClient implements the geocore.ObjectsClient interface.
type ObjectsClient struct {
	requester *requester
}

// NewObjectsClient creates a new ObjectsClient.
func NewObjectsClient(httpClient *internalhttp.Client) *ObjectsClient {
	return &ObjectsClient{requester: newRequester(httpClient)}
}

// Get retrieves an object by id.
func (c *ObjectsClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathObjects+"/"+id, nil, "getting object")
}

// Query starts an objects query.
func (c *ObjectsClient) Query() *geocore.ObjectsQuery {
	return geocore.NewObjectsQuery(c.requester)
}

// Data returns the object data client.
func (c *ObjectsClient) Data() geocore.ObjectDataClient {
	return &objectDataClient{requester: c.requester}
}

// Bins returns the object binaries client.
func (c *ObjectsClient) Bins() geocore.ObjectBinsClient {
	return &objectBinsClient{requester: c.requester}
}

// RelationshipBins returns the relationship binaries client.
func (c *ObjectsClient) RelationshipBins() geocore.RelationshipBinsClient {
	return &relationshipBinsClient{requester: c.requester}
}

// CustomData returns the custom data client for objects.
func (c *ObjectsClient) CustomData() geocore.CustomDataClient {
	return &customDataClient{requester: c.requester, basePath: constants.APIPathObjects}
}

type objectDataClient struct {
	requester *requester
}

func (c *objectDataClient) List(ctx context.Context, id string) ([]geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entities(ctx, constants.APIPathObjects+"/"+id+"/data", "listing object data")
}

func (c *objectDataClient) Get(ctx context.Context, id, key string) (geocore.Entity, error) {
	err := requireIDAndKey(id, key)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/data/%s", constants.APIPathObjects, id, key)

	return c.requester.entity(ctx, http.MethodGet, path, nil, "getting object data")
}

func (c *objectDataClient) AddOrUpdate(ctx context.Context, id, key string, data interface{}) (geocore.Entity, error) {
	err := requireIDAndKey(id, key)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/data/%s", constants.APIPathObjects, id, key)

	return c.requester.entity(ctx, http.MethodPost, path, data, "saving object data")
}

type objectBinsClient struct {
	requester *requester
}

func (c *objectBinsClient) List(ctx context.Context, id string) ([]geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entities(ctx, constants.APIPathObjects+"/"+id+"/bins", "listing object binaries")
}

func (c *objectBinsClient) URL(ctx context.Context, id, key string) (geocore.Entity, error) {
	err := requireIDAndKey(id, key)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/bins/%s/url", constants.APIPathObjects, id, key)

	return c.requester.entity(ctx, http.MethodGet, path, nil, "getting object binary url")
}

func (c *objectBinsClient) Upload(ctx context.Context, id, key string, upload *geocore.Upload) (geocore.Entity, error) {
	err := requireIDAndKey(id, key)
	if err != nil {
		return nil, err
	}

	if upload == nil {
		return nil, &geocore.MissingParameterError{Name: "upload"}
	}

	path := fmt.Sprintf("%s/%s/bins/%s", constants.APIPathObjects, id, key)

	result, err := c.requester.upload(ctx, path, upload)
	if err != nil {
		return nil, fmt.Errorf("uploading object binary: %w", err)
	}

	return geocore.Entity(result), nil
}

type relationshipBinsClient struct {
	requester *requester
}

func (c *relationshipBinsClient) List(ctx context.Context, id1, id2 string) ([]geocore.Entity, error) {
	err := requireRelationship(id1, id2)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/%s/bins", constants.APIPathObjectRelationship, id1, id2)

	return c.requester.entities(ctx, path, "listing relationship binaries")
}

func (c *relationshipBinsClient) URL(ctx context.Context, id1, id2, key string) (geocore.Entity, error) {
	err := requireRelationship(id1, id2)
	if err != nil {
		return nil, err
	}

	err = requireID("key", key)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/%s/bins/%s/url", constants.APIPathObjectRelationship, id1, id2, key)

	return c.requester.entity(ctx, http.MethodGet, path, nil, "getting relationship binary url")
}

// customDataClient sets custom data entries under basePath.
type customDataClient struct {
	requester *requester
	basePath  string
}

func (c *customDataClient) Update(ctx context.Context, id, key, value string) (geocore.Entity, error) {
	err := requireIDAndKey(id, key)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/customData/%s/%s", c.basePath, id, key, value)

	return c.requester.entity(ctx, http.MethodPut, path, nil, "updating custom data")
}

func (c *customDataClient) Delete(ctx context.Context, id, key string) (geocore.Entity, error) {
	err := requireIDAndKey(id, key)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/customData/%s", c.basePath, id, key)

	return c.requester.entity(ctx, http.MethodDelete, path, nil, "deleting custom data")
}

func requireIDAndKey(id, key string) error {
	err := requireID("id", id)
	if err != nil {
		return err
	}

	return requireID("key", key)
}

func requireRelationship(id1, id2 string) error {
	err := requireID("id1", id1)
	if err != nil {
		return err
	}

	return requireID("id2", id2)
}
