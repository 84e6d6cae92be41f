package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// taggedResourceClient manages the tags of the entities under basePath.
type taggedResourceClient struct {
	requester *requester
	basePath  string
	resource  string
}

func (c *taggedResourceClient) List(ctx context.Context, id string) ([]geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entities(ctx, c.path(id), "listing "+c.resource+" tags")
}

// Update tags the entity with tagNames, creating missing tags.
func (c *taggedResourceClient) Update(ctx context.Context, id string, tagNames []string) (geocore.Entity, error) {
	return c.post(ctx, id, constants.ParamTagNames, tagNames, "updating "+c.resource+" tags")
}

// Delete removes tagNames from the entity.
func (c *taggedResourceClient) Delete(ctx context.Context, id string, tagNames []string) (geocore.Entity, error) {
	return c.post(ctx, id, constants.ParamDelTagNames, tagNames, "deleting "+c.resource+" tags")
}

func (c *taggedResourceClient) post(ctx context.Context, id, param string, tagNames []string, action string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	params := geocore.NewQueryOptions().Set(param, tagNames)
	path := c.path(id) + geocore.BuildQueryString(params)

	return c.requester.entity(ctx, http.MethodPost, path, nil, action)
}

func (c *taggedResourceClient) path(id string) string {
	return c.basePath + "/" + id + "/tags"
}
