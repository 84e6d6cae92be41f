package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// AuthoritiesClient implements the geocore.AuthoritiesClient interface.
type AuthoritiesClient struct {
	requester *requester
}

// NewAuthoritiesClient creates a new AuthoritiesClient.
func NewAuthoritiesClient(httpClient *internalhttp.Client) *AuthoritiesClient {
	return &AuthoritiesClient{requester: newRequester(httpClient)}
}

// Get retrieves an authority by id.
func (c *AuthoritiesClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathAuthorities+"/"+id, nil, "getting authority")
}

// Add creates an authority and grants it to the given groups.
func (c *AuthoritiesClient) Add(ctx context.Context, authority interface{}, groupIDs []string) (geocore.Entity, error) {
	path := withNames(constants.APIPathAuthorities, constants.ParamGroupIDs, groupIDs)

	return c.requester.entity(ctx, http.MethodPost, path, authority, "creating authority")
}

// Update updates an authority.
func (c *AuthoritiesClient) Update(ctx context.Context, id string, update interface{}) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodPost, constants.APIPathAuthorities+"/"+id, update, "updating authority")
}

// Delete deletes an authority.
func (c *AuthoritiesClient) Delete(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodDelete, constants.APIPathAuthorities+"/"+id, nil, "deleting authority")
}
