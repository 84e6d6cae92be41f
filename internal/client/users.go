package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// UsersClient implements the geocore.UsersClient interface.
type UsersClient struct {
	requester *requester
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{requester: newRequester(httpClient)}
}

// Get retrieves a user by id.
func (c *UsersClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathUsers+"/"+id, nil, "getting user")
}

// Update updates a user. The service takes updates as POST.
func (c *UsersClient) Update(ctx context.Context, id string, update interface{}) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodPost, constants.APIPathUsers+"/"+id, update, "updating user")
}

// Groups lists the groups the user belongs to.
func (c *UsersClient) Groups(ctx context.Context, id string) ([]geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entities(ctx, constants.APIPathUsers+"/"+id+"/groups", "listing user groups")
}
