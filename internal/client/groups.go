package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// GroupsClient implements the geocore.GroupsClient interface.
type GroupsClient struct {
	requester *requester
}

// NewGroupsClient creates a new GroupsClient.
func NewGroupsClient(httpClient *internalhttp.Client) *GroupsClient {
	return &GroupsClient{requester: newRequester(httpClient)}
}

// Get retrieves a group by id.
func (c *GroupsClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathGroups+"/"+id, nil, "getting group")
}

// Query starts a groups query.
func (c *GroupsClient) Query() *geocore.GroupsQuery {
	return geocore.NewGroupsQuery(c.requester)
}

// Add creates a group and adds the given users to it.
func (c *GroupsClient) Add(ctx context.Context, group interface{}, userIDs []string) (geocore.Entity, error) {
	path := withNames(constants.APIPathGroups, constants.ParamUserIDs, userIDs)

	return c.requester.entity(ctx, http.MethodPost, path, group, "creating group")
}

// Update updates a group.
func (c *GroupsClient) Update(ctx context.Context, id string, update interface{}) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodPost, constants.APIPathGroups+"/"+id, update, "updating group")
}

// Delete deletes a group.
func (c *GroupsClient) Delete(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodDelete, constants.APIPathGroups+"/"+id, nil, "deleting group")
}
