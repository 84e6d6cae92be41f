package client

import (
	"context"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// PlacesClient implements the geocore.PlacesClient interface.
type PlacesClient struct {
	requester *requester
}

// NewPlacesClient creates a new PlacesClient.
func NewPlacesClient(httpClient *internalhttp.Client) *PlacesClient {
	return &PlacesClient{requester: newRequester(httpClient)}
}

// Get retrieves a place by id.
func (c *PlacesClient) Get(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodGet, constants.APIPathPlaces+"/"+id, nil, "getting place")
}

// Query starts a places query.
func (c *PlacesClient) Query() *geocore.PlacesQuery {
	return geocore.NewPlacesQuery(c.requester)
}

// List lists places.
func (c *PlacesClient) List(ctx context.Context, opts *geocore.QueryOptions) ([]geocore.Entity, error) {
	path := constants.APIPathPlaces + geocore.BuildQueryString(opts)

	return c.requester.entities(ctx, path, "listing places")
}

// SearchWithinRect lists the places within the rectangle.
func (c *PlacesClient) SearchWithinRect(ctx context.Context, maxLat, minLon, minLat, maxLon float64, opts *geocore.QueryOptions) ([]geocore.Entity, error) {
	geo := geocore.NewQueryOptions().
		Set(constants.ParamMaxLatitude, maxLat).
		Set(constants.ParamMinLongitude, minLon).
		Set(constants.ParamMinLatitude, minLat).
		Set(constants.ParamMaxLongitude, maxLon)

	return c.search(ctx, constants.APIPathPlacesWithinRect, geo, opts, "searching places within rectangle")
}

// SearchWithinCircle lists the places within radius of the point.
func (c *PlacesClient) SearchWithinCircle(ctx context.Context, lat, lon, radius float64, opts *geocore.QueryOptions) ([]geocore.Entity, error) {
	geo := geocore.NewQueryOptions().
		Set(constants.ParamLatitude, lat).
		Set(constants.ParamLongitude, lon).
		Set(constants.ParamRadius, radius)

	return c.search(ctx, constants.APIPathPlacesWithinCircle, geo, opts, "searching places within circle")
}

// SearchNearest lists the places nearest to the point.
func (c *PlacesClient) SearchNearest(ctx context.Context, lat, lon float64, opts *geocore.QueryOptions) ([]geocore.Entity, error) {
	geo := geocore.NewQueryOptions().
		Set(constants.ParamLatitude, lat).
		Set(constants.ParamLongitude, lon)

	return c.search(ctx, constants.APIPathPlacesNearest, geo, opts, "searching nearest places")
}

// SearchByName lists the places whose name starts with prefix.
func (c *PlacesClient) SearchByName(ctx context.Context, prefix string, opts *geocore.QueryOptions) ([]geocore.Entity, error) {
	err := requireID("prefix", prefix)
	if err != nil {
		return nil, err
	}

	path := constants.APIPathPlacesByName + "/" + geocore.EncodeComponent(prefix) + geocore.BuildQueryString(opts)

	return c.requester.entities(ctx, path, "searching places by name")
}

// Children lists the child places of a place.
func (c *PlacesClient) Children(ctx context.Context, id string) ([]geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entities(ctx, constants.APIPathPlaces+"/"+id+"/children", "listing child places")
}

// Add creates a place, tagged with tagNames when given.
func (c *PlacesClient) Add(ctx context.Context, place interface{}, tagNames []string) (geocore.Entity, error) {
	path := withNames(constants.APIPathPlaces, constants.ParamTagNames, tagNames)

	return c.requester.entity(ctx, http.MethodPost, path, place, "creating place")
}

// Update updates a place.
func (c *PlacesClient) Update(ctx context.Context, id string, update interface{}) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodPost, constants.APIPathPlaces+"/"+id, update, "updating place")
}

// Delete deletes a place.
func (c *PlacesClient) Delete(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.entity(ctx, http.MethodDelete, constants.APIPathPlaces+"/"+id, nil, "deleting place")
}

// DeleteGeometry removes the geometry of a place.
func (c *PlacesClient) DeleteGeometry(ctx context.Context, id string) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	path := constants.APIPathPlaces + "/" + id + "/geometry"

	return c.requester.entity(ctx, http.MethodDelete, path, nil, "deleting place geometry")
}

// Tags returns the place tags client.
func (c *PlacesClient) Tags() geocore.TaggedResourceClient {
	return &taggedResourceClient{requester: c.requester, basePath: constants.APIPathPlaces, resource: "place"}
}

// Items returns the place items client.
func (c *PlacesClient) Items() geocore.PlaceItemsClient {
	return &placeItemsClient{requester: c.requester}
}

func (c *PlacesClient) search(ctx context.Context, path string, geo, opts *geocore.QueryOptions, action string) ([]geocore.Entity, error) {
	qs := geocore.BuildQueryString(geocore.MergeOptions(geo, opts))

	return c.requester.entities(ctx, path+qs, action)
}

type placeItemsClient struct {
	requester *requester
}

func (c *placeItemsClient) List(ctx context.Context, id string) ([]*geocore.Item, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	return c.requester.items(ctx, constants.APIPathPlaces+"/"+id+"/items", "listing place items")
}

func (c *placeItemsClient) Add(ctx context.Context, id string, item interface{}) (geocore.Entity, error) {
	err := requireID("id", id)
	if err != nil {
		return nil, err
	}

	path := constants.APIPathPlaces + "/" + id + "/items"

	return c.requester.entity(ctx, http.MethodPost, path, item, "adding place item")
}
