package geocore

import (
	"context"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// PlacesQuery queries places, with geographic search terminals.
type PlacesQuery struct {
	TaggableQuery[*PlacesQuery]

	centerLat, centerLon float64
	hasCenter            bool

	radius    float64
	hasRadius bool

	minLat, minLon, maxLat, maxLon float64
	hasRectangle                   bool

	checkinable bool
}

// NewPlacesQuery creates a places query issuing its calls through r.
func NewPlacesQuery(r Requester) *PlacesQuery {
	q := &PlacesQuery{}
	q.bind(q, r, constants.APIPathPlaces)

	return q
}

// SetCenter sets the search center.
func (q *PlacesQuery) SetCenter(lat, lon float64) *PlacesQuery {
	q.centerLat, q.centerLon = lat, lon
	q.hasCenter = true

	return q
}

// SetRadius sets the search radius used by WithinCircle.
func (q *PlacesQuery) SetRadius(radius float64) *PlacesQuery {
	q.radius = radius
	q.hasRadius = true

	return q
}

// SetRectangle sets the bounds used by WithinRectangle.
func (q *PlacesQuery) SetRectangle(minLat, minLon, maxLat, maxLon float64) *PlacesQuery {
	q.minLat, q.minLon = minLat, minLon
	q.maxLat, q.maxLon = maxLat, maxLon
	q.hasRectangle = true

	return q
}

// OnlyCheckinable keeps places users can check in to.
func (q *PlacesQuery) OnlyCheckinable() *PlacesQuery {
	q.checkinable = true

	return q
}

// BuildQueryParameters extends the tag filters with the checkinable flag.
// Geographic parameters are added by the search terminals.
func (q *PlacesQuery) BuildQueryParameters() *QueryOptions {
	params := q.TaggableQuery.BuildQueryParameters()

	if q.checkinable {
		params.Set(constants.ParamCheckinable, true)
	}

	return params
}

// Nearest lists the places nearest to the center.
func (q *PlacesQuery) Nearest(ctx context.Context) ([]Entity, error) {
	if !q.hasCenter {
		return nil, missing("center")
	}

	return q.search(ctx, constants.APIPathPlacesNearest, q.centerOptions(), "searching nearest places")
}

// WithinCircle lists the places within radius of the center.
func (q *PlacesQuery) WithinCircle(ctx context.Context) ([]Entity, error) {
	if !q.hasCenter {
		return nil, missing("center")
	}

	if !q.hasRadius {
		return nil, missing("radius")
	}

	geo := q.centerOptions().Set(constants.ParamRadius, q.radius)

	return q.search(ctx, constants.APIPathPlacesWithinCircle, geo, "searching places within circle")
}

// WithinRectangle lists the places within the rectangle.
func (q *PlacesQuery) WithinRectangle(ctx context.Context) ([]Entity, error) {
	if !q.hasRectangle {
		return nil, missing("rectangle")
	}

	geo := NewQueryOptions().
		Set(constants.ParamMaxLatitude, q.maxLat).
		Set(constants.ParamMinLongitude, q.minLon).
		Set(constants.ParamMinLatitude, q.minLat).
		Set(constants.ParamMaxLongitude, q.maxLon)

	return q.search(ctx, constants.APIPathPlacesWithinRect, geo, "searching places within rectangle")
}

// SmallestBounds lists the places with the smallest bounds containing the
// center.
func (q *PlacesQuery) SmallestBounds(ctx context.Context) ([]Entity, error) {
	if !q.hasCenter {
		return nil, missing("center")
	}

	return q.search(ctx, constants.APIPathPlacesSmallestBounds, q.centerOptions(), "searching smallest bounds")
}

// Events is reserved and always returns ErrNotImplemented.
func (q *PlacesQuery) Events(_ context.Context) ([]Entity, error) {
	return nil, ErrNotImplemented
}

// EventRelationships is reserved and always returns ErrNotImplemented.
func (q *PlacesQuery) EventRelationships(_ context.Context) ([]Entity, error) {
	return nil, ErrNotImplemented
}

func (q *PlacesQuery) centerOptions() *QueryOptions {
	return NewQueryOptions().
		Set(constants.ParamLatitude, q.centerLat).
		Set(constants.ParamLongitude, q.centerLon)
}

func (q *PlacesQuery) search(ctx context.Context, path string, geo *QueryOptions, action string) ([]Entity, error) {
	qs := BuildQueryString(MergeOptions(geo, q.BuildQueryParameters()))

	return q.entities(ctx, path+qs, action)
}
