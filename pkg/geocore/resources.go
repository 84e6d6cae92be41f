package geocore

import (
	"context"
)

// ObjectsClient defines operations on generic objects.
type ObjectsClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Query() *ObjectsQuery
	Data() ObjectDataClient
	Bins() ObjectBinsClient
	RelationshipBins() RelationshipBinsClient
	CustomData() CustomDataClient
}

// ObjectDataClient manages the keyed data documents attached to an object.
type ObjectDataClient interface {
	List(ctx context.Context, id string) ([]Entity, error)
	Get(ctx context.Context, id, key string) (Entity, error)
	AddOrUpdate(ctx context.Context, id, key string, data interface{}) (Entity, error)
}

// ObjectBinsClient manages the binaries attached to an object.
type ObjectBinsClient interface {
	List(ctx context.Context, id string) ([]Entity, error)
	URL(ctx context.Context, id, key string) (Entity, error)
	Upload(ctx context.Context, id, key string, upload *Upload) (Entity, error)
}

// RelationshipBinsClient reads the binaries attached to the relationship
// between two objects.
type RelationshipBinsClient interface {
	List(ctx context.Context, id1, id2 string) ([]Entity, error)
	URL(ctx context.Context, id1, id2, key string) (Entity, error)
}

// CustomDataClient sets and removes custom data entries.
type CustomDataClient interface {
	Update(ctx context.Context, id, key, value string) (Entity, error)
	Delete(ctx context.Context, id, key string) (Entity, error)
}

// TaggedResourceClient manages the tags of an entity.
type TaggedResourceClient interface {
	List(ctx context.Context, id string) ([]Entity, error)
	Update(ctx context.Context, id string, tagNames []string) (Entity, error)
	Delete(ctx context.Context, id string, tagNames []string) (Entity, error)
}

// UsersClient defines operations on users.
type UsersClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Update(ctx context.Context, id string, update interface{}) (Entity, error)
	Groups(ctx context.Context, id string) ([]Entity, error)
}

// GroupsClient defines operations on user groups.
type GroupsClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Query() *GroupsQuery
	Add(ctx context.Context, group interface{}, userIDs []string) (Entity, error)
	Update(ctx context.Context, id string, update interface{}) (Entity, error)
	Delete(ctx context.Context, id string) (Entity, error)
}

// AuthoritiesClient defines operations on authorities.
type AuthoritiesClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Add(ctx context.Context, authority interface{}, groupIDs []string) (Entity, error)
	Update(ctx context.Context, id string, update interface{}) (Entity, error)
	Delete(ctx context.Context, id string) (Entity, error)
}

// PlacesClient defines operations on places.
type PlacesClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Query() *PlacesQuery
	List(ctx context.Context, opts *QueryOptions) ([]Entity, error)
	SearchWithinRect(ctx context.Context, maxLat, minLon, minLat, maxLon float64, opts *QueryOptions) ([]Entity, error)
	SearchWithinCircle(ctx context.Context, lat, lon, radius float64, opts *QueryOptions) ([]Entity, error)
	SearchNearest(ctx context.Context, lat, lon float64, opts *QueryOptions) ([]Entity, error)
	SearchByName(ctx context.Context, prefix string, opts *QueryOptions) ([]Entity, error)
	Children(ctx context.Context, id string) ([]Entity, error)
	Add(ctx context.Context, place interface{}, tagNames []string) (Entity, error)
	Update(ctx context.Context, id string, update interface{}) (Entity, error)
	Delete(ctx context.Context, id string) (Entity, error)
	DeleteGeometry(ctx context.Context, id string) (Entity, error)
	Tags() TaggedResourceClient
	Items() PlaceItemsClient
}

// PlaceItemsClient manages the items of a place.
type PlaceItemsClient interface {
	List(ctx context.Context, id string) ([]*Item, error)
	Add(ctx context.Context, id string, item interface{}) (Entity, error)
}

// ItemsClient defines operations on items.
type ItemsClient interface {
	Get(ctx context.Context, id string) (*Item, error)
	Query() *ItemsQuery
	List(ctx context.Context, opts *QueryOptions) ([]*Item, error)
	Add(ctx context.Context, item interface{}, tagNames []string) (Entity, error)
	Update(ctx context.Context, id string, update interface{}) (Entity, error)
	Delete(ctx context.Context, id string) (Entity, error)
	Tags() TaggedResourceClient
}

// TagsClient defines operations on tags.
type TagsClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Query() *TagsQuery
}

// EventsClient defines operations on events.
type EventsClient interface {
	Get(ctx context.Context, id string) (Entity, error)
	Query() *EventsQuery
}

// ReferencesClient reads public reference data.
type ReferencesClient interface {
	// GADMLevel0 lists the countries of the GADM administrative areas.
	GADMLevel0(ctx context.Context) ([]Entity, error)
	GADMLevel1(ctx context.Context, level0 string) ([]Entity, error)
	GADMLevel2(ctx context.Context, level0, level1 string) ([]Entity, error)
	GADMLevel3(ctx context.Context, level0, level1, level2 string) ([]Entity, error)
}
