package geocore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// Requester performs one call against the service and returns the unwrapped
// envelope result. Builders and bound entities issue their calls through it.
type Requester interface {
	Do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error)
}

// Entity is an opaque JSON document returned by the service. Its schema is
// owned by the service.
type Entity json.RawMessage

// MarshalJSON returns the raw document.
func (e Entity) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}

	return e, nil
}

// UnmarshalJSON stores a copy of the raw document.
func (e *Entity) UnmarshalJSON(data []byte) error {
	if e == nil {
		return fmt.Errorf("geocore.Entity: UnmarshalJSON on nil pointer")
	}

	*e = append((*e)[0:0], data...)

	return nil
}

// Decode unmarshals the document into v.
func (e Entity) Decode(v interface{}) error {
	err := json.Unmarshal(e, v)
	if err != nil {
		return fmt.Errorf("decoding entity: %w", err)
	}

	return nil
}

// ID returns the "id" field of the document, or "" when absent.
func (e Entity) ID() string {
	var head struct {
		ID string `json:"id"`
	}

	if len(e) == 0 || json.Unmarshal(e, &head) != nil {
		return ""
	}

	return head.ID
}

// Field returns a top-level field of the document.
func (e Entity) Field(name string) (interface{}, bool) {
	var fields map[string]interface{}

	if len(e) == 0 || json.Unmarshal(e, &fields) != nil {
		return nil, false
	}

	value, ok := fields[name]

	return value, ok
}

// Item is an item entity bound to the requester that fetched it.
type Item struct {
	Entity

	requester Requester
}

// NewItem binds an item document to a requester.
func NewItem(entity Entity, requester Requester) *Item {
	return &Item{Entity: entity, requester: requester}
}

// Events lists the events the item belongs to.
func (i *Item) Events(ctx context.Context) ([]Entity, error) {
	return i.related(ctx, "events")
}

// Places lists the places the item belongs to.
func (i *Item) Places(ctx context.Context) ([]Entity, error) {
	return i.related(ctx, "places")
}

func (i *Item) related(ctx context.Context, resource string) ([]Entity, error) {
	id := i.ID()
	if id == "" {
		return nil, missing("id")
	}

	path := constants.APIPathItems + "/" + id + "/" + resource

	result, err := i.requester.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing item %s: %w", resource, err)
	}

	var entities []Entity

	err = decodeResult(result, &entities)
	if err != nil {
		return nil, err
	}

	return entities, nil
}

// Upload is a binary attachment sent as a multipart form.
type Upload struct {
	Field    string
	Filename string
	Content  []byte
}
