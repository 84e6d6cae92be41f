package geocore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// ErrNoRequester is returned by a terminal method of a builder that was not
// created through a client.
var ErrNoRequester = errors.New("builder is not bound to a client")

// Builder is implemented by every request builder. Lower layers call it on
// the concrete builder so that terminal methods see the parameters of every
// layer.
type Builder interface {
	BuildQueryParameters() *QueryOptions
}

// Operation is the base layer of every request builder. Q is the concrete
// builder type returned by the chained setters.
type Operation[Q Builder] struct {
	self      Q
	requester Requester
	basePath  string

	id              string
	customDataKey   string
	customDataValue string
}

func (o *Operation[Q]) bind(self Q, requester Requester, basePath string) {
	o.self = self
	o.requester = requester
	o.basePath = basePath
}

// WithID sets the id (system id or human id) of the addressed entity.
func (o *Operation[Q]) WithID(id string) Q {
	o.id = id

	return o.self
}

// WithCustomDataKey sets the custom data key.
func (o *Operation[Q]) WithCustomDataKey(key string) Q {
	o.customDataKey = key

	return o.self
}

// HavingCustomData sets the custom data value, then its key.
func (o *Operation[Q]) HavingCustomData(value, key string) Q {
	o.customDataValue = value
	o.customDataKey = key

	return o.self
}

// ID returns the id set with WithID.
func (o *Operation[Q]) ID() string {
	return o.id
}

// BasePath returns the resource path the builder targets.
func (o *Operation[Q]) BasePath() string {
	return o.basePath
}

// BuildQueryParameters returns the custom data filter, if any.
func (o *Operation[Q]) BuildQueryParameters() *QueryOptions {
	params := NewQueryOptions()

	if o.customDataKey != "" {
		params.Set(constants.ParamCustomDataKey, o.customDataKey)

		if o.customDataValue != "" {
			params.Set(constants.ParamCustomDataValue, o.customDataValue)
		}
	}

	return params
}

// UpdateCustomData sets the custom data value under the key on the entity.
func (o *Operation[Q]) UpdateCustomData(ctx context.Context) (Entity, error) {
	if o.id == "" {
		return nil, missing("id")
	}

	if o.customDataKey == "" {
		return nil, missing("customDataKey")
	}

	path := o.basePath + "/" + o.id + "/customData/" + o.customDataKey + "/" + o.customDataValue

	return o.entity(ctx, http.MethodPut, path, "updating custom data")
}

// DeleteCustomData removes the custom data key from the entity.
func (o *Operation[Q]) DeleteCustomData(ctx context.Context) (Entity, error) {
	if o.id == "" {
		return nil, missing("id")
	}

	if o.customDataKey == "" {
		return nil, missing("customDataKey")
	}

	path := o.basePath + "/" + o.id + "/customData/" + o.customDataKey

	return o.entity(ctx, http.MethodDelete, path, "deleting custom data")
}

func (o *Operation[Q]) do(ctx context.Context, method, path string) (json.RawMessage, error) {
	if o.requester == nil {
		return nil, ErrNoRequester
	}

	return o.requester.Do(ctx, method, path, nil)
}

func (o *Operation[Q]) entity(ctx context.Context, method, path, action string) (Entity, error) {
	result, err := o.do(ctx, method, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return Entity(result), nil
}

func (o *Operation[Q]) entities(ctx context.Context, path, action string) ([]Entity, error) {
	result, err := o.do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	var entities []Entity

	err = decodeResult(result, &entities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return entities, nil
}
