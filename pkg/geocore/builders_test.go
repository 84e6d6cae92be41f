package geocore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	Method string
	Path   string
}

// fakeRequester records calls and answers every one with result.
type fakeRequester struct {
	mu     sync.Mutex
	calls  []call
	result json.RawMessage
	err    error
}

func (f *fakeRequester) Do(_ context.Context, method, path string, _ interface{}) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{Method: method, Path: path})

	return f.result, f.err
}

func (f *fakeRequester) lastCall(t *testing.T) call {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.calls)

	return f.calls[len(f.calls)-1]
}

func newFake(result string) *fakeRequester {
	return &fakeRequester{result: json.RawMessage(result)}
}

func TestSettersReturnSameBuilder(t *testing.T) {
	t.Parallel()

	q := NewPlacesQuery(nil)

	assert.Same(t, q, q.WithID("PLA-1"))
	assert.Same(t, q, q.WithName("Tokyo"))
	assert.Same(t, q, q.SetNum(5))
	assert.Same(t, q, q.WithTagNames([]string{"park"}))
	assert.Same(t, q, q.SetCenter(1, 2))
	assert.Same(t, q, q.HavingCustomData("v", "k"))
}

func TestTerminalPaths(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		run      func(r Requester) error
		expected call
	}{
		{
			name: "places with num",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).SetNum(5).All(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/places?num=5"},
		},
		{
			name: "places nearest",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).SetCenter(35.67, 139.72).Nearest(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/places/search/nearest?lat=35.67&lon=139.72"},
		},
		{
			name: "places within circle with paging and checkinable",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).
					SetCenter(35.5, 139.5).
					SetRadius(2).
					WithPage(3).
					OnlyCheckinable().
					WithinCircle(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/places/search/within/circle?lat=35.5&lon=139.5&radius=2&page=3&checkinable=true"},
		},
		{
			name: "places within rectangle",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).SetRectangle(35, 139, 36, 140).WithinRectangle(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/places/search/within/rect?max_lat=36&min_lon=139&min_lat=35&max_lon=140"},
		},
		{
			name: "tags excluded",
			run: func(r Requester) error {
				_, err := NewTagsQuery(r).
					ExcludeTagIDs([]string{"TAG-1", "TAG-2"}).
					ExcludeTagNames([]string{"old"}).
					WithTagDetails().
					All(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/tags?excl_tag_ids=TAG-1%2CTAG-2&excl_tag_names=old&tag_detail=true"},
		},
		{
			name: "events dates and ordering",
			run: func(r Requester) error {
				_, err := NewEventsQuery(r).
					OrderByRecentlyCreated().
					UpdatedAfter(since).
					All(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/events?recent_created=true&update_after=2024%2F03%2F01%2009%3A30%3A00"},
		},
		{
			name: "custom data filter first",
			run: func(r Requester) error {
				_, err := NewObjectsQuery(r).HavingCustomData("red", "color").WithName("Tower").All(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/objs?custom_data_key=color&custom_data_value=red&name=Tower"},
		},
		{
			name: "get by id",
			run: func(r Requester) error {
				_, err := NewObjectsQuery(r).WithID("OBJ-1").Get(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/objs/OBJ-1"},
		},
		{
			name: "group authorities",
			run: func(r Requester) error {
				_, err := NewGroupsQuery(r).WithID("GRP-1").Authorities(context.Background())

				return err
			},
			expected: call{http.MethodGet, "/groups/GRP-1/auths"},
		},
		{
			name: "update custom data",
			run: func(r Requester) error {
				_, err := NewObjectsQuery(r).WithID("OBJ-1").HavingCustomData("red", "color").UpdateCustomData(context.Background())

				return err
			},
			expected: call{http.MethodPut, "/objs/OBJ-1/customData/color/red"},
		},
		{
			name: "delete custom data",
			run: func(r Requester) error {
				_, err := NewObjectsQuery(r).WithID("OBJ-1").WithCustomDataKey("color").DeleteCustomData(context.Background())

				return err
			},
			expected: call{http.MethodDelete, "/objs/OBJ-1/customData/color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := newFake(`[]`)

			require.NoError(t, tt.run(fake))
			assert.Equal(t, tt.expected, fake.lastCall(t))
		})
	}
}

func TestTerminalsRequireSetters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name      string
		run       func(r Requester) error
		parameter string
	}{
		{
			name: "get without id",
			run: func(r Requester) error {
				_, err := NewObjectsQuery(r).Get(ctx)

				return err
			},
			parameter: "id",
		},
		{
			name: "nearest without center",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).Nearest(ctx)

				return err
			},
			parameter: "center",
		},
		{
			name: "circle without radius",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).SetCenter(1, 2).WithinCircle(ctx)

				return err
			},
			parameter: "radius",
		},
		{
			name: "rectangle without bounds",
			run: func(r Requester) error {
				_, err := NewPlacesQuery(r).WithinRectangle(ctx)

				return err
			},
			parameter: "rectangle",
		},
		{
			name: "custom data without key",
			run: func(r Requester) error {
				_, err := NewObjectsQuery(r).WithID("OBJ-1").UpdateCustomData(ctx)

				return err
			},
			parameter: "customDataKey",
		},
		{
			name: "group tags without id",
			run: func(r Requester) error {
				_, err := NewGroupsQuery(r).Tags(ctx)

				return err
			},
			parameter: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := newFake(`{}`)

			err := tt.run(fake)

			var missingErr *MissingParameterError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.parameter, missingErr.Name)
			assert.Empty(t, fake.calls, "no request is issued")
		})
	}
}

func TestPlacesReservedTerminals(t *testing.T) {
	t.Parallel()

	fake := newFake(`[]`)
	q := NewPlacesQuery(fake).WithID("PLA-1")

	_, err := q.Events(context.Background())
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = q.EventRelationships(context.Background())
	require.ErrorIs(t, err, ErrNotImplemented)

	assert.Empty(t, fake.calls)
}

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   string
		expected int64
		wantErr  bool
	}{
		{name: "bare number", result: `42`, expected: 42},
		{name: "wrapped", result: `{"count":7}`, expected: 7},
		{name: "not a number", result: `"many"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := newFake(tt.result)

			count, err := NewItemsQuery(fake).WithTagIDs([]string{"TAG-1"}).Count(context.Background())
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
			assert.Equal(t, call{http.MethodGet, "/items/count?tag_ids=TAG-1"}, fake.lastCall(t))
		})
	}
}

func TestUnboundBuilder(t *testing.T) {
	t.Parallel()

	_, err := NewTagsQuery(nil).All(context.Background())
	require.ErrorIs(t, err, ErrNoRequester)
}

func TestTerminalWrapsRequesterError(t *testing.T) {
	t.Parallel()

	svcErr := &ServiceError{Code: 4, Message: "bad"}
	fake := &fakeRequester{err: svcErr}

	_, err := NewEventsQuery(fake).All(context.Background())
	require.ErrorIs(t, err, svcErr)
	assert.True(t, IsServiceError(err))
}

func TestItemsQueryBindsItems(t *testing.T) {
	t.Parallel()

	fake := newFake(`[{"id":"ITM-1"},{"id":"ITM-2"}]`)

	items, err := NewItemsQuery(fake).All(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ITM-2", items[1].ID())

	fake.result = json.RawMessage(`[{"id":"EVT-1"}]`)

	events, err := items[0].Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "EVT-1", events[0].ID())
	assert.Equal(t, call{http.MethodGet, "/items/ITM-1/events"}, fake.lastCall(t))

	_, err = items[1].Places(context.Background())
	require.NoError(t, err)
	assert.Equal(t, call{http.MethodGet, "/items/ITM-2/places"}, fake.lastCall(t))
}

func TestItemWithoutID(t *testing.T) {
	t.Parallel()

	fake := newFake(`[]`)
	item := NewItem(Entity(`{"name":"no id"}`), fake)

	_, err := item.Events(context.Background())
	require.True(t, errors.Is(err, ErrMissingParameter))
	assert.Empty(t, fake.calls)
}

func TestEntity(t *testing.T) {
	t.Parallel()

	entity := Entity(`{"id":"PLA-1","name":"Shibuya","point":{"latitude":35.66}}`)

	assert.Equal(t, "PLA-1", entity.ID())

	name, ok := entity.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "Shibuya", name)

	_, ok = entity.Field("missing")
	assert.False(t, ok)

	var place struct {
		Point struct {
			Latitude float64 `json:"latitude"`
		} `json:"point"`
	}

	require.NoError(t, entity.Decode(&place))
	assert.InDelta(t, 35.66, place.Point.Latitude, 1e-9)

	encoded, err := json.Marshal(map[string]Entity{"place": entity})
	require.NoError(t, err)
	assert.JSONEq(t, `{"place":{"id":"PLA-1","name":"Shibuya","point":{"latitude":35.66}}}`, string(encoded))

	assert.Empty(t, Entity(`[1]`).ID())
}
