package client_test

import (
	"context"
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmotion/geocore-go/internal/client"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// resourceCall is one facade operation and the request it must produce.
type resourceCall struct {
	Name       string
	Call       func(ctx context.Context, c *client.Client) error
	WantMethod string
	WantURI    string
	WantBody   string
}

func entityCall(fn func(ctx context.Context, c *client.Client) (geocore.Entity, error)) func(ctx context.Context, c *client.Client) error {
	return func(ctx context.Context, c *client.Client) error {
		_, err := fn(ctx, c)

		return err
	}
}

func listCall(fn func(ctx context.Context, c *client.Client) ([]geocore.Entity, error)) func(ctx context.Context, c *client.Client) error {
	return func(ctx context.Context, c *client.Client) error {
		_, err := fn(ctx, c)

		return err
	}
}

func runResourceCalls(t *testing.T, result interface{}, tests []resourceCall) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			ts := newTestServer(t, result)
			c := newTestClient(t, ts, "tok-1")

			require.NoError(t, tt.Call(context.Background(), c))

			got := ts.last(t)
			assert.Equal(t, tt.WantMethod, got.Method)
			assert.Equal(t, tt.WantURI, got.URI)
			assert.Equal(t, "tok-1", got.Token)

			if tt.WantBody != "" {
				assert.JSONEq(t, tt.WantBody, string(got.Body))
			}
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEntityOperations(t *testing.T) {
	t.Parallel()

	runResourceCalls(t, map[string]string{"id": "X-1"}, []resourceCall{
		{
			Name: "objects get",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Objects().Get(ctx, "OBJ-1")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/objs/OBJ-1",
		},
		{
			Name: "object data save",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Objects().Data().AddOrUpdate(ctx, "OBJ-1", "profile", map[string]int{"age": 3})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/objs/OBJ-1/data/profile",
			WantBody:   `{"age":3}`,
		},
		{
			Name: "object bin url",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Objects().Bins().URL(ctx, "OBJ-1", "photo")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/objs/OBJ-1/bins/photo/url",
		},
		{
			Name: "relationship bin url",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Objects().RelationshipBins().URL(ctx, "OBJ-1", "OBJ-2", "photo")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/objs/relationship/OBJ-1/OBJ-2/bins/photo/url",
		},
		{
			Name: "custom data update",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Objects().CustomData().Update(ctx, "OBJ-1", "color", "red")
			}),
			WantMethod: http.MethodPut,
			WantURI:    "/objs/OBJ-1/customData/color/red",
		},
		{
			Name: "custom data delete",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Objects().CustomData().Delete(ctx, "OBJ-1", "color")
			}),
			WantMethod: http.MethodDelete,
			WantURI:    "/objs/OBJ-1/customData/color",
		},
		{
			Name: "user update",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Users().Update(ctx, "USR-1", map[string]string{"name": "Aoi"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/users/USR-1",
			WantBody:   `{"name":"Aoi"}`,
		},
		{
			Name: "group add with users",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Groups().Add(ctx, map[string]string{"name": "staff"}, []string{"USR-1", "USR-2"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/groups?user_ids=USR-1%2CUSR-2",
			WantBody:   `{"name":"staff"}`,
		},
		{
			Name: "group add without users",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Groups().Add(ctx, map[string]string{"name": "staff"}, nil)
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/groups",
		},
		{
			Name: "group delete",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Groups().Delete(ctx, "GRP-1")
			}),
			WantMethod: http.MethodDelete,
			WantURI:    "/groups/GRP-1",
		},
		{
			Name: "authority add with groups",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Authorities().Add(ctx, map[string]string{"name": "edit"}, []string{"GRP-1"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/auths?group_ids=GRP-1",
		},
		{
			Name: "place add with tags",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Places().Add(ctx, map[string]string{"name": "Shibuya"}, []string{"station"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/places?tag_names=station",
		},
		{
			Name: "place geometry delete",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Places().DeleteGeometry(ctx, "PLA-1")
			}),
			WantMethod: http.MethodDelete,
			WantURI:    "/places/PLA-1/geometry",
		},
		{
			Name: "place tags update",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Places().Tags().Update(ctx, "PLA-1", []string{"park", "free"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/places/PLA-1/tags?tag_names=park%2Cfree",
		},
		{
			Name: "item tags delete",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Items().Tags().Delete(ctx, "ITM-1", []string{"old"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/items/ITM-1/tags?del_tag_names=old",
		},
		{
			Name: "place item add",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Places().Items().Add(ctx, "PLA-1", map[string]string{"name": "Coffee"})
			}),
			WantMethod: http.MethodPost,
			WantURI:    "/places/PLA-1/items",
			WantBody:   `{"name":"Coffee"}`,
		},
		{
			Name: "item delete",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Items().Delete(ctx, "ITM-1")
			}),
			WantMethod: http.MethodDelete,
			WantURI:    "/items/ITM-1",
		},
		{
			Name: "tag get",
			Call: entityCall(func(ctx context.Context, c *client.Client) (geocore.Entity, error) {
				return c.Tags().Get(ctx, "TAG-1")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/tags/TAG-1",
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestListOperations(t *testing.T) {
	t.Parallel()

	runResourceCalls(t, []map[string]string{{"id": "X-1"}}, []resourceCall{
		{
			Name: "object data list",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Objects().Data().List(ctx, "OBJ-1")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/objs/OBJ-1/data",
		},
		{
			Name: "relationship bins",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Objects().RelationshipBins().List(ctx, "OBJ-1", "OBJ-2")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/objs/relationship/OBJ-1/OBJ-2/bins",
		},
		{
			Name: "user groups",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Users().Groups(ctx, "USR-1")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/users/USR-1/groups",
		},
		{
			Name: "places list with options",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().List(ctx, geocore.NewCommonOptions().SetNum(10).SetTagNames([]string{"park"}).Data())
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places?num=10&tag_names=park",
		},
		{
			Name: "places within rectangle",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().SearchWithinRect(ctx, 36, 139, 35, 140, nil)
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places/search/within/rect?max_lat=36&min_lon=139&min_lat=35&max_lon=140",
		},
		{
			Name: "places within circle with paging",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().SearchWithinCircle(ctx, 35.67, 139.72, 1.5, geocore.NewCommonOptions().SetPage(2).Data())
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places/search/within/circle?lat=35.67&lon=139.72&radius=1.5&page=2",
		},
		{
			Name: "places nearest",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().SearchNearest(ctx, 35.67, 139.72, nil)
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places/search/nearest?lat=35.67&lon=139.72",
		},
		{
			Name: "places by name encodes the prefix",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().SearchByName(ctx, "Shin Osaka/駅", geocore.NewCommonOptions().SetNum(3).Data())
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places/search/name/Shin%20Osaka%2F%E9%A7%85?num=3",
		},
		{
			Name: "place children",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().Children(ctx, "PLA-1")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places/PLA-1/children",
		},
		{
			Name: "place tags",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Places().Tags().List(ctx, "PLA-1")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/places/PLA-1/tags",
		},
		{
			Name: "gadm countries",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.References().GADMLevel0(ctx)
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/public/ref/gadm",
		},
		{
			Name: "gadm third level",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.References().GADMLevel3(ctx, "JPN", "13", "101")
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/public/ref/gadm/JPN/13/101",
		},
		{
			Name: "events query",
			Call: listCall(func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) {
				return c.Events().Query().WithTagNames([]string{"music"}).WithNumberPerPage(5).All(ctx)
			}),
			WantMethod: http.MethodGet,
			WantURI:    "/events?num=5&tag_names=music",
		},
	})
}

func TestMissingIDsFailLocally(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, map[string]string{})
	c := newTestClient(t, ts, "tok-1")
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() error
		parameter string
	}{
		{"object get", entityCallOn(ctx, c, func(ctx context.Context, c *client.Client) (geocore.Entity, error) { return c.Objects().Get(ctx, "") }), "id"},
		{"object data key", entityCallOn(ctx, c, func(ctx context.Context, c *client.Client) (geocore.Entity, error) { return c.Objects().Data().Get(ctx, "OBJ-1", "") }), "key"},
		{"relationship second id", listCallOn(ctx, c, func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) { return c.Objects().RelationshipBins().List(ctx, "OBJ-1", "") }), "id2"},
		{"places by name", listCallOn(ctx, c, func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) { return c.Places().SearchByName(ctx, "", nil) }), "prefix"},
		{"gadm level", listCallOn(ctx, c, func(ctx context.Context, c *client.Client) ([]geocore.Entity, error) { return c.References().GADMLevel2(ctx, "JPN", "") }), "level1"},
		{"tags update", entityCallOn(ctx, c, func(ctx context.Context, c *client.Client) (geocore.Entity, error) { return c.Items().Tags().Update(ctx, "", []string{"a"}) }), "id"},
	}

	for _, tt := range tests {
		err := tt.call()

		var missingErr *geocore.MissingParameterError
		require.ErrorAs(t, err, &missingErr, tt.name)
		assert.Equal(t, tt.parameter, missingErr.Name, tt.name)
	}

	assert.Zero(t, ts.count())
}

func entityCallOn(ctx context.Context, c *client.Client, fn func(ctx context.Context, c *client.Client) (geocore.Entity, error)) func() error {
	return func() error { return entityCall(fn)(ctx, c) }
}

func listCallOn(ctx context.Context, c *client.Client, fn func(ctx context.Context, c *client.Client) ([]geocore.Entity, error)) func() error {
	return func() error { return listCall(fn)(ctx, c) }
}

func TestObjectBinUpload(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, map[string]string{"url": "https://cdn.example.com/photo"})
	c := newTestClient(t, ts, "tok-1")

	result, err := c.Objects().Bins().Upload(context.Background(), "OBJ-1", "photo", &geocore.Upload{
		Filename: "photo.jpg",
		Content:  []byte("jpeg bytes"),
	})
	require.NoError(t, err)

	url, ok := result.Field("url")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/photo", url)

	got := ts.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/objs/OBJ-1/bins/photo", got.URI)

	mediaType, params, err := mime.ParseMediaType(got.ContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(strings.NewReader(string(got.Body)), params["boundary"])

	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "data", part.FormName())
	assert.Equal(t, "photo.jpg", part.FileName())
}

func TestItemsBound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, []map[string]string{{"id": "ITM-1"}})
	c := newTestClient(t, ts, "tok-1")

	items, err := c.Places().Items().List(context.Background(), "PLA-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "/places/PLA-1/items", ts.last(t).URI)

	_, err = items[0].Places(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/items/ITM-1/places", ts.last(t).URI)

	listed, err := c.Items().List(context.Background(), geocore.NewQueryOptions().Set("num", 1))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "/items?num=1", ts.last(t).URI)

	raw, err := json.Marshal(listed[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"ITM-1"}`, string(raw))
}
