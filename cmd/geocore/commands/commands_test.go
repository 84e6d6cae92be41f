package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	return names
}

func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{"objects", NewObjectsCommand(), "objects", []string{"get", "data", "bins"}},
		{"users", NewUsersCommand(), "users", []string{"get", "groups"}},
		{"groups", NewGroupsCommand(), "groups", []string{"get", "authorities", "tags"}},
		{"places", NewPlacesCommand(), "places", []string{"get", "list", "nearest", "within-rect", "within-circle", "search", "items"}},
		{"items", NewItemsCommand(), "items", []string{"get", "list"}},
		{"tags", NewTagsCommand(), "tags", []string{"list"}},
		{"events", NewEventsCommand(), "events", []string{"list"}},
		{"ref", NewRefCommand(), "ref", []string{"gadm"}},
		{"config", NewConfigCommand(), "config", []string{"show", "set", "unset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.ElementsMatch(t, tt.subcommands, subcommandNames(tt.cmd))
		})
	}
}

func TestPlacesSearchFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      *cobra.Command
		use      string
		required []string
	}{
		{"nearest", newPlacesNearestCommand(), "nearest", []string{"lat", "lon"}},
		{"within-rect", newPlacesWithinRectCommand(), "within-rect", []string{"min-lat", "min-lon", "max-lat", "max-lon"}},
		{"within-circle", newPlacesWithinCircleCommand(), "within-circle", []string{"lat", "lon", "radius"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotNil(t, tt.cmd.RunE)

			for _, name := range tt.required {
				flag := tt.cmd.Flags().Lookup(name)
				require.NotNil(t, flag, "flag %s should exist", name)
				assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag], "flag %s should be required", name)
			}

			for _, name := range []string{"num", "page", "tags", "exclude-tags"} {
				assert.NotNil(t, tt.cmd.Flags().Lookup(name), "flag %s should exist", name)
			}
		})
	}
}

func TestGetCommandsTakeOneID(t *testing.T) {
	t.Parallel()

	for _, cmd := range []*cobra.Command{
		newObjectsGetCommand(),
		newUsersGetCommand(),
		newGroupsGetCommand(),
		newPlacesGetCommand(),
		newItemsGetCommand(),
	} {
		assert.Error(t, cmd.Args(cmd, nil), cmd.Use)
		assert.NoError(t, cmd.Args(cmd, []string{"id-1"}), cmd.Use)
		assert.Error(t, cmd.Args(cmd, []string{"id-1", "id-2"}), cmd.Use)
	}
}

func TestRefGADMArgs(t *testing.T) {
	t.Parallel()

	cmd := newRefGADMCommand()

	assert.NoError(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"JPN", "13", "101"}))
	assert.Error(t, cmd.Args(cmd, []string{"JPN", "13", "101", "x"}))
}

func TestOutputRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  string
		want    string
		wantErr error
	}{
		{format: constants.FormatJSON, want: "json"},
		{format: constants.FormatYAML, want: "yaml"},
		{format: constants.FormatTable, want: "table"},
		{format: "", want: "table"},
		{format: "xml", wantErr: constants.ErrUnknownOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var got string

			record := func(format string) func(int) error {
				return func(int) error {
					got = format

					return nil
				}
			}

			renderer := &OutputRenderer[int]{
				RenderJSON:  record("json"),
				RenderYAML:  record("yaml"),
				RenderTable: record("table"),
			}

			err := renderer.Render(1, tt.format)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Name", header("name"))
	assert.Equal(t, "Created At", header("created_at"))
}

func TestCell(t *testing.T) {
	t.Parallel()

	entity := geocore.Entity(`{"id":"PLA-1","num":3,"point":{"latitude":35.67},"empty":null}`)

	assert.Equal(t, "PLA-1", cell(entity, "id"))
	assert.Equal(t, "3", cell(entity, "num"))
	assert.Equal(t, `{"latitude":35.67}`, cell(entity, "point"))
	assert.Equal(t, constants.NotAvailable, cell(entity, "empty"))
	assert.Equal(t, constants.NotAvailable, cell(entity, "missing"))
}

func TestRenderEntities(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	entities := []geocore.Entity{
		geocore.Entity(`{"id":"TAG-1","name":"park"}`),
		geocore.Entity(`{"id":"TAG-2"}`),
	}

	require.NoError(t, renderEntities(&buf, entities, []string{"id", "name"}))

	output := buf.String()
	assert.Contains(t, output, "TAG-1")
	assert.Contains(t, output, "park")
	assert.Contains(t, output, constants.NotAvailable)

	buf.Reset()
	require.NoError(t, renderEntities(&buf, nil, listColumns))
	assert.Contains(t, buf.String(), "No results found")
}

func TestRenderEntityYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := entityRenderer(&buf).Render(geocore.Entity(`{"id":"OBJ-1","name":"Tower"}`), constants.FormatYAML)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "id: OBJ-1")
	assert.Contains(t, buf.String(), "name: Tower")
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigValue(config, "base_url", "https://api.example.com"))
	require.NoError(t, setConfigValue(config, "project_id", "PRO-1"))
	require.NoError(t, setConfigValue(config, "output", constants.FormatJSON))

	assert.Equal(t, "https://api.example.com", config.BaseURL)
	assert.Equal(t, "PRO-1", config.ProjectID)
	assert.Equal(t, constants.FormatJSON, config.Output)

	require.ErrorIs(t, setConfigValue(config, "output", "xml"), constants.ErrUnknownOutputFormat)
	require.ErrorIs(t, setConfigValue(config, "token", "abc"), ErrUnknownConfigKey)
}

func TestConfigMasked(t *testing.T) {
	t.Parallel()

	config := &Config{BaseURL: "https://api.example.com", Token: "secret"}
	shown := config.masked()

	assert.Equal(t, constants.MaskedSecret, shown.Token)
	assert.Equal(t, "secret", config.Token)
	assert.Empty(t, (&Config{}).masked().Token)
}

func TestApplyQueryFlags(t *testing.T) {
	t.Parallel()

	flags := &queryFlags{
		num:          5,
		page:         2,
		tagNames:     []string{"park", "museum"},
		exclTagNames: []string{"closed"},
	}

	query := apply(geocore.NewPlacesQuery(nil), flags)

	assert.Equal(t, "?num=5&page=2&tag_names=park%2Cmuseum&excl_tag_names=closed", query.BuildQueryParameters().Encode())
	assert.Empty(t, apply(geocore.NewTagsQuery(nil), &queryFlags{}).BuildQueryParameters().Encode())
}
