package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
	"github.com/mapmotion/geocore-go/pkg/geoclient"
)

const (
	// ConfigDirName is the directory under $HOME holding config.yml.
	ConfigDirName = ".geocore"

	defaultYAMLIndent = 2
)

// ErrUnknownConfigKey is returned by config set for keys it cannot change.
var ErrUnknownConfigKey = errors.New("unknown config key")

// Default list columns.
var (
	listColumns  = []string{"id", "name", "description"}
	placeColumns = []string{"id", "name", "point"}
)

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderJSON  func(data T) error
	RenderYAML  func(data T) error
	RenderTable func(data T) error
}

// Render outputs data in the specified format.
func (o *OutputRenderer[T]) Render(data T, format string) error {
	switch format {
	case constants.FormatJSON:
		return o.RenderJSON(data)
	case constants.FormatYAML:
		return o.RenderYAML(data)
	case constants.FormatTable, "":
		return o.RenderTable(data)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, format)
	}
}

func outputFormat() string {
	return viper.GetString("output")
}

func renderJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

func renderYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// plain converts entities to generic values so yaml.v3 emits their fields
// rather than raw bytes.
func plain[T any](data T) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding data: %w", err)
	}

	var value interface{}

	err = json.Unmarshal(raw, &value)
	if err != nil {
		return nil, fmt.Errorf("decoding data: %w", err)
	}

	return value, nil
}

func renderPlainYAML[T any](out io.Writer, data T) error {
	value, err := plain(data)
	if err != nil {
		return err
	}

	return renderYAML(out, value)
}

// header title-cases a field name: "created_at" becomes "Created At".
func header(field string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}

// cell formats a top-level entity field for a table.
func cell(entity geocore.Entity, field string) string {
	value, ok := entity.Field(field)
	if !ok || value == nil {
		return constants.NotAvailable
	}

	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}, []interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return constants.NotAvailable
		}

		return string(raw)
	default:
		return fmt.Sprint(v)
	}
}

// renderEntity writes one entity as a Property/Value table, fields sorted.
func renderEntity(out io.Writer, entity geocore.Entity) error {
	var fields map[string]json.RawMessage

	err := json.Unmarshal(entity, &fields)
	if err != nil {
		return fmt.Errorf("entity is not an object: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, name := range names {
		_ = table.Append(header(name), cell(entity, name))
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderEntities writes one row per entity with the given columns.
func renderEntities(out io.Writer, entities []geocore.Entity, columns []string) error {
	if len(entities) == 0 {
		_, err := fmt.Fprintln(out, "No results found")

		return err
	}

	headers := make([]string, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, header(column))
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers)

	for _, entity := range entities {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, cell(entity, column))
		}

		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func entityRenderer(out io.Writer) *OutputRenderer[geocore.Entity] {
	return &OutputRenderer[geocore.Entity]{
		RenderJSON:  func(data geocore.Entity) error { return renderJSON(out, data) },
		RenderYAML:  func(data geocore.Entity) error { return renderPlainYAML(out, data) },
		RenderTable: func(data geocore.Entity) error { return renderEntity(out, data) },
	}
}

func entitiesRenderer(out io.Writer, columns []string) *OutputRenderer[[]geocore.Entity] {
	return &OutputRenderer[[]geocore.Entity]{
		RenderJSON:  func(data []geocore.Entity) error { return renderJSON(out, data) },
		RenderYAML:  func(data []geocore.Entity) error { return renderPlainYAML(out, data) },
		RenderTable: func(data []geocore.Entity) error { return renderEntities(out, data, columns) },
	}
}

func itemEntities(items []*geocore.Item) []geocore.Entity {
	entities := make([]geocore.Entity, 0, len(items))
	for _, item := range items {
		entities = append(entities, item.Entity)
	}

	return entities
}

// showEntity fetches one entity and renders it.
func showEntity(cmd *cobra.Command, fetch func(ctx context.Context, client geocore.Client) (geocore.Entity, error)) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	entity, err := fetch(context.Background(), client)
	if err != nil {
		return err
	}

	return entityRenderer(cmd.OutOrStdout()).Render(entity, outputFormat())
}

// listEntities fetches a list and renders it with columns.
func listEntities(cmd *cobra.Command, columns []string, fetch func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error)) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	entities, err := fetch(context.Background(), client)
	if err != nil {
		return err
	}

	return entitiesRenderer(cmd.OutOrStdout(), columns).Render(entities, outputFormat())
}

// countEntities prints the result of a count query.
func countEntities(cmd *cobra.Command, count func(ctx context.Context, client geocore.Client) (int64, error)) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	total, err := count(context.Background(), client)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := &OutputRenderer[int64]{
		RenderJSON: func(data int64) error { return renderJSON(out, map[string]int64{"count": data}) },
		RenderYAML: func(data int64) error { return renderYAML(out, map[string]int64{"count": data}) },
		RenderTable: func(data int64) error {
			_, err := fmt.Fprintln(out, data)

			return err
		},
	}

	return renderer.Render(total, outputFormat())
}

// clientConfig builds a client configuration from the loaded CLI config.
func clientConfig(config *Config) *geocore.Config {
	clientConfig := &geocore.Config{
		BaseURL:     config.BaseURL,
		ProjectID:   config.ProjectID,
		AccessToken: config.Token,
	}

	if viper.GetBool("verbose") {
		clientConfig.Logger = geocore.NewConsoleLogger(os.Stderr, geocore.ParseLevel("debug"))
		clientConfig.Debug = true
	}

	return clientConfig
}

// createClient returns an authenticated client for the configured service.
func createClient() (geocore.Client, error) {
	config := loadConfig()

	if config.BaseURL == "" {
		return nil, constants.ErrNoBaseURLConfigured
	}

	if config.Token == "" {
		return nil, constants.ErrNotLoggedIn
	}

	client, err := geoclient.New(clientConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
