package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	ProjectID string `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Token     string `json:"token,omitempty"      yaml:"token,omitempty"`
	UserID    string `json:"user_id,omitempty"    yaml:"user_id,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
}

// masked returns a copy safe for display.
func (c *Config) masked() *Config {
	shown := *c
	if shown.Token != "" {
		shown.Token = constants.MaskedSecret
	}

	return &shown
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the Geocore CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current configuration with the access token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().masked()
			out := cmd.OutOrStdout()

			renderer := &OutputRenderer[*Config]{
				RenderJSON: func(data *Config) error { return renderJSON(out, data) },
				RenderYAML: func(data *Config) error { return renderYAML(out, data) },
				RenderTable: func(data *Config) error {
					table := tablewriter.NewWriter(out)
					table.Header("Property", "Value")
					_ = table.Append("Base URL", valueOrNA(data.BaseURL))
					_ = table.Append("Project ID", valueOrNA(data.ProjectID))
					_ = table.Append("User ID", valueOrNA(data.UserID))
					_ = table.Append("Token", valueOrNA(data.Token))
					_ = table.Append("Output", valueOrNA(data.Output))

					err := table.Render()
					if err != nil {
						return fmt.Errorf("failed to render table: %w", err)
					}

					return nil
				},
			}

			return renderer.Render(config, outputFormat())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of base_url, project_id or output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Clear a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "base_url":
		config.BaseURL = value
	case "project_id":
		config.ProjectID = value
	case "output":
		switch value {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, value)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// loadConfig reads the effective configuration: flags, then GEOCORE_*
// environment variables, then the config file.
func loadConfig() *Config {
	return &Config{
		BaseURL:   viper.GetString("base_url"),
		ProjectID: viper.GetString("project_id"),
		Token:     viper.GetString("token"),
		UserID:    viper.GetString("user_id"),
		Output:    viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ConfigDirName)

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set("base_url", config.BaseURL)
	viper.Set("project_id", config.ProjectID)
	viper.Set("token", config.Token)
	viper.Set("user_id", config.UserID)

	return nil
}
