package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Library string `json:"library" yaml:"library"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Geocore CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			info := VersionInfo{
				Version: version,
				Library: constants.Version,
				Commit:  commit,
				Built:   date,
			}

			renderer := &OutputRenderer[VersionInfo]{
				RenderJSON: func(data VersionInfo) error { return renderJSON(out, data) },
				RenderYAML: func(data VersionInfo) error { return renderYAML(out, data) },
				RenderTable: func(data VersionInfo) error {
					table := tablewriter.NewWriter(out)
					table.Header("Property", "Value")
					_ = table.Append("Version", data.Version)
					_ = table.Append("Library", data.Library)
					_ = table.Append("Commit", data.Commit)
					_ = table.Append("Built", data.Built)

					err := table.Render()
					if err != nil {
						return fmt.Errorf("failed to render table: %w", err)
					}

					return nil
				},
			}

			return renderer.Render(info, outputFormat())
		},
	}
}
