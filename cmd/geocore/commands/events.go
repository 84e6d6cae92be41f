package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Inspect events",
	}

	cmd.AddCommand(newEventsListCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		flags  queryFlags
		recent bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				query := apply(client.Events().Query(), &flags)
				if recent {
					query = query.OrderByRecentlyCreated()
				}

				return query.All(ctx)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&recent, "recent", false, "most recently created first")

	return cmd
}
