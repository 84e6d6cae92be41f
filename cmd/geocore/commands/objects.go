package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewObjectsCommand creates the objects command group.
func NewObjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objects",
		Aliases: []string{"object", "objs"},
		Short:   "Inspect generic objects",
		Long:    "Read any Geocore object by ID along with its data and binaries",
	}

	cmd.AddCommand(newObjectsGetCommand())
	cmd.AddCommand(newObjectsDataCommand())
	cmd.AddCommand(newObjectsBinsCommand())

	return cmd
}

func newObjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OBJECT_ID",
		Short: "Get object details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
				return client.Objects().Get(ctx, args[0])
			})
		},
	}
}

func newObjectsDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data OBJECT_ID [KEY]",
		Short: "List an object's data documents or get one by key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
					return client.Objects().Data().Get(ctx, args[0], args[1])
				})
			}

			return listEntities(cmd, []string{"key", "value"}, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return client.Objects().Data().List(ctx, args[0])
			})
		},
	}
}

func newObjectsBinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bins OBJECT_ID [KEY]",
		Short: "List an object's binaries or get the URL of one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
					return client.Objects().Bins().URL(ctx, args[0], args[1])
				})
			}

			return listEntities(cmd, []string{"key", "url"}, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return client.Objects().Bins().List(ctx, args[0])
			})
		},
	}
}
