package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Inspect items",
		Long:    "Read Geocore items with their events and places",
	}

	cmd.AddCommand(newItemsGetCommand())
	cmd.AddCommand(newItemsListCommand())

	return cmd
}

func newItemsGetCommand() *cobra.Command {
	var (
		events bool
		places bool
	)

	cmd := &cobra.Command{
		Use:   "get ITEM_ID",
		Short: "Get item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if events || places {
				return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
					item, err := client.Items().Get(ctx, args[0])
					if err != nil {
						return nil, err
					}

					if events {
						return item.Events(ctx)
					}

					return item.Places(ctx)
				})
			}

			return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
				item, err := client.Items().Get(ctx, args[0])
				if err != nil {
					return nil, err
				}

				return item.Entity, nil
			})
		},
	}

	cmd.Flags().BoolVar(&events, "events", false, "list the events of the item instead")
	cmd.Flags().BoolVar(&places, "places", false, "list the places of the item instead")
	cmd.MarkFlagsMutuallyExclusive("events", "places")

	return cmd
}

func newItemsListCommand() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				items, err := apply(client.Items().Query(), &flags).All(ctx)
				if err != nil {
					return nil, err
				}

				return itemEntities(items), nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}
