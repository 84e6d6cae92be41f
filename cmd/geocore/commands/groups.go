package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Inspect user groups",
		Long:    "Read Geocore groups with their authorities and tags",
	}

	cmd.AddCommand(newGroupsGetCommand())
	cmd.AddCommand(newGroupsAuthoritiesCommand())
	cmd.AddCommand(newGroupsTagsCommand())

	return cmd
}

func newGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Get group details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
				return client.Groups().Get(ctx, args[0])
			})
		},
	}
}

func newGroupsAuthoritiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "authorities GROUP_ID",
		Short: "List the authorities of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return client.Groups().Query().WithID(args[0]).Authorities(ctx)
			})
		},
	}
}

func newGroupsTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags GROUP_ID",
		Short: "List the tags of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return client.Groups().Query().WithID(args[0]).Tags(ctx)
			})
		},
	}
}
