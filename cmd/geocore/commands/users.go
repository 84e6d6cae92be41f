package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect users",
		Long:    "Read Geocore users and their group memberships",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersGroupsCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
				return client.Users().Get(ctx, args[0])
			})
		},
	}
}

func newUsersGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups USER_ID",
		Short: "List the groups of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return client.Users().Groups(ctx, args[0])
			})
		},
	}
}
