package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewRefCommand creates the reference data command group.
func NewRefCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ref",
		Aliases: []string{"reference"},
		Short:   "Read public reference data",
	}

	cmd.AddCommand(newRefGADMCommand())

	return cmd
}

func newRefGADMCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gadm [LEVEL0 [LEVEL1 [LEVEL2]]]",
		Short: "List GADM administrative areas",
		Long: `List the GADM administrative areas one level below the given path.

With no arguments the countries are listed; each argument narrows the
listing by one level.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				refs := client.References()

				switch len(args) {
				case 0:
					return refs.GADMLevel0(ctx)
				case 1:
					return refs.GADMLevel1(ctx, args[0])
				case 2:
					return refs.GADMLevel2(ctx, args[0], args[1])
				default:
					return refs.GADMLevel3(ctx, args[0], args[1], args[2])
				}
			})
		},
	}
}
