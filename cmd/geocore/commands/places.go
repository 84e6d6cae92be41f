package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// NewPlacesCommand creates the places command group.
func NewPlacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "places",
		Aliases: []string{"place"},
		Short:   "Inspect and search places",
		Long:    "Read Geocore places and run geographic searches",
	}

	cmd.AddCommand(newPlacesGetCommand())
	cmd.AddCommand(newPlacesListCommand())
	cmd.AddCommand(newPlacesNearestCommand())
	cmd.AddCommand(newPlacesWithinRectCommand())
	cmd.AddCommand(newPlacesWithinCircleCommand())
	cmd.AddCommand(newPlacesSearchCommand())
	cmd.AddCommand(newPlacesItemsCommand())

	return cmd
}

func newPlacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLACE_ID",
		Short: "Get place details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showEntity(cmd, func(ctx context.Context, client geocore.Client) (geocore.Entity, error) {
				return client.Places().Get(ctx, args[0])
			})
		},
	}
}

func newPlacesListCommand() *cobra.Command {
	var (
		flags       queryFlags
		checkinable bool
		count       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := func(client geocore.Client) *geocore.PlacesQuery {
				q := apply(client.Places().Query(), &flags)
				if checkinable {
					q = q.OnlyCheckinable()
				}

				return q
			}

			if count {
				return countEntities(cmd, func(ctx context.Context, client geocore.Client) (int64, error) {
					return query(client).Count(ctx)
				})
			}

			return listEntities(cmd, placeColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return query(client).All(ctx)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&checkinable, "checkinable", false, "only places that accept check-ins")
	cmd.Flags().BoolVar(&count, "count", false, "print the number of matching places")

	return cmd
}

func newPlacesNearestCommand() *cobra.Command {
	var (
		flags    queryFlags
		lat, lon float64
	)

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the places nearest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, placeColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return apply(client.Places().Query(), &flags).SetCenter(lat, lon).Nearest(ctx)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the center")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of the center")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func newPlacesWithinRectCommand() *cobra.Command {
	var (
		flags                          queryFlags
		minLat, minLon, maxLat, maxLon float64
	)

	cmd := &cobra.Command{
		Use:   "within-rect",
		Short: "Find the places inside a rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, placeColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return apply(client.Places().Query(), &flags).
					SetRectangle(minLat, minLon, maxLat, maxLon).
					WithinRectangle(ctx)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&minLat, "min-lat", 0, "southern latitude")
	cmd.Flags().Float64Var(&minLon, "min-lon", 0, "western longitude")
	cmd.Flags().Float64Var(&maxLat, "max-lat", 0, "northern latitude")
	cmd.Flags().Float64Var(&maxLon, "max-lon", 0, "eastern longitude")

	for _, name := range []string{"min-lat", "min-lon", "max-lat", "max-lon"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newPlacesWithinCircleCommand() *cobra.Command {
	var (
		flags            queryFlags
		lat, lon, radius float64
	)

	cmd := &cobra.Command{
		Use:   "within-circle",
		Short: "Find the places inside a circle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, placeColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				return apply(client.Places().Query(), &flags).
					SetCenter(lat, lon).
					SetRadius(radius).
					WithinCircle(ctx)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the center")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of the center")
	cmd.Flags().Float64Var(&radius, "radius", 0, "radius in kilometers")

	for _, name := range []string{"lat", "lon", "radius"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newPlacesSearchCommand() *cobra.Command {
	var num, page int

	cmd := &cobra.Command{
		Use:   "search PREFIX",
		Short: "Find places whose name starts with PREFIX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, placeColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				opts := geocore.NewCommonOptions().SetNum(num).SetPage(page)

				return client.Places().SearchByName(ctx, args[0], opts.Data())
			})
		},
	}

	cmd.Flags().IntVar(&num, "num", 0, "results per page")
	cmd.Flags().IntVar(&page, "page", 0, "page number")

	return cmd
}

func newPlacesItemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "items PLACE_ID",
		Short: "List the items of a place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEntities(cmd, listColumns, func(ctx context.Context, client geocore.Client) ([]geocore.Entity, error) {
				items, err := client.Places().Items().List(ctx, args[0])
				if err != nil {
					return nil, err
				}

				return itemEntities(items), nil
			})
		},
	}
}
