package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/georel"
	"github.com/spatialmodel/georel/join"
)

var (
	joinPredicate string
	joinFilter    string
)

func init() {
	joinCmd.Flags().StringVarP(&joinPredicate, "pred", "p", "intersects",
		"Predicate to join on.")
	joinCmd.Flags().StringVarP(&joinFilter, "filter", "f", "",
		"Boolean expression over predicates (e.g. 'intersects && !touches'); overrides --pred.")
	rootCmd.AddCommand(joinCmd)
}

var joinCmd = &cobra.Command{
	Use:   "join left right",
	Short: "Spatially join two geometry sets",
	Long: `Join evaluates a predicate, or a boolean expression of
predicates, between every pair of geometries from two input files and
prints the indices of the matching pairs. Inputs are shapefiles
(.shp) or GeoJSON files.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		leftGeoms, err := readGeometrySet(args[0])
		if err != nil {
			return err
		}
		rightGeoms, err := readGeometrySet(args[1])
		if err != nil {
			return err
		}
		logger.Infof("joining %d left and %d right geometries", len(leftGeoms), len(rightGeoms))
		right, err := join.NewIndex(rightGeoms)
		if err != nil {
			return err
		}
		var pairs []join.Pair
		if joinFilter != "" {
			filter, err := join.NewFilter(joinFilter, tolerance)
			if err != nil {
				return err
			}
			pairs, err = join.JoinFilter(leftGeoms, right, filter)
			if err != nil {
				return err
			}
		} else {
			pred, err := georel.ParsePredicate(joinPredicate)
			if err != nil {
				return err
			}
			pairs, err = join.Join(leftGeoms, right, pred, tolerance)
			if err != nil {
				return err
			}
		}
		for _, p := range pairs {
			fmt.Printf("%d\t%d\n", p.Left, p.Right)
		}
		logger.Infof("%d matching pairs", len(pairs))
		return nil
	},
}
