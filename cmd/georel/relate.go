package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/georel"
	"github.com/spatialmodel/georel/geom"
	"github.com/spatialmodel/georel/geom/encoding/geojson"
	"github.com/spatialmodel/georel/geom/encoding/shp"
)

var predicateName string

func init() {
	relateCmd.Flags().StringVarP(&predicateName, "pred", "p", "",
		"Predicate to evaluate (e.g. intersects); if empty, print the DE-9IM matrix.")
	rootCmd.AddCommand(relateCmd)
}

var relateCmd = &cobra.Command{
	Use:   "relate geometryA geometryB",
	Short: "Relate two geometries",
	Long: `Relate evaluates a named predicate between two geometries, or
computes their full DE-9IM intersection matrix when no predicate is
given. Each geometry argument is either inline GeoJSON or the path to
a GeoJSON file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readGeometry(args[0])
		if err != nil {
			return err
		}
		b, err := readGeometry(args[1])
		if err != nil {
			return err
		}
		eval := georel.Evaluator{Tolerance: tolerance}
		if predicateName == "" {
			m, err := eval.Relate(a, b)
			if err != nil {
				return err
			}
			fmt.Println(m.String())
			return nil
		}
		pred, err := georel.ParsePredicate(predicateName)
		if err != nil {
			return err
		}
		result, err := eval.Evaluate(pred, a, b)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

// readGeometry reads a single geometry from inline GeoJSON or from a
// GeoJSON file.
func readGeometry(arg string) (geom.Geom, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		return geojson.Decode([]byte(arg))
	}
	data, err := ioutil.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("georel: while reading %s: %v", arg, err)
	}
	return geojson.Decode(data)
}

// readGeometrySet reads a set of geometries from a shapefile or a
// GeoJSON file. A GeoJSON GeometryCollection contributes its members;
// any other GeoJSON geometry contributes itself.
func readGeometrySet(path string) ([]geom.Geom, error) {
	if strings.HasSuffix(path, ".shp") {
		return shp.ReadAll(path)
	}
	g, err := readGeometry(path)
	if err != nil {
		return nil, err
	}
	if gc, ok := g.(geom.GeometryCollection); ok {
		return gc, nil
	}
	return []geom.Geom{g}, nil
}
