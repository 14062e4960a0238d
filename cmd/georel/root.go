package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/georel"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

var (
	configFile string
	tolerance  float64
)

// configData holds the settings that can be given in the configuration
// file.
type configData struct {
	// Tolerance is the distance within which two points are considered
	// coincident during predicate evaluation.
	Tolerance float64
}

var rootCmd = &cobra.Command{
	Use:   "georel",
	Short: "Evaluate topological relations between geometries.",
	Long: `georel evaluates the nine pairwise spatial relation predicates
(Contains, Crosses, Disjoint, Equals, Intersects, OrderingEquals,
Overlaps, Touches, and Within) between planar geometries given as
GeoJSON or shapefiles.`,
	SilenceUsage: true,
}

// startup reads the configuration file, if there is one, and resolves
// the evaluation tolerance. An explicit --tolerance flag wins over the
// configuration file.
func startup() error {
	if configFile == "" {
		return nil
	}
	f, err := os.Open(configFile)
	if err != nil {
		return fmt.Errorf("georel: while opening configuration file: %v", err)
	}
	defer f.Close()
	cfg := configData{Tolerance: georel.DefaultTolerance}
	if _, err := toml.DecodeReader(f, &cfg); err != nil {
		return fmt.Errorf("georel: while reading configuration file %s: %v", configFile, err)
	}
	if !rootCmd.PersistentFlags().Changed("tolerance") {
		tolerance = cfg.Tolerance
	}
	logger.Debugf("using tolerance %g", tolerance)
	return nil
}

func init() {
	// Wired here rather than in the struct literal: startup reads the
	// command's flag set, so the literal would refer to itself.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return startup()
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Configuration file location.")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", georel.DefaultTolerance,
		"Distance within which two points are considered coincident.")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of georel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("georel v%s\n", georel.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
