// Package cmd implements the mrtroute command line.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randytsao24/mrtroute/internal/models"
	"github.com/randytsao24/mrtroute/internal/network"
)

var (
	networkFile string
	debugFlag   bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:          "mrtroute",
	Short:        "Find rail routes between two points",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debugFlag {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultNetwork := os.Getenv("NETWORK_FILE")
	if defaultNetwork == "" {
		defaultNetwork = "data/network.yaml"
	}

	rootCmd.PersistentFlags().StringVarP(&networkFile, "network", "n", defaultNetwork, "Network descriptor (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "v", false, "Enable debug logs")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(routesCmd, nearestCmd, stationsCmd, linesCmd)
}

func loadNetwork() (*network.Network, error) {
	net, err := network.LoadFile(networkFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("network loaded", "file", networkFile, "stations", net.StationCount(), "lines", net.LineCount())
	return net, nil
}

// parseCoordinate reads "lat,lng"
func parseCoordinate(s string) (models.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.Coordinate{}, fmt.Errorf("coordinate %q: want lat,lng", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Coordinate{}, fmt.Errorf("coordinate %q: invalid latitude", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lng < -180 || lng > 180 {
		return models.Coordinate{}, fmt.Errorf("coordinate %q: invalid longitude", s)
	}

	return models.Coordinate{Lat: lat, Lng: lng}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
