package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randytsao24/mrtroute/internal/itinerary"
	"github.com/randytsao24/mrtroute/internal/location"
	"github.com/randytsao24/mrtroute/internal/routing"
)

var (
	fromArg        string
	toArg          string
	limitArg       int
	nearestLimit   int
	bidirectional  bool
	explicitChange bool
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List ranked routes between two coordinates",
	Example: `  mrtroute routes --from 1.322522,103.815403 --to 1.29321,103.852216
  mrtroute routes -f 1.3225,103.8154 -t 1.2932,103.8522 --limit 0 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, err := parseCoordinate(fromArg)
		if err != nil {
			return err
		}
		destination, err := parseCoordinate(toArg)
		if err != nil {
			return err
		}

		net, err := loadNetwork()
		if err != nil {
			return err
		}

		finder := routing.NewFinder(net, routing.Options{
			BidirectionalTransfers: bidirectional,
			ExplicitChanges:        explicitChange,
		})
		routes := finder.FindRoutes(origin, destination)
		its := itinerary.NewBuilder(net).BuildAll(routes, limitArg, finder.TotalDistanceKm)

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), its)
		}
		printItineraries(cmd.OutOrStdout(), its, len(routes))
		return nil
	},
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <lat,lng>",
	Short: "List the stations closest to a coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		point, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}

		net, err := loadNetwork()
		if err != nil {
			return err
		}

		stations := location.NewLocator(net).Closest(point, nearestLimit)
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), stations)
		}
		for _, s := range stations {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-32s %s\n", s.ID, s.Name, itinerary.FormatKm(s.DistanceKm))
		}
		return nil
	},
}

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List every station in the network",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := loadNetwork()
		if err != nil {
			return err
		}

		stations := net.Stations()
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), stations)
		}
		for _, s := range stations {
			lines := routing.LinesThrough(net, s.ID, "")
			ids := make([]string, len(lines))
			for i, c := range lines {
				ids[i] = c.Line
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-32s %s\n", s.ID, s.Name, strings.Join(ids, ","))
		}
		return nil
	},
}

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "List every line in the network",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := loadNetwork()
		if err != nil {
			return err
		}

		lines := net.Lines()
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), lines)
		}
		for _, l := range lines {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-9s %d stations: %s\n", l.ID, l.Color, len(l.Route), strings.Join(l.Route, " > "))
		}
		return nil
	},
}

func init() {
	routesCmd.Flags().StringVarP(&fromArg, "from", "f", "", "Origin as lat,lng")
	routesCmd.Flags().StringVarP(&toArg, "to", "t", "", "Destination as lat,lng")
	routesCmd.Flags().IntVarP(&limitArg, "limit", "l", itinerary.DefaultLimit, "Routes to show (0 for all)")
	routesCmd.Flags().BoolVar(&bidirectional, "bidirectional-transfers", false, "Also look behind the origin stop for single-change transfers")
	routesCmd.Flags().BoolVar(&explicitChange, "explicit-changes", false, "Insert the second change step in two-change routes")
	routesCmd.MarkFlagRequired("from")
	routesCmd.MarkFlagRequired("to")

	nearestCmd.Flags().IntVarP(&nearestLimit, "limit", "l", 5, "Stations to show (0 for all)")
}

func printItineraries(w io.Writer, its []itinerary.Itinerary, found int) {
	if len(its) == 0 {
		fmt.Fprintln(w, "No routes found.")
		return
	}

	fmt.Fprintf(w, "Showing %d of %d routes\n", len(its), found)
	for _, it := range its {
		badges := make([]string, len(it.Lines))
		for i, b := range it.Lines {
			badges[i] = b.Line
		}
		fmt.Fprintf(w, "\n#%d  %s  [%s]  %d change(s)\n", it.Rank, it.Total, strings.Join(badges, " • "), it.Changes)
		if it.Summary != "" {
			fmt.Fprintf(w, "    %s\n", it.Summary)
		}
		for _, s := range it.Steps {
			if s.Instruction == "" {
				continue
			}
			fmt.Fprintf(w, "    - %s\n", s.Instruction)
		}
	}
}
