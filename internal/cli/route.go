package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/subway-planner/internal/route"
)

func routeCmd() *cobra.Command {
	var (
		networkPath string
		faresPath   string
		from        string
		to          string
		format      string
	)

	c := &cobra.Command{
		Use:   "route",
		Short: "Find the shortest route between two stations and price it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			n, err := loadNetwork(networkPath, faresPath)
			if err != nil {
				return err
			}
			source, err := n.Station(from)
			if err != nil {
				return err
			}
			target, err := n.Station(to)
			if err != nil {
				return err
			}

			r, err := route.NewPlanner(n.Fares).Plan(n.Snapshot(), source, target)
			if err != nil {
				return err
			}
			return printRoute(cmd.OutOrStdout(), r, format)
		},
	}

	c.Flags().StringVarP(&networkPath, "network", "n", "", "Network YAML file (required)")
	c.Flags().StringVar(&faresPath, "fares", "", "Fare table YAML overriding the one in the network file")
	c.Flags().StringVar(&from, "from", "", "Departure station name (required)")
	c.Flags().StringVar(&to, "to", "", "Arrival station name (required)")
	c.Flags().StringVarP(&format, "format", "o", "text", "Output format: text or json")

	_ = c.MarkFlagRequired("network")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

type routeOutput struct {
	Stations []string `json:"stations"`
	Distance int      `json:"distance"`
	Fare     int      `json:"fare"`
}

func printRoute(w io.Writer, r route.Route, format string) error {
	out := routeOutput{
		Stations: make([]string, len(r.Stations)),
		Distance: r.Distance,
		Fare:     r.Fare,
	}
	for i, st := range r.Stations {
		out.Stations[i] = st.Name
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	_, err := fmt.Fprintf(w, "%s\ndistance: %d km\nfare: %d\n",
		strings.Join(out.Stations, " -> "), out.Distance, out.Fare)
	return err
}
