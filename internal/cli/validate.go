package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var networkPath string
	var faresPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that every line in a network file forms a single chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := loadNetwork(networkPath, faresPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, l := range n.Lines {
				stations, err := l.Sections.Stations()
				if err != nil {
					return fmt.Errorf("line %q: %w", l.Line.Name, err)
				}
				fmt.Fprintf(w, "%s: %d stations, %d km\n", l.Line.Name, len(stations), l.Sections.TotalDistance())
			}
			fmt.Fprintln(w, "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&networkPath, "network", "n", "", "Network YAML file (required)")
	c.Flags().StringVar(&faresPath, "fares", "", "Fare table YAML to check alongside the network")

	_ = c.MarkFlagRequired("network")
	return c
}
