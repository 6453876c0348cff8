package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pkordes/subway-planner/internal/route"
)

func fareCmd() *cobra.Command {
	var faresPath string

	c := &cobra.Command{
		Use:   "fare <distance>",
		Short: "Price a trip of the given length in kilometres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			distance, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("distance %q is not a whole number", args[0])
			}

			fares := route.DefaultFareTable()
			if faresPath != "" {
				if fares, err = route.LoadFareTable(faresPath); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), fares.Fare(distance))
			return nil
		},
	}

	c.Flags().StringVar(&faresPath, "fares", "", "Fare table YAML (defaults to the standard schedule)")
	return c
}
