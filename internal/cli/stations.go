package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func stationsCmd() *cobra.Command {
	var networkPath string
	var line string

	c := &cobra.Command{
		Use:   "stations",
		Short: "List stations, alphabetically or in line order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := loadNetwork(networkPath, "")
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if line == "" {
				for _, name := range n.Stations() {
					fmt.Fprintln(w, name)
				}
				return nil
			}

			for _, l := range n.Lines {
				if l.Line.Name != line {
					continue
				}
				stations, err := l.Sections.Stations()
				if err != nil {
					return err
				}
				for _, st := range stations {
					fmt.Fprintln(w, st.Name)
				}
				return nil
			}
			return fmt.Errorf("line %q is not in %s", line, networkPath)
		},
	}

	c.Flags().StringVarP(&networkPath, "network", "n", "", "Network YAML file (required)")
	c.Flags().StringVarP(&line, "line", "l", "", "Only list this line's stations, up-terminal first")

	_ = c.MarkFlagRequired("network")
	return c
}
