package cli

import (
	"fmt"
	"log/slog"

	"github.com/pkordes/subway-planner/internal/network"
	"github.com/pkordes/subway-planner/internal/route"
)

// loadNetwork reads the network file and, when faresPath is set, replaces the
// file's fare table with the one in faresPath.
func loadNetwork(path, faresPath string) (*network.Network, error) {
	n, err := network.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("network loaded", "path", path, "lines", len(n.Lines), "stations", len(n.Stations()))

	if faresPath != "" {
		fares, err := route.LoadFareTable(faresPath)
		if err != nil {
			return nil, fmt.Errorf("fares: %w", err)
		}
		n.Fares = fares
		slog.Debug("fare table loaded", "path", faresPath)
	}
	return n, nil
}
