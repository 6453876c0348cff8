package route

import (
	"github.com/pkordes/subway-planner/internal/domain"
)

// Route is a priced shortest path.
type Route struct {
	Path
	Fare int
}

// Planner answers route queries against a network snapshot using a fixed
// fare table. It holds no mutable state and is safe for concurrent use.
type Planner struct {
	fares FareTable
}

// NewPlanner constructs a Planner that prices routes with fares.
func NewPlanner(fares FareTable) *Planner {
	return &Planner{fares: fares}
}

// Fares returns the fare table the planner prices with.
func (p *Planner) Fares() FareTable { return p.fares }

// Plan finds the shortest route from source to target across every section in
// snapshot and prices it.
func (p *Planner) Plan(snapshot []domain.Section, source, target domain.Station) (Route, error) {
	path, err := BuildGraph(snapshot).ShortestPath(source, target)
	if err != nil {
		return Route{}, err
	}
	return Route{Path: path, Fare: p.fares.Fare(path.Distance)}, nil
}
