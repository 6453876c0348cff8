// Package route plans journeys across the whole network: it merges every
// line's sections into one undirected weighted graph, finds the shortest path
// between two stations and prices it with a tiered fare table.
//
// The graph is built fresh from a snapshot of sections for each query and is
// never mutated afterwards, so a Graph may be shared between goroutines.
package route

import (
	"container/heap"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/subway-planner/internal/domain"
)

// edge is one traversable direction of a section.
type edge struct {
	to     uuid.UUID
	weight int
}

// Graph is an undirected multigraph over stations. Sections joining the same
// pair of stations on different lines stay separate parallel edges.
type Graph struct {
	stations  map[uuid.UUID]domain.Station
	adjacency map[uuid.UUID][]edge
}

// BuildGraph turns a network snapshot into a Graph. Each section contributes
// an edge in both directions, weighted by its distance.
func BuildGraph(sections []domain.Section) *Graph {
	g := &Graph{
		stations:  make(map[uuid.UUID]domain.Station),
		adjacency: make(map[uuid.UUID][]edge),
	}
	for _, sec := range sections {
		g.stations[sec.Up.ID] = sec.Up
		g.stations[sec.Down.ID] = sec.Down
		w := sec.Distance.Int()
		g.adjacency[sec.Up.ID] = append(g.adjacency[sec.Up.ID], edge{to: sec.Down.ID, weight: w})
		g.adjacency[sec.Down.ID] = append(g.adjacency[sec.Down.ID], edge{to: sec.Up.ID, weight: w})
	}
	return g
}

// Has reports whether st appears in any section of the snapshot.
func (g *Graph) Has(st domain.Station) bool {
	_, ok := g.stations[st.ID]
	return ok
}

// Path is an ordered walk from source to target, both inclusive.
type Path struct {
	Stations []domain.Station
	Distance int
}

// ShortestPath returns the minimum-distance path between source and target
// using Dijkstra's algorithm. When several paths share the minimum any one
// of them may be returned.
// Returns domain.ErrNoSuchStation if either station is absent from the graph
// and domain.ErrUnreachable if no path joins them.
func (g *Graph) ShortestPath(source, target domain.Station) (Path, error) {
	for _, st := range []domain.Station{source, target} {
		if !g.Has(st) {
			return Path{}, fmt.Errorf("%w: %q is not on any line", domain.ErrNoSuchStation, st.Name)
		}
	}

	dist := map[uuid.UUID]int{source.ID: 0}
	prev := make(map[uuid.UUID]uuid.UUID)
	done := make(map[uuid.UUID]bool)

	pq := &priorityQueue{}
	heap.Push(pq, &pqItem{node: source.ID, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if done[current] {
			continue
		}
		done[current] = true
		if current == target.ID {
			break
		}

		for _, e := range g.adjacency[current] {
			if done[e.to] {
				continue
			}
			tentative := dist[current] + e.weight
			if old, ok := dist[e.to]; !ok || tentative < old {
				dist[e.to] = tentative
				prev[e.to] = current
				heap.Push(pq, &pqItem{node: e.to, priority: tentative})
			}
		}
	}

	total, ok := dist[target.ID]
	if !ok {
		return Path{}, fmt.Errorf("%w: no path from %q to %q", domain.ErrUnreachable, source.Name, target.Name)
	}

	return Path{Stations: g.reconstruct(prev, source.ID, target.ID), Distance: total}, nil
}

// reconstruct walks prev back from target to source.
func (g *Graph) reconstruct(prev map[uuid.UUID]uuid.UUID, source, target uuid.UUID) []domain.Station {
	var ids []uuid.UUID
	for cur := target; ; cur = prev[cur] {
		ids = append(ids, cur)
		if cur == source {
			break
		}
	}

	stations := make([]domain.Station, len(ids))
	for i, id := range ids {
		stations[len(ids)-1-i] = g.stations[id]
	}
	return stations
}

type pqItem struct {
	node     uuid.UUID
	priority int
}

// priorityQueue is a min-heap of pqItems ordered by priority.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
