package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Plan is the outcome of a ledger mutation: the sections to persist, the
// sections to retire, and the stations that became part of the line.
// A Plan is always complete; the ledger never hands back half of one.
type Plan struct {
	Added         []Section
	Deleted       []Section
	AddedStations []Station
}

// Empty reports whether applying p would change nothing.
func (p Plan) Empty() bool {
	return len(p.Added) == 0 && len(p.Deleted) == 0
}

// Sections is an immutable snapshot of one line's chain.
// Terminals and adjacency are derived from the set on every call, so the
// value never carries order metadata that could drift from the sections.
type Sections struct {
	lineID uuid.UUID
	items  []Section
}

// NewSections wraps the current sections of lineID. The slice is copied, so
// later changes to items do not affect the snapshot.
func NewSections(lineID uuid.UUID, items []Section) Sections {
	cp := make([]Section, len(items))
	copy(cp, items)
	return Sections{lineID: lineID, items: cp}
}

// LineID returns the line the snapshot belongs to.
func (s Sections) LineID() uuid.UUID { return s.lineID }

// Len returns the number of sections on the line.
func (s Sections) Len() int { return len(s.items) }

// All returns a copy of the sections in storage order.
func (s Sections) All() []Section {
	cp := make([]Section, len(s.items))
	copy(cp, s.items)
	return cp
}

// Contains reports whether st is an endpoint of any section on the line.
func (s Sections) Contains(st Station) bool {
	for _, sec := range s.items {
		if sec.Touches(st) {
			return true
		}
	}
	return false
}

// adjacency indexes sections by their up station (outgoing) and by their down
// station (incoming).
type adjacency struct {
	outgoing map[uuid.UUID]Section
	incoming map[uuid.UUID]Section
}

func (s Sections) index() adjacency {
	a := adjacency{
		outgoing: make(map[uuid.UUID]Section, len(s.items)),
		incoming: make(map[uuid.UUID]Section, len(s.items)),
	}
	for _, sec := range s.items {
		a.outgoing[sec.Up.ID] = sec
		a.incoming[sec.Down.ID] = sec
	}
	return a
}

// Insert plans attaching the pair up→down to the line.
//
//   - On an empty line the pair becomes the only section.
//   - Otherwise exactly one of the two stations must already be on the line.
//     If the known station has a section leaving it on the side the fresh
//     station attaches to, that section is split in two; if not, the known
//     station is a terminal and the new section extends the line.
//
// A split requires distance to be strictly shorter than the section being
// split; the two halves always sum to the original length.
func (s Sections) Insert(up, down Station, distance Distance) (Plan, error) {
	added, err := NewSection(s.lineID, up, down, distance)
	if err != nil {
		return Plan{}, err
	}

	if len(s.items) == 0 {
		return Plan{
			Added:         []Section{added},
			AddedStations: []Station{up, down},
		}, nil
	}

	hasUp, hasDown := s.Contains(up), s.Contains(down)
	switch {
	case hasUp && hasDown:
		return Plan{}, fmt.Errorf("%w: %q and %q are both already on the line", ErrTopologyConflict, up.Name, down.Name)
	case !hasUp && !hasDown:
		return Plan{}, fmt.Errorf("%w: cannot add two new stations %q and %q to a non-empty line", ErrTopologyConflict, up.Name, down.Name)
	}

	adj := s.index()
	if hasUp {
		// up is known, down is fresh.
		next, ok := adj.outgoing[up.ID]
		if !ok {
			return Plan{Added: []Section{added}, AddedStations: []Station{down}}, nil
		}
		if distance >= next.Distance {
			return Plan{}, distanceExceeded(distance, next)
		}
		return Plan{
			Added: []Section{
				added,
				{LineID: s.lineID, Up: down, Down: next.Down, Distance: next.Distance.Sub(distance)},
			},
			Deleted:       []Section{next},
			AddedStations: []Station{down},
		}, nil
	}

	// down is known, up is fresh.
	prev, ok := adj.incoming[down.ID]
	if !ok {
		return Plan{Added: []Section{added}, AddedStations: []Station{up}}, nil
	}
	if distance >= prev.Distance {
		return Plan{}, distanceExceeded(distance, prev)
	}
	return Plan{
		Added: []Section{
			{LineID: s.lineID, Up: prev.Up, Down: up, Distance: prev.Distance.Sub(distance)},
			added,
		},
		Deleted:       []Section{prev},
		AddedStations: []Station{up},
	}, nil
}

func distanceExceeded(d Distance, split Section) error {
	return fmt.Errorf("%w: new section (%d) must be shorter than %s", ErrDistanceExceeded, d, split)
}

// DeleteOption tunes a Delete call.
type DeleteOption func(*deleteOptions)

type deleteOptions struct {
	teardown bool
}

// WithTeardown allows Delete to remove the only remaining section of a line.
// Without it that case fails with ErrLastSection.
func WithTeardown() DeleteOption {
	return func(o *deleteOptions) { o.teardown = true }
}

// Delete plans removing st from the line.
//
//   - A station that is not on the line yields an empty plan.
//   - A terminal loses its single adjacent section.
//   - An interior station's two sections are merged into one spanning both.
func (s Sections) Delete(st Station, opts ...DeleteOption) (Plan, error) {
	var o deleteOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !s.Contains(st) {
		return Plan{}, nil
	}
	if len(s.items) == 1 {
		if !o.teardown {
			return Plan{}, fmt.Errorf("%w: %q is on the only section of the line", ErrLastSection, st.Name)
		}
		return Plan{Deleted: []Section{s.items[0]}}, nil
	}

	adj := s.index()
	in, hasIn := adj.incoming[st.ID]
	out, hasOut := adj.outgoing[st.ID]
	switch {
	case hasIn && hasOut:
		return Plan{
			Added: []Section{{
				LineID:   s.lineID,
				Up:       in.Up,
				Down:     out.Down,
				Distance: in.Distance.Add(out.Distance),
			}},
			Deleted: []Section{in, out},
		}, nil
	case hasIn:
		return Plan{Deleted: []Section{in}}, nil
	default:
		return Plan{Deleted: []Section{out}}, nil
	}
}

// Apply returns the snapshot that results from replaying p: every deleted
// section is removed and every added section appended. The receiver is left
// untouched.
func (s Sections) Apply(p Plan) Sections {
	next := make([]Section, 0, len(s.items)+len(p.Added))
	for _, sec := range s.items {
		if !containsEdge(p.Deleted, sec) {
			next = append(next, sec)
		}
	}
	next = append(next, p.Added...)
	return Sections{lineID: s.lineID, items: next}
}

func containsEdge(list []Section, sec Section) bool {
	for _, candidate := range list {
		if candidate.sameEdge(sec) {
			return true
		}
	}
	return false
}

// Ordered returns the sections from the up-terminal to the down-terminal.
// Returns an error if the sections do not form a single simple path.
func (s Sections) Ordered() ([]Section, error) {
	if len(s.items) == 0 {
		return []Section{}, nil
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	adj := s.index()
	var head Section
	for _, sec := range s.items {
		if _, ok := adj.incoming[sec.Up.ID]; !ok {
			head = sec
			break
		}
	}

	ordered := make([]Section, 0, len(s.items))
	for cur, ok := head, true; ok; cur, ok = adj.outgoing[cur.Down.ID] {
		ordered = append(ordered, cur)
	}
	return ordered, nil
}

// Stations returns the stations of the line from the up-terminal to the
// down-terminal.
func (s Sections) Stations() ([]Station, error) {
	ordered, err := s.Ordered()
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return []Station{}, nil
	}
	stations := make([]Station, 0, len(ordered)+1)
	stations = append(stations, ordered[0].Up)
	for _, sec := range ordered {
		stations = append(stations, sec.Down)
	}
	return stations, nil
}

// TotalDistance returns the summed length of all sections on the line.
func (s Sections) TotalDistance() Distance {
	var total Distance
	for _, sec := range s.items {
		total = total.Add(sec.Distance)
	}
	return total
}

// Validate checks that the sections form exactly one simple path over
// distinct stations: no station leaves or enters twice, exactly one
// up-terminal, and every section reachable from it.
func (s Sections) Validate() error {
	if len(s.items) == 0 {
		return nil
	}

	outgoing := make(map[uuid.UUID]Section, len(s.items))
	incoming := make(map[uuid.UUID]Section, len(s.items))
	for _, sec := range s.items {
		if sec.Up.Same(sec.Down) {
			return fmt.Errorf("%w: section %s is a loop", ErrTopologyConflict, sec)
		}
		if !sec.Distance.Valid() {
			return fmt.Errorf("%w: section %s has a non-positive distance", ErrInvalidInput, sec)
		}
		if _, dup := outgoing[sec.Up.ID]; dup {
			return fmt.Errorf("%w: %q branches downwards", ErrTopologyConflict, sec.Up.Name)
		}
		if _, dup := incoming[sec.Down.ID]; dup {
			return fmt.Errorf("%w: %q branches upwards", ErrTopologyConflict, sec.Down.Name)
		}
		outgoing[sec.Up.ID] = sec
		incoming[sec.Down.ID] = sec
	}

	var heads []Section
	for _, sec := range s.items {
		if _, ok := incoming[sec.Up.ID]; !ok {
			heads = append(heads, sec)
		}
	}
	if len(heads) != 1 {
		return fmt.Errorf("%w: expected one up-terminal, found %d", ErrTopologyConflict, len(heads))
	}

	visited := 0
	for cur, ok := heads[0], true; ok; cur, ok = outgoing[cur.Down.ID] {
		visited++
		if visited > len(s.items) {
			return fmt.Errorf("%w: cycle through %q", ErrTopologyConflict, cur.Down.Name)
		}
	}
	if visited != len(s.items) {
		return fmt.Errorf("%w: %d of %d sections are disconnected", ErrTopologyConflict, len(s.items)-visited, len(s.items))
	}
	return nil
}
