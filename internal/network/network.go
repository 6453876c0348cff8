// Package network loads a whole subway network from a YAML file, for offline
// planning and validation without a database.
//
// Every line in the file is rebuilt through the same ledger the API uses, so
// a file is accepted only if each of its lines could have been produced by a
// sequence of valid insertions.
package network

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/subway-planner/internal/domain"
	"github.com/pkordes/subway-planner/internal/route"
)

// Namespace seeds the deterministic station and line IDs derived from names,
// so the same file always yields the same IDs.
var Namespace = uuid.MustParse("6f1f6a52-2d49-4c4b-9c55-0d5b8f3b7b10")

// File is the on-disk YAML shape.
type File struct {
	Fares *route.FareTable `yaml:"fares"`
	Lines []LineSpec       `yaml:"lines" validate:"required,min=1,dive"`
}

// LineSpec describes one line and its sections in any order.
type LineSpec struct {
	Name     string        `yaml:"name" validate:"required"`
	Color    string        `yaml:"color"`
	Sections []SectionSpec `yaml:"sections" validate:"required,min=1,dive"`
}

// SectionSpec is one up→down pair with its length.
type SectionSpec struct {
	Up       string `yaml:"up" validate:"required"`
	Down     string `yaml:"down" validate:"required,nefield=Up"`
	Distance int    `yaml:"distance" validate:"required,gt=0"`
}

// Line is a built line with its ledger snapshot.
type Line struct {
	Line     domain.Line
	Sections domain.Sections
}

// Network is the in-memory result of loading a File.
type Network struct {
	Lines    []Line
	Fares    route.FareTable
	stations map[string]domain.Station
}

// Load reads and builds the network in path.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network.Load: %w", err)
	}
	defer f.Close()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("network.Load: %s: %w", path, err)
	}
	return n, nil
}

// Parse decodes, validates and builds a network from r.
func Parse(r io.Reader) (*Network, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return Build(file)
}

// Build turns a validated File into a Network.
func Build(file File) (*Network, error) {
	n := &Network{
		Fares:    route.DefaultFareTable(),
		stations: make(map[string]domain.Station),
	}
	if file.Fares != nil {
		if err := file.Fares.Validate(); err != nil {
			return nil, fmt.Errorf("fares: %w", err)
		}
		n.Fares = *file.Fares
	}

	seen := make(map[string]bool, len(file.Lines))
	for _, ls := range file.Lines {
		if seen[ls.Name] {
			return nil, fmt.Errorf("%w: line %q is defined twice", domain.ErrDuplicate, ls.Name)
		}
		seen[ls.Name] = true

		line, err := n.buildLine(ls)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", ls.Name, err)
		}
		n.Lines = append(n.Lines, line)
	}
	return n, nil
}

// buildLine inserts the line's sections one by one. Sections may be listed
// in any order: a section that cannot attach yet is retried after the others
// until a full pass makes no progress.
func (n *Network) buildLine(ls LineSpec) (Line, error) {
	line := domain.Line{
		ID:    uuid.NewSHA1(Namespace, []byte("line:"+ls.Name)),
		Name:  ls.Name,
		Color: ls.Color,
	}
	chain := domain.NewSections(line.ID, nil)
	pending := ls.Sections

	for len(pending) > 0 {
		var (
			next    []SectionSpec
			lastErr error
		)
		for _, s := range pending {
			plan, err := chain.Insert(n.station(s.Up), n.station(s.Down), domain.Distance(s.Distance))
			if errors.Is(err, domain.ErrTopologyConflict) && chain.Len() > 0 &&
				!chain.Contains(n.station(s.Up)) && !chain.Contains(n.station(s.Down)) {
				// Not connected to the chain yet; try again after the others.
				next = append(next, s)
				lastErr = err
				continue
			}
			if err != nil {
				return Line{}, fmt.Errorf("section %s->%s: %w", s.Up, s.Down, err)
			}
			chain = chain.Apply(plan)
		}
		if len(next) == len(pending) {
			return Line{}, fmt.Errorf("section %s->%s is not connected to the rest of the line: %w",
				next[0].Up, next[0].Down, lastErr)
		}
		pending = next
	}
	return Line{Line: line, Sections: chain}, nil
}

// station returns the station named name, creating it on first use.
func (n *Network) station(name string) domain.Station {
	if st, ok := n.stations[name]; ok {
		return st
	}
	st := domain.Station{ID: uuid.NewSHA1(Namespace, []byte("station:"+name)), Name: name}
	n.stations[name] = st
	return st
}

// Station looks up a station by name.
// Returns domain.ErrNotFound if no line in the network mentions it.
func (n *Network) Station(name string) (domain.Station, error) {
	st, ok := n.stations[name]
	if !ok {
		return domain.Station{}, fmt.Errorf("%w: station %q", domain.ErrNotFound, name)
	}
	return st, nil
}

// Stations returns every station name in alphabetical order.
func (n *Network) Stations() []string {
	names := make([]string, 0, len(n.stations))
	for name := range n.stations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns every section of every line, the input the route planner
// expects.
func (n *Network) Snapshot() []domain.Section {
	var all []domain.Section
	for _, l := range n.Lines {
		all = append(all, l.Sections.All()...)
	}
	return all
}
