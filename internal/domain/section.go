package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Section is one directed, distance-weighted edge of a line.
// ID is uuid.Nil until the section has been persisted.
// Sections are never edited in place: a change is always a delete of the old
// section plus an insert of a new one.
type Section struct {
	ID       uuid.UUID
	LineID   uuid.UUID
	Up       Station
	Down     Station
	Distance Distance
}

// NewSection builds a section on lineID after checking its invariants.
func NewSection(lineID uuid.UUID, up, down Station, distance Distance) (Section, error) {
	if up.Same(down) {
		return Section{}, fmt.Errorf("%w: up and down station are both %q", ErrInvalidInput, up.Name)
	}
	if !distance.Valid() {
		return Section{}, fmt.Errorf("%w: distance must be positive, got %d", ErrInvalidInput, distance)
	}
	return Section{LineID: lineID, Up: up, Down: down, Distance: distance}, nil
}

// Touches reports whether st is either endpoint of the section.
func (s Section) Touches(st Station) bool {
	return s.Up.Same(st) || s.Down.Same(st)
}

// sameEdge reports whether s and other join the same stations in the same
// direction. Within one line that pair is unique, so it identifies a section
// even before it has a database ID.
func (s Section) sameEdge(other Section) bool {
	return s.Up.Same(other.Up) && s.Down.Same(other.Down)
}

func (s Section) String() string {
	return fmt.Sprintf("%s->%s(%d)", s.Up.Name, s.Down.Name, s.Distance)
}
