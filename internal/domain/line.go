package domain

import (
	"time"

	"github.com/google/uuid"
)

// Line is a named, coloured subway line. Its sections are stored separately
// and loaded into a Sections value when the ledger needs them.
type Line struct {
	ID        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineDetail is a line together with its current chain, ordered from the
// up-terminal to the down-terminal.
type LineDetail struct {
	Line     Line
	Stations []Station
	Sections []Section
	Length   Distance // zero for a line with no sections
}
