// Package domain contains the core data types for the subway planner and the
// line ledger that keeps each line a single simple path.
// This package has no knowledge of HTTP or SQL and is imported by every other
// internal package (repo, service, handler, route).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Station is a stop that may appear on any number of lines.
// Stations are immutable once created; two stations are the same station
// when their IDs match.
type Station struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Same reports whether s and other identify the same station.
func (s Station) Same(other Station) bool {
	return s.ID == other.ID
}
