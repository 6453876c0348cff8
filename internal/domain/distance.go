package domain

import "fmt"

// Distance is the length of a section in whole kilometres.
// A valid Distance is always strictly positive; use NewDistance to build one
// from untrusted input.
type Distance int

// NewDistance validates v and returns it as a Distance.
// Returns ErrInvalidInput when v is zero or negative.
func NewDistance(v int) (Distance, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: distance must be positive, got %d", ErrInvalidInput, v)
	}
	return Distance(v), nil
}

// Valid reports whether d satisfies the positivity invariant.
func (d Distance) Valid() bool { return d > 0 }

// Int returns d as a plain int.
func (d Distance) Int() int { return int(d) }

// Add returns the combined length of d and other.
func (d Distance) Add(other Distance) Distance { return d + other }

// Sub returns d minus other. The caller must ensure other < d, otherwise the
// result is not a valid Distance.
func (d Distance) Sub(other Distance) Distance { return d - other }
