package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// station or line does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a station or line name is already taken.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicate = errors.New("already exists")

// ErrInvalidInput is returned for malformed requests: the same station given
// twice, a non-positive distance, an empty name.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrInvalidInput = errors.New("invalid input")

// ErrTopologyConflict is returned when an insertion would break the
// single-simple-path shape of a line: both stations new on a non-empty line,
// or both already on it.
var ErrTopologyConflict = errors.New("topology conflict")

// ErrDistanceExceeded is returned when a mid-chain insertion is not strictly
// shorter than the section it would split.
var ErrDistanceExceeded = errors.New("distance exceeded")

// ErrLastSection is returned when a removal would leave a line with no
// sections and the caller did not ask for a line teardown.
var ErrLastSection = errors.New("last section")

// ErrNoSuchStation is returned by the route planner when a station does not
// appear in any section of the network snapshot.
var ErrNoSuchStation = errors.New("no such station")

// ErrUnreachable is returned by the route planner when no path connects the
// two stations.
var ErrUnreachable = errors.New("unreachable")
