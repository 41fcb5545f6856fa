package builder

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices is returned when a size parameter is smaller than
	// the family's minimum (e.g. Cycle needs n ≥ 3).
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrBadParameter is returned for structural parameters outside their
	// domain (e.g. Petersen's 2k ≥ n, an LCF shift divisible by n).
	ErrBadParameter = errors.New("builder: parameter out of domain")

	// ErrUnknownName is returned by FromName for a name not in the catalog.
	ErrUnknownName = errors.New("builder: unknown graph name")

	// ErrNotGraphic is returned when a degree sequence is not realizable
	// as a simple graph.
	ErrNotGraphic = errors.New("builder: sequence is not graphic")
)
