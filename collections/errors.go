package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrInvalidArgument is returned when an argument is outside the
	// operation's domain, e.g. Chunk with size <= 0.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrMaxDepth is returned when a merge recurses deeper than the
	// configured limit, which in practice means the sources are cyclic.
	ErrMaxDepth = errors.New("collections: maximum merge depth exceeded")
)
