package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the backing page allocator rejected a reservation request.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrOverflow indicates a requested capacity could not be represented.
	ErrOverflow = errors.New("alloc: capacity overflow")

	// ErrBadHandle indicates a handle whose capacity does not round-trip to a known size class.
	ErrBadHandle = errors.New("alloc: bad handle")
)
