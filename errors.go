package tendril

import "errors"

var (
	// ErrOutOfBounds is returned by Sub, PopFront, and PopBack when the
	// requested range extends past the Tendril's current content.
	ErrOutOfBounds = errors.New("tendril: out of bounds")

	// ErrOverflow is returned when an operation's resulting length would
	// exceed 2^32-1 bytes.
	ErrOverflow = errors.New("tendril: length would overflow")

	// ErrOutOfMemory is returned when the off-heap allocator cannot
	// service a request. The Tendril being grown is left unchanged.
	ErrOutOfMemory = errors.New("tendril: out of memory")
)
