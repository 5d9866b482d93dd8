// Package buf contains helpers for endian-safe encoding and decoding of the
// small binary structures the allocator reads and writes directly against
// mapped memory (refcount and capacity header words).
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU32LE writes a little-endian uint32 into b[0:4]. Panics if b is too short,
// same as binary.LittleEndian.PutUint32 — callers own the bounds check.
func PutU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
