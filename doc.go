// Package tendril implements a compact, reference-counted, non-interned
// byte-string container for zero-copy tokenization and similar streaming
// text workloads.
//
// # Overview
//
// A Tendril is a fixed-size, 16-byte value (12 on 32-bit hosts) holding up
// to 2^32-1 bytes of arbitrary binary or textual data, in one of four forms:
//
//   - empty:  length 0, no allocation.
//   - inline: length 1-8, bytes stored inside the value itself.
//   - owned:  the sole reference to a heap block; may grow in place.
//   - shared: one of several references to a heap block, plus a byte offset.
//
// Sharing a heap block (Clone, Sub) increments a plain, non-atomic refcount
// in the block's header; a Tendril and every value sharing its block must
// stay on the same goroutine (see "Concurrency" below).
//
// # Operations
//
// Every mutating operation takes Tendril values by pointer, never by value
// — a Tendril passed by value has logically transferred ownership, and the
// source must not be used afterward. Init, Destroy, Clear, Clone, Sub,
// PushBuffer, PushUninit, PushTendril, Reserve, PopFront, PopBack, and
// DebugDescribe make up the mutating surface; Len, Data, Bytes, String,
// IsShared, IsSharedWith, and Equal are the pure readers.
//
// # Concurrency
//
// Tendril is not safe to share between goroutines. Refcount updates are
// non-atomic; any read, write, clone, or destroy of a Tendril — or of any
// value it shares a heap block with — must happen on a single goroutine.
// No operation here allocates more than once, blocks, or yields.
//
// # Errors
//
// ErrOutOfBounds signals a Sub/PopFront/PopBack argument past the end of
// the content. ErrOverflow signals a length that would exceed 2^32-1.
// ErrOutOfMemory signals allocator (mmap/VirtualAlloc) exhaustion; the
// Tendril is left unchanged. Anything else — an uninitialized value, a
// cross-goroutine access, a use after Destroy — is undefined behavior and
// is not diagnosed.
package tendril
