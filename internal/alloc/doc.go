// Package alloc is the heap-block allocator backing owned and shared
// Tendril values.
//
// # Overview
//
// A block is HeaderLen bytes of bookkeeping (a 32-bit refcount followed by
// a 32-bit capacity word, see RefCount and HeaderCapacity) immediately followed by the content
// buffer. Blocks live off the Go heap — reserved directly from the OS via
// mmap (unix) or VirtualAlloc (windows), see mmap_unix.go/mmap_windows.go —
// so that a Handle's address can be used as an ordinary machine word and
// tagged in its low bit by the caller (package tendril) without fighting
// the garbage collector over pointer validity.
//
// # Size classes
//
// Requested capacities are rounded up to one of a small number of
// power-of-two buckets (SizeClassConfig, classFor) before a block is
// carved out of the current slab. Freed blocks are pushed onto a per-class
// free list and reused by the next allocation of the same class, exactly
// like hivekit's hive/alloc package does for registry cells — except the
// "cells" here are Tendril heap blocks and the backing store is anonymous
// memory instead of a hive file.
//
// # Concurrency
//
// The pool itself is shared process-wide and guarded by a mutex: separate
// goroutines, each working with their own Tendril values, still draw from
// one global slab. What this package does not and cannot protect is a
// single Handle's header — refcount and capacity reads and writes there
// are plain, unsynchronized loads and stores, because a Tendril is never
// meant to be handed to more than one goroutine in the first place.
package alloc
