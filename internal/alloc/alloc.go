package alloc

import (
	"sync"
	"unsafe"

	"github.com/joshuapare/tendril/internal/buf"
)

// headerLen is pointer_size + 4: a 32-bit refcount and a 32-bit capacity
// word, padded out to a pointer-sized-plus-4 boundary (4 reserved bytes
// after capacity on 64-bit hosts, none on 32-bit). The content buffer
// starts at headerLen, not at 8 — the padding is intentional, not a bug.
const headerLen = int(unsafe.Sizeof(uintptr(0))) + 4

// Handle is the base address of a heap block reserved off the Go heap: a
// header of HeaderLen bytes followed by its content buffer. It is a plain
// machine word so that package tendril can store it — with its low bit
// repurposed as the owned/shared tag — directly inside a Tendril value
// without the garbage collector ever needing to understand what's set in
// that bit. The memory behind a Handle is never visited by Go's GC.
type Handle uintptr

// HeaderLen is the number of bytes of bookkeeping preceding every block's
// content buffer.
const HeaderLen = headerLen

var (
	poolMu sync.Mutex
	pool   = newSlab()
	classes = DefaultSizeClasses
)

// Alloc reserves a block able to hold at least want bytes of content,
// initializes its header to refcount=1 and the rounded capacity, and
// returns the handle together with that capacity (always >= want).
func Alloc(want uint32) (Handle, uint32, error) {
	capacity, large, err := classes.classFor(want)
	if err != nil {
		return 0, 0, err
	}

	var addr uintptr
	if large {
		addr, err = reserveLarge(uintptr(headerLen) + uintptr(capacity))
	} else {
		poolMu.Lock()
		addr, err = pool.alloc(capacity)
		poolMu.Unlock()
	}
	if err != nil {
		return 0, 0, err
	}

	h := Handle(addr)
	SetRefCount(h, 1)
	SetHeaderCapacity(h, capacity)
	return h, capacity, nil
}

// Free releases a block back to its size class's free list (or unmaps it
// directly, on the large path). capacity must be the value Alloc returned
// for this handle — it is what determines the block's size class.
func Free(h Handle, capacity uint32) error {
	if capacity > classes.LargeThreshold {
		return releaseLarge(uintptr(h), uintptr(headerLen)+uintptr(capacity))
	}
	class, _, err := classes.classFor(capacity)
	if err != nil {
		return err
	}
	poolMu.Lock()
	pool.free(class, uintptr(h))
	poolMu.Unlock()
	return nil
}

func headerBytes(h Handle) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(h))), headerLen)
}

// RefCount reads the block's refcount word.
func RefCount(h Handle) uint32 {
	return buf.U32LE(headerBytes(h)[0:4])
}

// SetRefCount writes the block's refcount word.
func SetRefCount(h Handle, n uint32) {
	buf.PutU32LE(headerBytes(h)[0:4], n)
}

// IncRef increments the block's refcount and returns the new value.
func IncRef(h Handle) uint32 {
	n := RefCount(h) + 1
	SetRefCount(h, n)
	return n
}

// DecRef decrements the block's refcount and returns the new value. The
// caller is responsible for calling Free once this reaches zero.
func DecRef(h Handle) uint32 {
	n := RefCount(h) - 1
	SetRefCount(h, n)
	return n
}

// HeaderCapacity reads the block's header capacity word — authoritative
// only once the block has been promoted to shared; an owned Tendril keeps
// its own capacity off to the side and the header word is stale until
// that promotion writes it.
func HeaderCapacity(h Handle) uint32 {
	return buf.U32LE(headerBytes(h)[4:8])
}

// SetHeaderCapacity writes the block's header capacity word.
func SetHeaderCapacity(h Handle, v uint32) {
	buf.PutU32LE(headerBytes(h)[4:8], v)
}

// Buffer returns a view of the block's content region, capacity bytes long.
// Pass the block's full usable capacity, not a Tendril's current length.
func Buffer(h Handle, capacity uint32) []byte {
	base := uintptr(h) + uintptr(headerLen)
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), capacity)
}
