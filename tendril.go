package tendril

import (
	"unsafe"

	"github.com/joshuapare/tendril/internal/alloc"
)

// form identifies which of the four shapes a Tendril's ptr word currently
// encodes.
type form uint8

const (
	formEmpty form = iota
	formInline
	formOwned
	formShared
)

const (
	// emptyTag is the ptr value of a Tendril holding no content. Chosen
	// above maxInlineLen so it can never collide with an inline length.
	emptyTag uintptr = 0xF

	// maxInlineLen is the longest content stored inside the value itself
	// rather than in a heap block.
	maxInlineLen = 8
)

// Tendril is a compact, reference-counted, non-interned byte string. Up to
// maxInlineLen bytes live inline in the value itself; longer content lives
// in an off-heap block that may be shared with other Tendrils.
//
// The zero Tendril is not a valid value: ptr==0 is reserved so a container
// holding an optional Tendril can use it as its own "no value" sentinel
// without a separate bool. Call Init, or start from New, before first use.
//
// A Tendril must never be touched from more than one goroutine: refcount
// updates on its heap block, when it has one, are plain non-atomic reads
// and writes.
type Tendril struct {
	ptr uintptr
	a   uint32
	b   uint32
}

// New returns an initialized, empty Tendril.
func New() Tendril {
	return Tendril{ptr: emptyTag}
}

// form reports which shape t's ptr word currently encodes. ptr values
// 1..maxInlineLen are inline lengths; the low bit of any larger ptr
// distinguishes a shared block (tag bit set) from an owned one.
func (t *Tendril) form() form {
	switch {
	case t.ptr == emptyTag:
		return formEmpty
	case t.ptr <= maxInlineLen:
		return formInline
	case t.ptr&1 == 1:
		return formShared
	default:
		return formOwned
	}
}

// handle recovers the heap block address from a tagged ptr. Only valid
// when form() is formOwned or formShared.
func (t *Tendril) handle() alloc.Handle {
	return alloc.Handle(t.ptr &^ 1)
}

// Len returns t's length in bytes.
func (t *Tendril) Len() uint32 {
	switch {
	case t.ptr == emptyTag:
		return 0
	case t.ptr <= maxInlineLen:
		return uint32(t.ptr)
	default:
		return t.a
	}
}

// capacity returns the usable size of a heap-backed Tendril's buffer: b
// directly for owned (the header's capacity word is stale until promotion
// to shared), the header's capacity word for shared.
func (t *Tendril) capacity() uint32 {
	if t.ptr&1 == 1 {
		return alloc.HeaderCapacity(t.handle())
	}
	return t.b
}

// offset returns the byte offset into the shared block where t's content
// starts, or zero for every other form.
func (t *Tendril) offset() uint32 {
	if t.form() == formShared {
		return t.b
	}
	return 0
}

// data returns a pointer to t's first content byte. This implementation
// always folds the shared-form offset in, so data() lands on the first
// logical content byte rather than the start of the underlying block —
// callers never need to add offset() themselves.
func (t *Tendril) data() unsafe.Pointer {
	switch t.form() {
	case formEmpty, formInline:
		return unsafe.Pointer(&t.a)
	default:
		base := uintptr(t.handle()) + uintptr(alloc.HeaderLen)
		return unsafe.Pointer(base + uintptr(t.offset()))
	}
}

// Data returns a pointer to t's first content byte. The returned pointer
// is invalidated by any later mutating call on t.
func (t *Tendril) Data() unsafe.Pointer {
	return t.data()
}

// Bytes returns a view over t's content. The slice is only valid until
// the next mutating call on t.
func (t *Tendril) Bytes() []byte {
	n := t.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(t.data()), n)
}

// String copies t's content into a new Go string.
func (t *Tendril) String() string {
	return string(t.Bytes())
}
