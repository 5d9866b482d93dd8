package tendril

import (
	"unsafe"

	"github.com/joshuapare/tendril/internal/alloc"
)

// PopBack removes the last n bytes from t. Returns ErrOutOfBounds if n
// exceeds t's length. Any heap allocation is retained for reuse; an inline
// Tendril that empties out transitions to the empty form.
func PopBack(t *Tendril, n uint32) error {
	length := t.Len()
	if n > length {
		return ErrOutOfBounds
	}
	if n == 0 {
		return nil
	}
	newLen := length - n

	switch t.form() {
	case formInline:
		if newLen == 0 {
			*t = Tendril{ptr: emptyTag}
		} else {
			t.ptr = uintptr(newLen)
		}
	case formOwned, formShared:
		t.a = newLen
	}
	return nil
}

// PopFront drops the first n bytes from t. Returns ErrOutOfBounds if n
// exceeds t's length.
//
// A shared Tendril just advances its offset — the underlying block is
// never mutated, since other references may still need the bytes being
// dropped. An owned Tendril shifts its remaining bytes down in place,
// which keeps it owned and able to grow in place again afterward.
func PopFront(t *Tendril, n uint32) error {
	length := t.Len()
	if n > length {
		return ErrOutOfBounds
	}
	if n == 0 {
		return nil
	}
	newLen := length - n

	switch t.form() {
	case formInline:
		src := unsafe.Slice((*byte)(unsafe.Pointer(&t.a)), length)
		copy(src, src[n:])
		if newLen == 0 {
			*t = Tendril{ptr: emptyTag}
		} else {
			t.ptr = uintptr(newLen)
		}
	case formShared:
		t.a = newLen
		t.b += n
	case formOwned:
		buf := alloc.Buffer(t.handle(), t.capacity())
		copy(buf, buf[n:length])
		t.a = newLen
	}
	return nil
}
