package tendril

import (
	"unsafe"

	"github.com/joshuapare/tendril/internal/alloc"
	"github.com/joshuapare/tendril/internal/buf"
)

// Sub replaces dst, destroying whatever it previously held, with a view of
// src covering [offset, offset+length). Returns ErrOutOfBounds if that
// range extends past src's length.
//
// A result of length <= maxInlineLen is always materialized as a fresh
// inline Tendril, regardless of src's own form: a pointer plus a refcount
// bump would cost more than the handful of bytes it would be referencing.
// Longer results share src's block the same way Clone does.
//
// dst and src may be the same Tendril — everything needed from src is
// captured or incref'd before dst is destroyed, so narrowing a Tendril to
// a subrange of itself works.
func Sub(dst, src *Tendril, offset, length uint32) error {
	srcBytes := src.Bytes()
	if !buf.Has(srcBytes, int(offset), int(length)) {
		return ErrOutOfBounds
	}

	if length == 0 {
		Destroy(dst)
		*dst = Tendril{ptr: emptyTag}
		return nil
	}

	if length <= maxInlineLen {
		piece, _ := buf.Slice(srcBytes, int(offset), int(length))
		var tmp Tendril
		tmp.ptr = uintptr(length)
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&tmp.a)), length), piece)
		Destroy(dst)
		*dst = tmp
		return nil
	}

	if src.form() == formOwned {
		promoteToShared(src)
	}
	alloc.IncRef(src.handle())
	result := Tendril{
		ptr: uintptr(src.handle()) | 1,
		a:   length,
		b:   src.offset() + offset,
	}
	Destroy(dst)
	*dst = result
	return nil
}
