package tendril

import "github.com/joshuapare/tendril/internal/alloc"

// Clone replaces dst, destroying whatever it previously held, with a value
// equal to src. A heap-backed src is shared rather than copied: an owned
// src is first promoted to shared in place, then both src and dst end up
// referencing the same block with its refcount incremented by one.
//
// dst and src may be the same Tendril: everything needed from src is
// captured or incref'd before dst is destroyed.
func Clone(dst, src *Tendril) {
	switch src.form() {
	case formEmpty:
		Destroy(dst)
		*dst = Tendril{ptr: emptyTag}
	case formInline:
		value := *src
		Destroy(dst)
		*dst = value
	case formOwned:
		promoteToShared(src)
		alloc.IncRef(src.handle())
		value := *src
		Destroy(dst)
		*dst = value
	case formShared:
		alloc.IncRef(src.handle())
		value := *src
		Destroy(dst)
		*dst = value
	}
}

// promoteToShared turns an owned Tendril into a shared one referencing the
// same block, without incrementing its refcount — the caller owns that
// increment, since it's about to hand out the second reference this
// promotion makes room for.
func promoteToShared(t *Tendril) {
	if t.form() != formOwned {
		return
	}
	h := t.handle()
	alloc.SetHeaderCapacity(h, t.b)
	t.b = 0
	t.ptr = uintptr(h) | 1
}

// IsShared reports whether t is in the shared form.
func IsShared(t *Tendril) bool {
	return t.form() == formShared
}

// IsSharedWith reports whether t and other reference the same heap block.
func IsSharedWith(t, other *Tendril) bool {
	return t.form() == formShared && other.form() == formShared && t.ptr == other.ptr
}
