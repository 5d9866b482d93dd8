package tendril

import (
	"math"
	"unsafe"

	"github.com/joshuapare/tendril/internal/alloc"
	"github.com/joshuapare/tendril/internal/buf"
)

// Reserve grows t's capacity so it can hold at least additional more bytes
// than its current length, without changing Len. It runs the same
// promotion-on-write protocol PushBuffer does, just without writing into
// the newly available tail.
func Reserve(t *Tendril, additional uint32) error {
	newLen, ok := addOverflowSafeU32(t.Len(), additional)
	if !ok {
		return ErrOverflow
	}
	return ensureCapacity(t, newLen)
}

// PushBuffer appends a copy of data's bytes to t.
func PushBuffer(t *Tendril, data []byte) error {
	n := uint32(len(data))
	if n == 0 {
		return nil
	}
	oldLen := t.Len()
	newLen, ok := addOverflowSafeU32(oldLen, n)
	if !ok {
		return ErrOverflow
	}
	if err := ensureCapacity(t, newLen); err != nil {
		return err
	}
	writeTail(t, oldLen, newLen, data)
	return nil
}

// PushUninit grows t by n bytes without specifying their content. The
// caller must overwrite them before any reader observes t again.
func PushUninit(t *Tendril, n uint32) error {
	if n == 0 {
		return nil
	}
	oldLen := t.Len()
	newLen, ok := addOverflowSafeU32(oldLen, n)
	if !ok {
		return ErrOverflow
	}
	if err := ensureCapacity(t, newLen); err != nil {
		return err
	}
	if t.form() == formOwned {
		t.a = newLen
	} else {
		t.ptr = uintptr(newLen)
	}
	return nil
}

// PushTendril appends src's content to t. Safe even when src and t are the
// same Tendril: the content is snapshotted into a fresh copy before t is
// allowed to grow, so a self-append doubles the content instead of
// reading through a pointer that growth may have just invalidated.
func PushTendril(t, src *Tendril) error {
	if src.Len() == 0 {
		return nil
	}
	data := src.Bytes()
	if t == src {
		data = append([]byte(nil), data...)
	}
	return PushBuffer(t, data)
}

// ensureCapacity runs t through however much of the promotion-on-write
// protocol is needed for it to hold newLen bytes, without changing its
// current length.
//
//   - empty/inline staying inline: nothing to do.
//   - empty/inline crossing the inline threshold: allocate owned storage.
//   - shared: always copy out to a fresh owned block — a shared Tendril
//     never mutates the block other references are reading.
//   - owned already large enough: nothing to do.
//   - owned needing more room: grow, at least doubling capacity.
func ensureCapacity(t *Tendril, newLen uint32) error {
	switch t.form() {
	case formEmpty, formInline:
		if newLen <= maxInlineLen {
			return nil
		}
		return inlineToOwned(t, newLen)
	case formShared:
		return sharedToOwned(t, newLen)
	case formOwned:
		if newLen <= t.capacity() {
			return nil
		}
		return growOwned(t, newLen)
	}
	return nil
}

func inlineToOwned(t *Tendril, newLen uint32) error {
	oldLen := t.Len()
	var tmp [maxInlineLen]byte
	copy(tmp[:oldLen], unsafe.Slice((*byte)(unsafe.Pointer(&t.a)), oldLen))

	h, capacity, err := alloc.Alloc(newLen)
	if err != nil {
		return mapAllocErr(err)
	}
	copy(alloc.Buffer(h, capacity), tmp[:oldLen])

	t.ptr = uintptr(h)
	t.a = oldLen
	t.b = capacity
	return nil
}

func sharedToOwned(t *Tendril, newLen uint32) error {
	oldHandle := t.handle()
	oldLen := t.Len()
	oldOffset := t.offset()
	oldCapacity := alloc.HeaderCapacity(oldHandle)

	h, capacity, err := alloc.Alloc(newLen)
	if err != nil {
		return mapAllocErr(err)
	}
	src := alloc.Buffer(oldHandle, oldCapacity)
	copy(alloc.Buffer(h, capacity), src[oldOffset:oldOffset+oldLen])

	if alloc.DecRef(oldHandle) == 0 {
		alloc.Free(oldHandle, oldCapacity)
	}

	t.ptr = uintptr(h)
	t.a = oldLen
	t.b = capacity
	return nil
}

func growOwned(t *Tendril, newLen uint32) error {
	oldHandle := t.handle()
	oldCapacity := t.capacity()
	oldLen := t.Len()

	want := newLen
	if doubled, ok := buf.MulOverflowSafe(int(oldCapacity), 2); ok && doubled > 0 && uint64(doubled) <= math.MaxUint32 && uint32(doubled) > want {
		want = uint32(doubled)
	}

	h, capacity, err := alloc.Alloc(want)
	if err != nil {
		return mapAllocErr(err)
	}
	copy(alloc.Buffer(h, capacity), alloc.Buffer(oldHandle, oldCapacity)[:oldLen])
	alloc.Free(oldHandle, oldCapacity)

	t.ptr = uintptr(h)
	t.a = oldLen
	t.b = capacity
	return nil
}

// writeTail copies src into t's content at [oldLen:newLen). Called only
// after ensureCapacity has guaranteed the room; dispatches on t.form()
// rather than the target length alone, since a Tendril that grew past the
// inline threshold and later shrank back under it stays owned (pop.go
// never demotes heap-backed storage back to inline) — newLen <= 8 there
// still means "write through alloc.Buffer", not "write into t.a/t.b".
func writeTail(t *Tendril, oldLen, newLen uint32, src []byte) {
	if t.form() != formOwned {
		dst := unsafe.Slice((*byte)(unsafe.Pointer(&t.a)), newLen)
		copy(dst[oldLen:], src)
		t.ptr = uintptr(newLen)
		return
	}
	dst := alloc.Buffer(t.handle(), t.capacity())
	copy(dst[oldLen:newLen], src)
	t.a = newLen
}

func mapAllocErr(err error) error {
	if err == alloc.ErrOverflow {
		return ErrOverflow
	}
	return ErrOutOfMemory
}
