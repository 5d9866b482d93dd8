package tendril

import "github.com/joshuapare/tendril/internal/alloc"

// Init sets t to the empty form, releasing anything it previously held.
// This is the only operation safe to call on an uninitialized Tendril.
func Init(t *Tendril) {
	Destroy(t)
}

// Destroy releases any heap reference held by t and leaves it empty.
// Destroying an already-empty or inline Tendril is a no-op beyond that
// transition to empty.
func Destroy(t *Tendril) {
	switch t.form() {
	case formOwned:
		alloc.Free(t.handle(), t.capacity())
	case formShared:
		h := t.handle()
		if alloc.DecRef(h) == 0 {
			alloc.Free(h, alloc.HeaderCapacity(h))
		}
	}
	*t = Tendril{ptr: emptyTag}
}

// Clear truncates t to length 0. An owned Tendril keeps its allocation for
// reuse by a later push; inline and shared Tendrils have nothing worth
// retaining and transition straight to empty.
func Clear(t *Tendril) {
	if t.form() == formOwned {
		t.a = 0
		return
	}
	Destroy(t)
}
