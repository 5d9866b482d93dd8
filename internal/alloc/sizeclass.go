package alloc

// MinCapacity is the smallest heap block capacity ever handed out. Matches
// buf32::MIN_CAP in the source tendril crate: even a push that crosses the
// inline threshold by a single byte gets a block worth growing into.
const MinCapacity = 16

// SizeClassConfig tunes the allocator's bucket strategy.
//
// Every capacity at or below LargeThreshold is rounded up to the next power
// of two and served from a slab with a per-class free list (see slab.go).
// Capacities above LargeThreshold skip bucketing and get their own
// dedicated page reservation, freed immediately on release instead of
// returning to a free list — there is no benefit pooling blocks large
// enough that a handful of them already fill a slab.
type SizeClassConfig struct {
	MinCapacity    uint32
	LargeThreshold uint32
}

// DefaultSizeClasses is the configuration used by the package-level allocator.
// LargeThreshold is 4096 minus HeaderLen, so a request of exactly
// LargeThreshold bytes plus its header spans exactly one 4KiB page; any
// larger request takes the large path.
var DefaultSizeClasses = SizeClassConfig{
	MinCapacity:    MinCapacity,
	LargeThreshold: uint32(4096 - headerLen),
}

// classFor rounds want up to a servable capacity and reports whether it
// belongs on the large path.
func (c SizeClassConfig) classFor(want uint32) (capacity uint32, large bool, err error) {
	if want < c.MinCapacity {
		want = c.MinCapacity
	}
	if want > c.LargeThreshold {
		return want, true, nil
	}
	p2, ok := nextPowerOfTwo(want)
	if !ok {
		return 0, false, ErrOverflow
	}
	return p2, false, nil
}

// nextPowerOfTwo returns the smallest power of two >= n, and false if no
// uint32 power of two can represent it (n > 1<<31).
func nextPowerOfTwo(n uint32) (uint32, bool) {
	if n > 1<<31 {
		return 0, false
	}
	if n <= 1 {
		return 1, true
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1, true
}
