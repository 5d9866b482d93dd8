package tendril

import (
	"math"

	"github.com/joshuapare/tendril/internal/buf"
)

// addOverflowSafeU32 adds a and b as uint32 values, reporting overflow
// against the 2^32-1 ceiling a Tendril's length and offset fields share.
// Layered on top of internal/buf's own overflow-safe addition the same way
// buf.Slice layers its bounds check on top of it.
func addOverflowSafeU32(a, b uint32) (uint32, bool) {
	sum, ok := buf.AddOverflowSafe(int(a), int(b))
	if !ok || sum < 0 || uint64(sum) > math.MaxUint32 {
		return 0, false
	}
	return uint32(sum), true
}
