package tendril

import (
	"fmt"

	"github.com/joshuapare/tendril/internal/alloc"
)

// describeElideAt caps how much content DebugDescribe renders before
// truncating, so describing a multi-megabyte Tendril stays cheap.
const describeElideAt = 64

// DebugDescribe replaces dst, destroying whatever it previously held, with
// a deterministic rendering of src's form, length, and (for heap-backed
// forms) capacity/refcount/offset, followed by its content. Meant for
// test-oracle diffing, not production output.
func DebugDescribe(dst, src *Tendril) error {
	var header string
	switch src.form() {
	case formEmpty:
		header = "empty len=0"
	case formInline:
		header = fmt.Sprintf("inline len=%d", src.Len())
	case formOwned:
		header = fmt.Sprintf("owned len=%d cap=%d offset=0 refcount=%d",
			src.Len(), src.capacity(), alloc.RefCount(src.handle()))
	case formShared:
		h := src.handle()
		header = fmt.Sprintf("shared len=%d cap=%d offset=%d refcount=%d",
			src.Len(), alloc.HeaderCapacity(h), src.offset(), alloc.RefCount(h))
	}

	content := src.Bytes()
	elided := false
	if uint32(len(content)) > describeElideAt {
		content = content[:describeElideAt]
		elided = true
	}

	rendered := fmt.Sprintf("%s %q", header, content)
	if elided {
		rendered += "..."
	}

	Destroy(dst)
	return PushBuffer(dst, []byte(rendered))
}
