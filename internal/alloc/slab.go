package alloc

// slab is a bump-pointer arena reserved in slabBytes chunks, adapted from
// hive/alloc's BumpAllocator: allocation is a bump of the current pointer,
// growth reserves a fresh range of pages when the current one runs out.
// Unlike BumpAllocator, free blocks are returned to a per-class free list
// (hive/alloc's FastAllocator) instead of left as permanent dead space,
// since Tendril workloads churn through short-lived heap blocks constantly.
type slab struct {
	freeLists map[uint32][]uintptr
	cur, end  uintptr
}

// slabBytes is the chunk size reserved from the OS each time the current
// slab runs out of room; one mmap/VirtualAlloc call services many blocks.
const slabBytes = 64 * 1024

func newSlab() *slab {
	return &slab{freeLists: make(map[uint32][]uintptr)}
}

// alloc returns the base address of a block with exactly `class` bytes of
// content capacity following the header.
func (s *slab) alloc(class uint32) (uintptr, error) {
	if fl := s.freeLists[class]; len(fl) > 0 {
		addr := fl[len(fl)-1]
		s.freeLists[class] = fl[:len(fl)-1]
		return addr, nil
	}

	blockSize := uintptr(headerLen) + uintptr(class)
	if s.cur == 0 || s.cur+blockSize > s.end {
		if err := s.grow(blockSize); err != nil {
			return 0, err
		}
	}
	addr := s.cur
	s.cur += blockSize
	return addr, nil
}

// free returns a block to the free list for its class. The remainder of the
// page it lives on is not coalesced — this is a bucket allocator, not a
// general-purpose one.
func (s *slab) free(class uint32, addr uintptr) {
	s.freeLists[class] = append(s.freeLists[class], addr)
}

// grow reserves a new slab able to service at least one block of the
// given size, abandoning whatever was left unused in the old one.
func (s *slab) grow(need uintptr) error {
	size := uintptr(slabBytes)
	for size < need {
		size *= 2
	}
	addr, err := reservePages(int(size))
	if err != nil {
		return err
	}
	s.cur = addr
	s.end = addr + size
	return nil
}
