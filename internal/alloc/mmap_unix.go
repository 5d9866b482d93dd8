//go:build unix

package alloc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// reservePages maps a fresh anonymous, private region of size bytes,
// readable and writable, backed by no file — the off-heap equivalent of
// malloc for a slab. Adapted from hive/dirty's use of golang.org/x/sys/unix
// for memory-mapped I/O, repointed at anonymous memory instead of a hive
// file descriptor.
func reservePages(size int) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, ErrOutOfMemory
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

// reserveLarge services the large-object path with its own dedicated mapping.
func reserveLarge(size uintptr) (uintptr, error) {
	return reservePages(int(size))
}

func releasePages(addr uintptr, size int) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if err := unix.Munmap(b); err != nil {
		return err
	}
	return nil
}

func releaseLarge(addr uintptr, size uintptr) error {
	return releasePages(addr, int(size))
}
