//go:build windows

package alloc

import "golang.org/x/sys/windows"

// reservePages commits a fresh region of virtual memory, the Windows
// counterpart to mmap_unix.go's anonymous mapping.
func reservePages(size int) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, ErrOutOfMemory
	}
	return addr, nil
}

func reserveLarge(size uintptr) (uintptr, error) {
	return reservePages(int(size))
}

func releasePages(addr uintptr, _ int) error {
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

func releaseLarge(addr uintptr, size uintptr) error {
	return releasePages(addr, int(size))
}
