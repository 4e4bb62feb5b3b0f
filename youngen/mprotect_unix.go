//go:build unix

package youngen

import "golang.org/x/sys/unix"

// newArena mmaps an anonymous, private region solely so guardPages has
// real pages to toggle protection on.
func newArena(size uintptr) ([]byte, error) {
	return unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func protectArena(arena []byte, writable bool) error {
	prot := unix.PROT_NONE
	if writable {
		prot = unix.PROT_READ | unix.PROT_WRITE
	}
	return unix.Mprotect(arena, prot)
}

func freeArena(arena []byte) error {
	return unix.Munmap(arena)
}
