//go:build !unix

package youngen

// Non-unix builds have no portable mmap/mprotect; the guard-page feature
// degrades to a no-op rather than failing construction.
func newArena(size uintptr) ([]byte, error) { return make([]byte, size), nil }

func protectArena([]byte, bool) error { return nil }

func freeArena([]byte) error { return nil }
