package youngen

import (
	"github.com/arborvm/bakergc/core"
)

// Heap is a contiguous bump-allocated semispace region. Addresses in a
// raw-pointer Baker collector are pointers into that region; here a
// "moved" object's address is the core.Ref returned by MoveObject, and
// Contains is answered by set membership rather than a pointer-range
// test — documented in DESIGN.md as a Go-native translation.
type Heap struct {
	name    string
	cap     uintptr
	used    uintptr
	objs    []core.Ref
	members map[core.Ref]struct{}
	scanIdx int
}

// NewHeap constructs an empty heap of the given byte capacity.
func NewHeap(name string, capacity uintptr) *Heap {
	return &Heap{
		name:    name,
		cap:     capacity,
		members: make(map[core.Ref]struct{}),
	}
}

func (h *Heap) Name() string     { return h.name }
func (h *Heap) Size() uintptr    { return h.cap }
func (h *Heap) Used() uintptr    { return h.used }
func (h *Heap) NumObjects() int  { return len(h.objs) }

// Allocate reserves n bytes from the bump pointer. This is a
// mutator-facing fast path the collector itself never calls; it is
// implemented here only so Eden supports callers that want to simulate
// allocation pressure in tests.
func (h *Heap) Allocate(n uintptr) bool {
	if !h.EnoughSpace(n) {
		return false
	}
	h.used += n
	return true
}

func (h *Heap) EnoughSpace(n uintptr) bool { return h.used+n <= h.cap }

// Contains reports whether ref currently lives in this heap.
func (h *Heap) Contains(ref core.Ref) bool {
	if ref == nil {
		return false
	}
	_, ok := h.members[ref]
	return ok
}

// MoveObject copies obj's payload into this heap at the current bump
// pointer and returns the new reference. The caller (the Evacuator) must
// already have confirmed EnoughSpace(obj.SizeInBytes()) and is
// responsible for setting the forwarding record on obj itself — Heap
// only owns the destination bookkeeping, not the forwarding protocol.
func (h *Heap) MoveObject(obj core.Ref) core.Ref {
	cp := obj.CopyPayload()
	h.objs = append(h.objs, cp)
	h.members[cp] = struct{}{}
	h.used += obj.SizeInBytes()
	return cp
}

// NextUnscanned advances the scan cursor to the next not-yet-scanned
// copied object, or returns ok=false once the cursor has caught the
// bump pointer (Cheney-style: scan order equals allocation order).
func (h *Heap) NextUnscanned() (core.Ref, bool) {
	if h.scanIdx >= len(h.objs) {
		return nil, false
	}
	obj := h.objs[h.scanIdx]
	h.scanIdx++
	return obj, true
}

// FullyScanned reports whether the scan cursor has caught the bump
// pointer: every copied object has been visited.
func (h *Heap) FullyScanned() bool { return h.scanIdx == len(h.objs) }

func (h *Heap) PercentageUsed() float64 {
	if h.cap == 0 {
		return 0
	}
	return float64(h.used) / float64(h.cap) * 100
}

// Reset clears the heap back to empty: bump pointer and scan cursor both
// to start. Called on the old `current` (post-swap, the new `next`) at
// the end of a collection, and on Eden, so both satisfy the entry
// invariant that `next` — and Eden, for the next allocation cycle — is
// empty.
func (h *Heap) Reset() {
	h.objs = h.objs[:0]
	h.members = make(map[core.Ref]struct{})
	h.used = 0
	h.scanIdx = 0
}
