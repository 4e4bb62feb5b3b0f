package youngen

import (
	"testing"

	"github.com/arborvm/bakergc/core"
)

func newTestEvacuator(capacity uintptr, lifetime int) (*Evacuator, *Heap, *matureHeap) {
	next := NewHeap("survivor-b", capacity)
	mature := &matureHeap{}
	ev := newEvacuator(next, mature, lifetime, 0, 1000)
	return ev, next, mature
}

func TestSawObjectPassesThroughNonReferences(t *testing.T) {
	ev, _, _ := newTestEvacuator(1024, 6)
	tagged := core.Tagged{Value: 42}
	if got := ev.SawObject(tagged); got != tagged {
		t.Fatalf("SawObject(tagged) = %v, want unchanged", got)
	}
	if got := ev.SawObject(nil); got != nil {
		t.Fatalf("SawObject(nil) = %v, want nil", got)
	}
}

func TestSawObjectPassesThroughMatureObjects(t *testing.T) {
	ev, _, _ := newTestEvacuator(1024, 6)
	c := newCell(1, 16, 0)
	c.SetYoung(false)
	if got := ev.SawObject(c); got != c {
		t.Fatalf("SawObject(mature) = %v, want the same reference unchanged", got)
	}
}

func TestSawObjectReturnsExistingForward(t *testing.T) {
	ev, next, _ := newTestEvacuator(1024, 6)
	c := newCell(1, 16, 0)
	first := ev.SawObject(c)
	if !next.Contains(first) {
		t.Fatalf("first evacuation should have landed in to-space")
	}

	second := ev.SawObject(c)
	if second != first {
		t.Fatalf("revisiting a forwarded object must be idempotent: got %v, want %v", second, first)
	}
}

func TestSawObjectCopiesWhenRoom(t *testing.T) {
	ev, next, mature := newTestEvacuator(1024, 6)
	c := newCell(1, 16, 0)

	cp := ev.SawObject(c)

	if !next.Contains(cp) {
		t.Fatalf("object should have been copied into to-space")
	}
	if !c.Forwarded() || c.Forward() != cp {
		t.Fatalf("original must be forwarded to the copy")
	}
	if cp.IsYoung() != true {
		t.Fatalf("a to-space copy must still be young")
	}
	if len(mature.objs) != 0 {
		t.Fatalf("object with room in to-space must not be promoted")
	}
	if ev.totalObjects != 1 {
		t.Fatalf("totalObjects = %d, want 1", ev.totalObjects)
	}
}

func TestSawObjectPromotesAtLifetimeThreshold(t *testing.T) {
	ev, next, mature := newTestEvacuator(1024, 2)
	c := newCell(1, 16, 0)
	c.IncAge() // age now 1; one more IncAge inside SawObject reaches 2 = lifetime

	cp := ev.SawObject(c)

	if next.Contains(cp) {
		t.Fatalf("an object reaching the lifetime threshold must not land in to-space")
	}
	if len(mature.objs) != 1 || mature.objs[0] != cp {
		t.Fatalf("object should have been promoted to the mature heap")
	}
	if cp.IsYoung() {
		t.Fatalf("a promoted copy must be marked non-young")
	}
	if ev.promotedObjects != 1 {
		t.Fatalf("promotedObjects = %d, want 1", ev.promotedObjects)
	}
	if ev.promotedEmpty() {
		t.Fatalf("the promoted worklist must contain the new copy for deferred scanning")
	}
}

func TestSawObjectCopySpillPromotesWhenToSpaceFull(t *testing.T) {
	ev, _, mature := newTestEvacuator(10, 6) // too small for a 16 byte object
	c := newCell(1, 16, 0)

	cp := ev.SawObject(c)

	if len(mature.objs) != 1 {
		t.Fatalf("object should have spilled to the mature heap when to-space lacked room")
	}
	if ev.copySpills != 1 {
		t.Fatalf("copySpills = %d, want 1", ev.copySpills)
	}
	if cp.IsYoung() {
		t.Fatalf("a copy-spilled object must end up non-young")
	}
}

func TestSawObjectAlreadyInToSpaceIsReturnedUnchanged(t *testing.T) {
	ev, next, _ := newTestEvacuator(1024, 6)
	c := newCell(1, 16, 0)
	cp := next.MoveObject(c) // simulate a copy already resident in to-space, unforwarded

	got := ev.SawObject(cp)
	if got != cp {
		t.Fatalf("an object already in to-space must be returned unchanged: got %v, want %v", got, cp)
	}
}

func TestResetClearsPerCollectionState(t *testing.T) {
	ev, _, mature := newTestEvacuator(10, 1)
	c := newCell(1, 16, 0)
	ev.SawObject(c)
	if len(mature.objs) == 0 || ev.promotedEmpty() {
		t.Fatalf("setup failed to produce a promotion")
	}

	ev.reset(6)

	if ev.lifetime != 6 {
		t.Fatalf("reset should update lifetime to the new value")
	}
	if !ev.promotedEmpty() || ev.totalObjects != 0 || ev.copySpills != 0 || ev.promotedObjects != 0 {
		t.Fatalf("reset should clear all per-collection counters and worklists")
	}
}

func TestCheckTypeIDAssertsBounds(t *testing.T) {
	ev, _, _ := newTestEvacuator(1024, 6)
	c := newCell(500, 16, 0)
	ev.checkTypeID(c) // within (0,1000), must not panic
}
