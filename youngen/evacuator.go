package youngen

import (
	"github.com/arborvm/bakergc/cmn/debug"
	"github.com/arborvm/bakergc/core"
)

// Evacuator implements the per-reference evacuation decision: given any
// reference encountered while scanning the live graph, decide whether
// to ignore it, return its existing forward, copy it into to-space, or
// promote it to the mature heap.
type Evacuator struct {
	next     *Heap
	mature   MatureSink
	lifetime int

	promoted        []core.Ref
	totalObjects    int64
	copySpills      int64
	promotedObjects int64

	typeIDMin, typeIDMax int32
}

func newEvacuator(next *Heap, mature MatureSink, lifetime int, typeIDMin, typeIDMax int32) *Evacuator {
	return &Evacuator{
		next:      next,
		mature:    mature,
		lifetime:  lifetime,
		typeIDMin: typeIDMin,
		typeIDMax: typeIDMax,
	}
}

// reset clears per-collection counters and the promoted-object worklist;
// called at the top of Young.Collect.
func (e *Evacuator) reset(lifetime int) {
	e.lifetime = lifetime
	e.promoted = e.promoted[:0]
	e.totalObjects = 0
	e.copySpills = 0
	e.promotedObjects = 0
}

// SawObject returns the post-collection address for obj, per the
// decision ladder below. Calling it twice on the same reference within
// a collection is idempotent: the second call always lands on the
// forwarded-address branch.
func (e *Evacuator) SawObject(obj core.Ref) core.Ref {
	if obj == nil || !obj.IsReference() {
		return obj
	}
	if !obj.IsYoung() {
		return obj
	}
	if obj.Forwarded() {
		return obj.Forward()
	}
	// Already copied into to-space this cycle — can happen when
	// scanning re-encounters the very object we are working on.
	if e.next.Contains(obj) {
		return obj
	}

	var cp core.Ref
	if obj.IncAge() >= e.lifetime {
		cp = e.promote(obj)
	} else if e.next.EnoughSpace(obj.SizeInBytes()) {
		cp = e.next.MoveObject(obj)
		obj.SetForward(cp)
		e.totalObjects++
	} else {
		e.copySpills++
		cp = e.promote(obj)
	}
	return cp
}

// promote copies obj into the mature heap, sets its forwarding record,
// marks the copy no-longer-young, and queues it for deferred scanning.
// A mature-allocator failure is treated as unrecoverable.
func (e *Evacuator) promote(obj core.Ref) core.Ref {
	cp, err := e.mature.PromoteObject(obj)
	if err != nil {
		debug.Bug("mature promotion failed: %v", err)
	}
	cp.SetYoung(false)
	obj.SetForward(cp)
	e.promotedPush(cp)
	e.promotedObjects++
	return cp
}

func (e *Evacuator) promotedPush(obj core.Ref) { e.promoted = append(e.promoted, obj) }

func (e *Evacuator) promotedPop() (core.Ref, bool) {
	n := len(e.promoted)
	if n == 0 {
		return nil, false
	}
	obj := e.promoted[n-1]
	e.promoted = e.promoted[:n-1]
	return obj, true
}

func (e *Evacuator) promotedEmpty() bool { return len(e.promoted) == 0 }

// checkTypeID asserts that obj's type id is still within bounds after
// evacuation; out-of-range here means memory corruption.
func (e *Evacuator) checkTypeID(obj core.Ref) {
	id := obj.TypeID()
	debug.Assertf(id > e.typeIDMin && id < e.typeIDMax, "type id %d out of range (%d,%d)", id, e.typeIDMin, e.typeIDMax)
}
