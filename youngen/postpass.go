package youngen

import "github.com/arborvm/bakergc/core"

// walkFinalizers gives objects with finalizers one extra collection to
// survive so the runtime can run their finalizer afterward. Liveness is
// decided from the strong-graph fixpoint *before* the object is
// forcibly evacuated here, since evacuating it would make Forwarded()
// trivially true and destroy the signal.
func (y *Young) walkFinalizers() {
	if y.finalizers == nil {
		return
	}
	it := y.finalizers.Iterate()
	for it.More() {
		rec := it.Current()
		live := true

		if rec.Object != nil && rec.Object.IsYoung() {
			live = rec.Object.Forwarded()
			rec.Object = y.ev.SawObject(rec.Object)
		}
		if rec.Finalizer != nil && rec.Finalizer.IsYoung() {
			rec.Finalizer = y.ev.SawObject(rec.Finalizer)
		}

		it.Advance(live)
	}
}

// unreachable reports whether ref is a young object that the strong
// fixpoint never forwarded — the oracle used for both weakref clearing
// and locked-object eviction.
func unreachable(ref core.Ref) bool {
	return ref != nil && ref.IsYoung() && !ref.Forwarded()
}

// cleanWeakrefs clears any weakref whose target never got forwarded by
// the strong graph to the nil sentinel; any target that was forwarded
// is rewritten to its new address.
func (y *Young) cleanWeakrefs() {
	if y.weakrefs == nil {
		return
	}
	y.weakrefs.All(func(w WeakRef) bool {
		t := w.Target()
		switch {
		case t == nil:
		case unreachable(t):
			w.Clear()
		case t.Forwarded():
			w.SetTarget(t.Forward())
		}
		return true
	})
}

// cleanLockedObjects prunes the per-thread locked-object list for every
// thread that tracks one.
func (y *Young) cleanLockedObjects(data *GCData) {
	if data.Threads == nil {
		return
	}
	data.Threads(func(th Thread) bool {
		if cl, ok := th.(LockedObjectLister); ok {
			cl.CleanLocked(unreachable)
		}
		return true
	})
}
