package youngen

import "github.com/arborvm/bakergc/core"

// This file declares the external collaborator contracts: the
// mature-generation sink, the write-barrier's remembered sets, the
// native handle table, root/thread/JIT sources, the finalizer registry,
// and the weak-reference table. The collector depends on these; it does
// not implement them. Iteration is modeled with push-style iterator
// functions of the func(yield func(T) bool) shape, called directly by
// the driver, treating each heterogeneous source as an iterator
// capability rather than a deep interface hierarchy.

type (
	// MatureSink is the external mature-generation collaborator.
	// PromoteObject copies obj into the mature heap and returns its new
	// address. Failure is assumed unrecoverable — the mature allocator
	// is treated as infallible within the collector; callers must
	// expand the mature heap out-of-band.
	MatureSink interface {
		PromoteObject(obj core.Ref) (core.Ref, error)
	}

	// WriteBarrier is the primary or an auxiliary remembered set.
	// SwapRememberSet atomically swaps in a fresh empty set and returns
	// the set accumulated since the last swap for the collector to
	// drain. A nil entry in the returned slice is an unremember
	// tombstone and must be skipped, not dereferenced.
	WriteBarrier interface {
		SwapRememberSet() []core.Ref
	}

	// RootSlot is a single root location: a stack slot, a global, a VM
	// register — anything the driver must rewrite in place.
	RootSlot interface {
		Get() core.Ref
		Set(core.Ref)
	}

	// Thread exposes per-thread GC state (frames, locals) for scanning,
	// and the per-thread locked-object list for the post-pass.
	Thread interface {
		MarkFields(cb core.MarkFunc)
	}

	// LockedObjectLister is implemented by a Thread that also tracks a
	// locked-object list. CleanLocked calls unreachable for every locked
	// object and drops the ones it reports true for.
	LockedObjectLister interface {
		CleanLocked(unreachable func(core.Ref) bool)
	}

	// Handle is one entry in the native handle table.
	Handle interface {
		InUse() bool
		Weak() bool
		IsRData() bool
		Valid() bool
		Object() core.Ref
		SetObject(core.Ref)
	}

	// HandleTable allocates and iterates native handles.
	HandleTable interface {
		Handles(yield func(Handle) bool)
	}

	// GlobalHandleLocation is a pointer-to-handle-pointer held by
	// foreign code. Load dereferences it; ok is false for a nil slot.
	GlobalHandleLocation interface {
		Load() (Handle, bool)
	}

	// JITState is the optional JIT/codegen collaborator; GCScan is its
	// own root-scanning hook, invoked with the live Evacuator so it can
	// rewrite whatever references it holds.
	JITState interface {
		GCScan(ev *Evacuator)
	}

	// FinalizerRecord pairs a finalizable object with its (optional)
	// user-level finalizer callback object.
	FinalizerRecord struct {
		Object    core.Ref
		Finalizer core.Ref
	}

	// FinalizerIterator walks the finalizer registry. Advance must be
	// called exactly once per record, with the liveness decided by the
	// caller before evacuation, so the registry can schedule dead
	// objects' finalizers.
	FinalizerIterator interface {
		More() bool
		Current() *FinalizerRecord
		Advance(live bool)
	}

	// FinalizerRegistry is the external finalizer collaborator.
	FinalizerRegistry interface {
		Iterate() FinalizerIterator
	}

	// WeakRef is one entry in the weak-reference table.
	WeakRef interface {
		Target() core.Ref
		SetTarget(core.Ref)
		Clear()
	}

	// WeakrefTable iterates all registered weak references.
	WeakrefTable interface {
		All(yield func(WeakRef) bool)
	}

	// GCData bundles everything the driver pulls from per collection.
	// Threads, Handles, GlobalHandles, and JIT are all optional —
	// nil/zero means absent.
	GCData struct {
		Roots         func(yield func(RootSlot) bool)
		Threads       func(yield func(Thread) bool)
		Handles       HandleTable
		GlobalHandles func(yield func(GlobalHandleLocation) bool)
		JIT           JITState
	}
)
