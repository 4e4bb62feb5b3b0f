package youngen

import (
	"errors"

	cosatomic "github.com/arborvm/bakergc/cmn/atomic"
	"github.com/arborvm/bakergc/cmn/cos"
	"github.com/arborvm/bakergc/cmn/debug"
	"github.com/arborvm/bakergc/cmn/nlog"
	"github.com/arborvm/bakergc/core"
)

// Config is the collector's construction-time configuration: the
// survivor-byte size, the autotune flag, and the steady-state lifetime,
// plus the type-id bounds the evacuator asserts against and an opt-in
// debug guard-page feature.
type Config struct {
	SurvivorBytes    uintptr
	Autotune         bool
	OriginalLifetime int
	TypeIDMin        int32
	TypeIDMax        int32
	GuardPages       bool
}

// Young is the Baker-style young-generation collector: one Eden region
// plus two equal survivor spaces that swap current/next roles on every
// collection.
type Young struct {
	eden          *Heap
	a, b          *Heap
	current, next *Heap

	ev *Evacuator

	rs    WriteBarrier
	auxRS []WriteBarrier

	mature     MatureSink
	finalizers FinalizerRegistry
	weakrefs   WeakrefTable

	lifetime      int
	origLifetime  int
	tuneThreshold int
	autotune      bool

	typeIDMin, typeIDMax int32

	guard guardPages

	totalCollections cosatomic.Int64
	handleErrs       cos.ErrValue
}

// New constructs a Young collector. mature is required; rs may be nil
// for a runtime with no write barrier wired up yet (the primary
// remembered-set drain is then simply skipped); aux, finalizers, and
// weakrefs are all optional collaborators.
func New(cfg Config, mature MatureSink, rs WriteBarrier, aux []WriteBarrier, finalizers FinalizerRegistry, weakrefs WeakrefTable) (*Young, error) {
	debug.Assert(cfg.SurvivorBytes > 0, "survivor size must be positive")
	lifetime := cfg.OriginalLifetime
	if lifetime <= 0 {
		lifetime = 1
	}

	half := cfg.SurvivorBytes
	eden := NewHeap("eden", half*2)
	a := NewHeap("survivor-a", half)
	b := NewHeap("survivor-b", half)

	guard, err := newGuard(cfg.GuardPages, half)
	if err != nil {
		return nil, err
	}

	y := &Young{
		eden:         eden,
		a:            a,
		b:            b,
		current:      a,
		next:         b,
		rs:           rs,
		auxRS:        aux,
		mature:       mature,
		finalizers:   finalizers,
		weakrefs:     weakrefs,
		lifetime:     lifetime,
		origLifetime: lifetime,
		autotune:     cfg.Autotune,
		typeIDMin:    cfg.TypeIDMin,
		typeIDMax:    cfg.TypeIDMax,
		guard:        guard,
	}
	y.ev = newEvacuator(y.next, mature, lifetime, cfg.TypeIDMin, cfg.TypeIDMax)
	return y, nil
}

// Close releases any debug guard-page arenas. Safe to call even when
// guard pages were never enabled.
func (y *Young) Close() error { return y.guard.close() }

// Eden exposes the Eden region for mutator-side allocation bookkeeping;
// the collector itself never allocates into it.
func (y *Young) Eden() *Heap { return y.eden }

// Current is the active survivor space (from-space at collection entry).
func (y *Young) Current() *Heap { return y.current }

// Lifetime is the current promotion-age threshold.
func (y *Young) Lifetime() int { return y.lifetime }

// TotalCollections is the number of minor collections run so far.
func (y *Young) TotalCollections() int64 { return y.totalCollections.Load() }

// HandleErrors returns the first invalid-handle or wrong-object anomaly
// observed since construction, annotated with how many such anomalies
// have occurred in total, or nil if none have.
func (y *Young) HandleErrors() error { return y.handleErrs.Err() }

// Collect runs one minor collection against data, sequencing exactly:
// remembered sets → roots → threads → handles → global handle
// locations → JIT state → strong fixpoint → finalizers → second
// fixpoint → weakrefs → locked objects → swap → autotune. The order is
// load-bearing: later steps depend on invariants only earlier ones
// establish (e.g. finalizer liveness must be read before the finalizer
// walk forces evacuation).
func (y *Young) Collect(data *GCData, stats *Stats) error {
	if err := y.guard.ensureWritable(); err != nil {
		return err
	}

	y.ev.reset(y.lifetime)

	y.drainRememberedSets()
	y.scanRoots(data)
	y.scanThreads(data)
	y.scanHandles(data)
	y.scanGlobalHandles(data)
	y.scanJIT(data)

	y.handlePromotions()
	debug.Assertf(y.next.FullyScanned(), "young generation not fully scanned after strong fixpoint")

	y.walkFinalizers()
	y.handlePromotions()

	if !y.ev.promotedEmpty() {
		debug.Bug("promoted stack has elements after finalizer fixpoint")
	}
	if !y.next.FullyScanned() {
		debug.Bug("young generation not fully scanned after finalizer fixpoint")
	}

	y.cleanWeakrefs()
	y.cleanLockedObjects(data)

	// Only the driver performs the swap, and only after every step that
	// refers to the pre-swap current/next roles has run to completion.
	y.current, y.next = y.next, y.current
	percentUsed := y.current.PercentageUsed()
	y.totalCollections.Inc()

	if stats != nil {
		stats.Lifetime = y.lifetime
		stats.PercentageUsed = percentUsed
		stats.PromotedObjects = y.ev.promotedObjects
		stats.ExcessObjects = y.ev.copySpills
		stats.Collections = y.totalCollections.Load()
	}

	if y.autotune {
		y.autotuneStep(percentUsed)
	}

	// The old current (now next) and Eden are both conceptually dead;
	// reset them so the entry invariant ("next is empty") holds for the
	// following collection and Eden is ready for the next alloc cycle.
	y.next.Reset()
	y.eden.Reset()
	y.ev.next = y.next

	return nil
}

func (y *Young) drainRememberedSets() {
	if y.rs != nil {
		for _, tmp := range y.rs.SwapRememberSet() {
			if tmp == nil {
				continue // unremember tombstone
			}
			tmp.ClearRemember()
			y.scanObject(tmp)
		}
	}
	for _, wb := range y.auxRS {
		for _, tmp := range wb.SwapRememberSet() {
			if tmp == nil {
				continue
			}
			tmp.ClearRemember()
			y.scanObject(tmp)
		}
	}
}

func (y *Young) scanRoots(data *GCData) {
	if data.Roots == nil {
		return
	}
	data.Roots(func(slot RootSlot) bool {
		slot.Set(y.ev.SawObject(slot.Get()))
		return true
	})
}

func (y *Young) scanThreads(data *GCData) {
	if data.Threads == nil {
		return
	}
	data.Threads(func(th Thread) bool {
		th.MarkFields(func(slot *core.Ref) {
			*slot = y.ev.SawObject(*slot)
		})
		return true
	})
}

func (y *Young) scanHandles(data *GCData) {
	if data.Handles == nil {
		return
	}
	data.Handles.Handles(func(h Handle) bool {
		if !h.InUse() {
			return true
		}
		if !h.Valid() {
			y.reportHandleError("invalid handle in use")
			return true
		}
		obj := h.Object()
		if !h.Weak() && obj == nil {
			y.reportHandleError("in-use strong handle has no object")
			return true
		}
		switch {
		case !h.Weak() && obj.IsYoung():
			h.SetObject(y.ev.SawObject(obj))
		case obj != nil && !obj.IsYoung() && h.IsRData():
			// Foreign code may mutate an RData's payload without a
			// write barrier; the only safe rule is to rescan every
			// mature foreign-payload object on every collection.
			y.scanObject(obj)
		}
		if obj != nil {
			y.ev.checkTypeID(obj)
		}
		return true
	})
}

func (y *Young) scanGlobalHandles(data *GCData) {
	if data.GlobalHandles == nil {
		return
	}
	data.GlobalHandles(func(loc GlobalHandleLocation) bool {
		hdl, ok := loc.Load()
		if !ok || hdl == nil {
			return true
		}
		if !hdl.Valid() {
			y.reportHandleError("detected bad handle checking global handles")
			return true
		}
		obj := hdl.Object()
		if obj != nil && obj.IsReference() && obj.IsYoung() {
			hdl.SetObject(y.ev.SawObject(obj))
		}
		return true
	})
}

func (y *Young) scanJIT(data *GCData) {
	if data.JIT != nil {
		data.JIT.GCScan(y.ev)
	}
}

// reportHandleError logs a non-fatal handle-table anomaly and
// accumulates it into handleErrs so a caller can retrieve the first one
// seen (and how many occurred in total) via HandleErrors.
func (y *Young) reportHandleError(msg string) {
	nlog.Errorln(msg)
	y.handleErrs.Store(errors.New(msg))
}
