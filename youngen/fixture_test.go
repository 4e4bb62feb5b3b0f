package youngen

import "github.com/arborvm/bakergc/core"

// cell is the minimal concrete object protocol implementation used
// across this package's tests: an embeddable *core.Header plus a
// payload value and a slice of reference-typed fields.
type cell struct {
	*core.Header
	value  int
	fields []core.Ref
}

func newCell(typeID int32, size uintptr, value int, fields ...core.Ref) *cell {
	return &cell{Header: core.NewHeader(typeID, size, true), value: value, fields: fields}
}

func (c *cell) MarkFields(cb core.MarkFunc) {
	for i := range c.fields {
		cb(&c.fields[i])
	}
}

func (c *cell) CopyPayload() core.Ref {
	return &cell{
		Header: c.Header.CloneInto(true),
		value:  c.value,
		fields: append([]core.Ref(nil), c.fields...),
	}
}

// matureHeap is a trivial MatureSink fixture: it just keeps every
// promoted object in a slice so tests can assert on promotion counts.
type matureHeap struct {
	objs []core.Ref
	fail bool
}

func (m *matureHeap) PromoteObject(obj core.Ref) (core.Ref, error) {
	if m.fail {
		return nil, errPromotionFailed
	}
	cp := obj.CopyPayload()
	m.objs = append(m.objs, cp)
	return cp, nil
}

// rememberedSet is a trivial WriteBarrier fixture.
type rememberedSet struct {
	pending []core.Ref
}

func (r *rememberedSet) remember(obj *cell) {
	obj.SetRemember(true)
	r.pending = append(r.pending, obj)
}

func (r *rememberedSet) SwapRememberSet() []core.Ref {
	old := r.pending
	r.pending = nil
	return old
}

// rootSlot is a trivial RootSlot fixture backed by a single field.
type rootSlot struct{ ref core.Ref }

func (s *rootSlot) Get() core.Ref  { return s.ref }
func (s *rootSlot) Set(r core.Ref) { s.ref = r }

func rootsOf(slots ...*rootSlot) func(func(RootSlot) bool) {
	return func(yield func(RootSlot) bool) {
		for _, s := range slots {
			if !yield(s) {
				return
			}
		}
	}
}

// weakref is a trivial WeakRef fixture.
type weakref struct{ target core.Ref }

func (w *weakref) Target() core.Ref  { return w.target }
func (w *weakref) SetTarget(r core.Ref) { w.target = r }
func (w *weakref) Clear()            { w.target = nil }

type weakTable struct{ refs []*weakref }

func (t *weakTable) All(yield func(WeakRef) bool) {
	for _, w := range t.refs {
		if !yield(w) {
			return
		}
	}
}

// finalizerReg is a trivial FinalizerRegistry fixture that records the
// liveness it was advanced with, for test assertions.
type finalizerReg struct {
	records []*FinalizerRecord
	i       int
	lastLiveness map[core.Ref]bool
}

func newFinalizerReg(records ...*FinalizerRecord) *finalizerReg {
	return &finalizerReg{records: records, lastLiveness: map[core.Ref]bool{}}
}

func (f *finalizerReg) Iterate() FinalizerIterator { return &finalizerIter{reg: f} }

type finalizerIter struct {
	reg *finalizerReg
}

func (it *finalizerIter) More() bool { return it.reg.i < len(it.reg.records) }

func (it *finalizerIter) Current() *FinalizerRecord { return it.reg.records[it.reg.i] }

func (it *finalizerIter) Advance(live bool) {
	rec := it.reg.records[it.reg.i]
	it.reg.lastLiveness[rec.Object] = live
	it.reg.i++
}

type bugError struct{ msg string }

func (e *bugError) Error() string { return e.msg }

var errPromotionFailed = &bugError{msg: "mature heap full"}
