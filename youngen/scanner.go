package youngen

import "github.com/arborvm/bakergc/core"

// handlePromotions drains both worklists — the to-space scan cursor and
// the promoted stack — alternately until both are simultaneously empty:
// scanning either can produce new entries in the other, so neither can
// be drained in isolation.
func (y *Young) handlePromotions() bool {
	if y.ev.promotedEmpty() && y.next.FullyScanned() {
		return false
	}
	for !y.ev.promotedEmpty() || !y.next.FullyScanned() {
		for {
			obj, ok := y.ev.promotedPop()
			if !ok {
				break
			}
			y.scanObject(obj)
		}
		y.copyUnscanned()
	}
	return true
}

// copyUnscanned drains the remaining unscanned portion of to-space.
func (y *Young) copyUnscanned() {
	for {
		obj, ok := y.next.NextUnscanned()
		if !ok {
			break
		}
		if !obj.Forwarded() {
			y.scanObject(obj)
		}
	}
}

// scanObject invokes the object protocol's mark callback, routing every
// reference-typed field through the Evacuator and rewriting the slot in
// place with whatever address it returns.
func (y *Young) scanObject(obj core.Ref) {
	obj.MarkFields(func(slot *core.Ref) {
		*slot = y.ev.SawObject(*slot)
	})
}
