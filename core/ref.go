// Package core defines the object protocol the young-generation
// collector depends on but does not implement: the contract a
// heterogeneously typed managed-object runtime must satisfy so that
// package youngen can evacuate, scan, and forward its objects.
// CopyPayload and SetYoung are Go-native additions to that contract,
// documented in DESIGN.md, needed because Go has no raw address space
// to copy bytes into and no pointer-range test for "is this young".
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package core

// MarkFunc is invoked once per reference-typed field of a scanned object.
// The callback receives the address of the slot (not its value) so it can
// rewrite the field in place with the evacuated address, passed explicitly
// as a mark context rather than through a thread-local, since Go has
// closures.
type MarkFunc func(slot *Ref)

// Ref is the external object protocol: every heap-resident value the
// collector may encounter implements it.
type Ref interface {
	// IsReference reports whether this value is a heap reference at all,
	// as opposed to a tagged immediate (see Tagged).
	IsReference() bool

	// IsYoung reports whether the object currently lives in Eden or
	// either survivor space. A real Baker GC derives this from the
	// object's address; this protocol stores it explicitly (see
	// SetYoung) because Go objects carry no address range to test.
	IsYoung() bool
	SetYoung(young bool)

	// Forwarded/Forward/SetForward implement the forwarding protocol:
	// once an object is evacuated, Forwarded reports true and Forward
	// returns its new location. SetForward is called
	// exactly once per object, by the evacuator, and must never be
	// called again afterward.
	Forwarded() bool
	Forward() Ref
	SetForward(Ref)

	// Age/IncAge track how many young-generation collections an object
	// has survived. IncAge returns the incremented value so the caller
	// can compare it against the promotion threshold in one step.
	Age() int
	IncAge() int

	// Remember/ClearRemember implement the mature-object side of the
	// write barrier: Remember is true while the object is queued in a
	// remembered set for this or some future collection.
	Remember() bool
	ClearRemember()

	// SizeInBytes must be stable between the moment an object is
	// evacuated and the moment its copy is scanned.
	SizeInBytes() uintptr

	// TypeID is opaque to the collector; it is only ever bounds-checked
	// after evacuation, as a corruption guard.
	TypeID() int32

	// MarkFields invokes cb once per reference-typed field.
	MarkFields(cb MarkFunc)

	// CopyPayload returns a new Ref carrying the same user-visible
	// field values as the receiver, with a fresh identity and no
	// forwarding record — the Go analogue of move_object's raw byte
	// copy into to-space or mature space. Implementations should use
	// Header.CloneInto to carry over the embedded bookkeeping fields
	// (age, type id, size) correctly.
	CopyPayload() Ref
}
