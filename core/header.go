package core

// Header is an embeddable base implementing every Ref method except the
// two that are necessarily type-specific (MarkFields, CopyPayload).
// Concrete object types embed *Header and add that pair of methods.
type Header struct {
	typeID   int32
	size     uintptr
	young    bool
	age      int
	remember bool
	fwd      Ref
}

// NewHeader constructs the embeddable base for a freshly allocated
// object. young is normally true: fresh allocations land in Eden.
func NewHeader(typeID int32, size uintptr, young bool) *Header {
	return &Header{typeID: typeID, size: size, young: young}
}

func (h *Header) IsReference() bool    { return true }
func (h *Header) IsYoung() bool        { return h.young }
func (h *Header) SetYoung(young bool)  { h.young = young }
func (h *Header) Forwarded() bool      { return h.fwd != nil }
func (h *Header) Forward() Ref         { return h.fwd }
func (h *Header) SetForward(r Ref)     { h.fwd = r }
func (h *Header) Age() int             { return h.age }
func (h *Header) IncAge() int          { h.age++; return h.age }
func (h *Header) Remember() bool       { return h.remember }
func (h *Header) ClearRemember()       { h.remember = false }
func (h *Header) SetRemember(v bool)   { h.remember = v }
func (h *Header) SizeInBytes() uintptr { return h.size }
func (h *Header) TypeID() int32        { return h.typeID }

// CloneInto returns a fresh Header carrying over type id, size, and age
// (age is a survival count and must persist across an evacuation) but
// resetting remember and forward — a copy is never already forwarded
// and never arrives with a stale write-barrier bit. young is passed
// explicitly by the caller, normally a CopyPayload implementation;
// Evacuator.promote additionally calls SetYoung(false) on whatever copy
// the mature sink returns.
func (h *Header) CloneInto(young bool) *Header {
	return &Header{
		typeID: h.typeID,
		size:   h.size,
		young:  young,
		age:    h.age,
	}
}
