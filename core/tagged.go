package core

// Tagged wraps a non-reference immediate value (a small integer, a
// boolean, a character — whatever the embedding runtime represents
// without a heap allocation) so it can flow through code that expects a
// Ref. The evacuator's first decision-ladder step returns these
// unchanged.
type Tagged struct {
	Value any
}

func (Tagged) IsReference() bool      { return false }
func (Tagged) IsYoung() bool          { return false }
func (Tagged) SetYoung(bool)          {}
func (Tagged) Forwarded() bool        { return false }
func (Tagged) Forward() Ref           { return nil }
func (Tagged) SetForward(Ref)         {}
func (Tagged) Age() int               { return 0 }
func (Tagged) IncAge() int            { return 0 }
func (Tagged) Remember() bool         { return false }
func (Tagged) ClearRemember()         {}
func (Tagged) SizeInBytes() uintptr   { return 0 }
func (Tagged) TypeID() int32          { return -1 }
func (Tagged) MarkFields(MarkFunc)    {}
func (t Tagged) CopyPayload() Ref     { return t }

var _ Ref = Tagged{}
