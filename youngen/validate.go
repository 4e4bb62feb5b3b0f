package youngen

import "github.com/arborvm/bakergc/core"

// Validity is the result of ValidateObject, a debug entry point that
// never panics or logs — it only classifies.
type Validity int

const (
	// Valid means ref is in Eden or the current survivor.
	Valid Validity = iota
	// InWrongHalf means ref is in the next survivor, which should be
	// empty at rest — this indicates a bug in the caller, not in the
	// collector itself.
	InWrongHalf
	// Unknown means ref is in neither: it is mature, foreign, or bogus.
	Unknown
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case InWrongHalf:
		return "in-wrong-young-half"
	default:
		return "unknown"
	}
}

// ValidateObject classifies ref's location relative to the young
// generation's current layout. It is a debug aid, not used by Collect
// itself.
func (y *Young) ValidateObject(ref core.Ref) Validity {
	if y.current.Contains(ref) || y.eden.Contains(ref) {
		return Valid
	}
	if y.next.Contains(ref) {
		return InWrongHalf
	}
	return Unknown
}
