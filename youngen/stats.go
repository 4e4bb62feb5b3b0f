package youngen

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Stats is the numbers a caller cares about after a collection
// completes.
type Stats struct {
	Lifetime        int     `json:"lifetime"`
	PercentageUsed  float64 `json:"percentage_used"`
	PromotedObjects int64   `json:"promoted_objects"`
	ExcessObjects   int64   `json:"excess_objects"`
	Collections     int64   `json:"collections"`
}

// Dump encodes stats the way the rest of the corpus encodes REST
// payloads — via jsoniter rather than encoding/json — for a caller that
// wants to ship a collection's numbers out over a diagnostics channel.
func (s *Stats) Dump(w io.Writer) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
