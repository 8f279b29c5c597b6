package privates

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one signed earnings adjustment. Entries are append-only and
// chronological; they are never reordered or mutated after the fact.
type LedgerEntry struct {
	TS     time.Time
	Delta  Amount
	Reason string // optional free-text rationale
}

// MarshalJSON implements the json.Marshaler interface for LedgerEntry. The
// timestamp is written as epoch milliseconds, matching the persisted and
// interchange payloads. The reason is always present, even when empty.
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ts", timeMillis(e.TS))
	w.Append("delta", e.Delta)
	w.Append("reason", e.Reason)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for LedgerEntry.
func (e *LedgerEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		TS     int64           `json:"ts"`
		Delta  decimal.Decimal `json:"delta"`
		Reason string          `json:"reason"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.TS = millisTime(temp.TS)
	e.Delta = Amount{value: temp.Delta}
	e.Reason = temp.Reason
	return nil
}
