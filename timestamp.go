package tokenlist

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is RFC 3339 with a mandatory numeric UTC offset. The token
// list schema requires an explicit offset, so a zero offset renders as
// "+00:00" rather than "Z".
const timestampLayout = "2006-01-02T15:04:05.999999999-07:00"

// Timestamp is the creation time of an immutable token list version. It
// carries a fixed UTC offset that survives a decode/encode round trip.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps the given time as a token list timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp in RFC 3339 form with a numeric offset.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	encoded, err := json.Marshal(t.Format(timestampLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to encode timestamp: %w", err)
	}

	return encoded, nil
}

// UnmarshalJSON decodes an RFC 3339 timestamp. A "Z" suffix is accepted on
// input and is encoded back as "+00:00".
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode timestamp: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp '%s': %w", raw, err)
	}

	t.Time = parsed

	return nil
}
