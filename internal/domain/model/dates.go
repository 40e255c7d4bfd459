package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Accepted string layouts for date fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Resolvable is implemented by timestamp-like values that can produce
// a concrete time on demand, e.g. a document-store timestamp that is
// resolved lazily rather than shipped as a string.
type Resolvable interface {
	ToDate() time.Time
}

// Timestamp is a document-store style seconds/nanos pair.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int64 `json:"nanos"`
}

// ToDate resolves the timestamp to a UTC time.
func (t Timestamp) ToDate() time.Time {
	return time.Unix(t.Seconds, t.Nanos).UTC()
}

// DateValue holds a date that may arrive as an ISO string, as a
// resolvable timestamp object, or not at all. The zero value is
// absent. It is the single normalization point for heterogeneous date
// fields: every strategy goes through Resolve and none of them ever
// sees a parse error.
type DateValue struct {
	raw string
	ts  Resolvable
}

// DateString wraps a raw date string. The string is validated lazily
// by Resolve, never eagerly.
func DateString(s string) DateValue {
	return DateValue{raw: s}
}

// DateFrom wraps a resolvable timestamp value.
func DateFrom(r Resolvable) DateValue {
	return DateValue{ts: r}
}

// DateAt wraps a concrete time.
func DateAt(t time.Time) DateValue {
	return DateValue{ts: Timestamp{Seconds: t.Unix(), Nanos: int64(t.Nanosecond())}}
}

// IsZero reports whether no date was supplied.
func (d DateValue) IsZero() bool {
	return d.raw == "" && d.ts == nil
}

// Resolve produces the concrete time behind the value. Absent or
// unparseable values report ok=false; Resolve never errors and never
// blocks.
func (d DateValue) Resolve() (time.Time, bool) {
	if d.ts != nil {
		return d.ts.ToDate(), true
	}
	s := strings.TrimSpace(d.raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UnmarshalJSON accepts a string, a {"seconds":…,"nanos":…} object, or
// null. Anything else is treated as absent rather than rejected.
func (d *DateValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = DateValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*d = DateValue{}
			return nil
		}
		*d = DateValue{raw: s}
		return nil
	}
	if data[0] == '{' {
		var ts Timestamp
		if err := json.Unmarshal(data, &ts); err != nil {
			*d = DateValue{}
			return nil
		}
		*d = DateValue{ts: ts}
		return nil
	}
	*d = DateValue{}
	return nil
}

// MarshalJSON emits the resolved time as RFC3339, the raw string when
// it was never parseable, or null when absent.
func (d DateValue) MarshalJSON() ([]byte, error) {
	if d.ts != nil {
		return json.Marshal(d.ts.ToDate().Format(time.RFC3339))
	}
	if d.raw != "" {
		return json.Marshal(d.raw)
	}
	return []byte("null"), nil
}
