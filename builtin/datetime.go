package builtin

import "time"

// DateTime is a UTC instant, conceptually 100ns ticks since 1601-01-01 per
// the OPC UA binary encoding, represented here with time.Time since the
// JSON encoding only ever needs second-granularity ISO-8601 text.
type DateTime struct {
	t time.Time
}

// DateTimeMin and DateTimeMax are the clamp boundaries for JSON encoding
// (OPC UA Part 6): values outside this range are clamped, not rejected.
var (
	DateTimeMin = NewDateTime(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC))
	DateTimeMax = NewDateTime(time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC))
)

// NewDateTime wraps t, normalizing it to UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.UTC()}
}

// Time returns the underlying instant, not yet clamped.
func (d DateTime) Time() time.Time {
	return d.t
}

// Clamped returns d's instant clamped into [DateTimeMin, DateTimeMax], per
// the Part 6 JSON mapping: "values below the minimum ... clamp to the minimum;
// values above the maximum ... clamp to the maximum."
func (d DateTime) Clamped() DateTime {
	if d.t.Before(DateTimeMin.t) {
		return DateTimeMin
	}
	if d.t.After(DateTimeMax.t) {
		return DateTimeMax
	}
	return d
}

// ISO8601 renders the clamped instant as a quoted-ready ISO-8601 string
// with seconds precision and a trailing "Z", e.g. "2024-03-05T12:00:00Z".
func (d DateTime) ISO8601() string {
	return d.Clamped().t.Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}
