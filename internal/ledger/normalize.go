package ledger

import (
	"log"
	"math"
	"strconv"
	"time"
)

// TimeConvertible is satisfied by serialized timestamp values that know how
// to convert themselves to a time.Time (e.g. document-store timestamps).
type TimeConvertible interface {
	Time() time.Time
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// NormalizeDate coerces a stored date of unknown representation into a
// time.Time. Unparseable or missing values fall back to the current time
// with a logged warning; a single bad record must never abort an
// aggregation, so this never returns an error.
func NormalizeDate(v interface{}) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case *time.Time:
		if d != nil {
			return *d
		}
	case TimeConvertible:
		return d.Time()
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t
			}
		}
		if n, err := strconv.ParseInt(d, 10, 64); err == nil {
			return epochToTime(n)
		}
		log.Printf("WARN: unparseable date %q, falling back to now", d)
		return time.Now()
	case int64:
		return epochToTime(d)
	case int:
		return epochToTime(int64(d))
	case float64:
		return epochToTime(int64(d))
	}
	log.Printf("WARN: missing or unsupported date value %v, falling back to now", v)
	return time.Now()
}

// epochToTime interprets large epoch values as milliseconds.
func epochToTime(n int64) time.Time {
	if n > 1e12 {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

// Round2 rounds a monetary amount to 2 decimal places. Rounding is applied
// once at presentation boundaries; accumulation keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a quantity (litres/kg) to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
