package reports

import "time"

const dayLabelFormat = "02 Jan"

// dayBuckets indexes every calendar day in [start, end] inclusive so chart
// series stay dense: days with no activity still get a zeroed point.
type dayBuckets struct {
	days  []time.Time
	index map[string]int
}

func newDayBuckets(start, end time.Time) *dayBuckets {
	b := &dayBuckets{index: make(map[string]int)}
	for d := dayOf(start); !d.After(dayOf(end)); d = d.AddDate(0, 0, 1) {
		b.index[dayKey(d)] = len(b.days)
		b.days = append(b.days, d)
	}
	return b
}

func (b *dayBuckets) idx(t time.Time) (int, bool) {
	i, ok := b.index[dayKey(t)]
	return i, ok
}

func (b *dayBuckets) len() int {
	return len(b.days)
}

func (b *dayBuckets) label(i int) string {
	return b.days[i].Format(dayLabelFormat)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func inRange(t, start, end time.Time) bool {
	d := dayOf(t)
	return !d.Before(dayOf(start)) && !d.After(dayOf(end))
}
