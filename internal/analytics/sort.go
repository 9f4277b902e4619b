package analytics

import (
	"sort"
	"time"
)

// startInstant builds the single comparable instant used for ordering:
// slot date plus start time. Bookings with an unparseable date/time sort to
// the zero instant, i.e. last in a descending view.
func startInstant(b Booking) time.Time {
	t, err := time.Parse("2006-01-02 15:04", b.Slot.Date+" "+b.Slot.StartTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortByDateTimeDesc returns a copy of bookings ordered most recent first by
// slot date + start time. The sort is stable, so ties keep their input order.
func SortByDateTimeDesc(bookings []Booking) []Booking {
	out := make([]Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return startInstant(out[i]).After(startInstant(out[j]))
	})
	return out
}

// Recent is the top-n slice of SortByDateTimeDesc, for "recent bookings"
// cards.
func Recent(bookings []Booking, n int) []Booking {
	sorted := SortByDateTimeDesc(bookings)
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
