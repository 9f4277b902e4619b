package analytics

import (
	"testing"
	"time"
)

func slotAt(daysAgo int, startTime string) Booking {
	return Booking{Slot: Slot{
		Date:      testNow.AddDate(0, 0, -daysAgo).Format("2006-01-02"),
		StartTime: startTime,
		Price:     100,
	}}
}

func TestBucketCountsAlways32Buckets(t *testing.T) {
	inputs := [][]Booking{
		nil,
		{},
		{slotAt(1, "06:00")},
		{slotAt(1, "05:45")}, // outside the tracked range
	}

	for _, bookings := range inputs {
		series := BucketCounts(bookings, testNow, time.UTC)
		if len(series) != 32 {
			t.Fatalf("series has %d buckets, want 32", len(series))
		}
		for i := 1; i < len(series); i++ {
			if series[i-1].Time >= series[i].Time {
				t.Fatalf("series not chronological at %d: %s >= %s", i, series[i-1].Time, series[i].Time)
			}
		}
	}
}

func TestBucketCountsRounding(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"06:00", "06:00"},
		{"06:29", "06:00"},
		{"06:30", "06:30"},
		{"06:45", "06:30"},
		{"21:59", "21:30"},
	}

	for _, tc := range tests {
		t.Run(tc.start, func(t *testing.T) {
			series := BucketCounts([]Booking{slotAt(1, tc.start)}, testNow, time.UTC)
			for _, b := range series {
				want := 0
				if b.Time == tc.want {
					want = 1
				}
				if b.Count != want {
					t.Fatalf("bucket %s count = %d, want %d", b.Time, b.Count, want)
				}
			}
		})
	}
}

func TestBucketCountsIgnoresOldAndOutOfRange(t *testing.T) {
	bookings := []Booking{
		slotAt(10, "10:00"), // older than a week
		slotAt(1, "05:30"),  // before 06:00
		slotAt(1, "22:00"),  // at the end bound, excluded
		slotAt(1, "23:15"),
		{Slot: Slot{Date: testNow.Format("2006-01-02")}}, // no start time
	}

	for _, b := range BucketCounts(bookings, testNow, time.UTC) {
		if b.Count != 0 {
			t.Fatalf("bucket %s count = %d, want 0", b.Time, b.Count)
		}
	}
}

func TestPopularTimeSlotsTopTwelveChronological(t *testing.T) {
	var bookings []Booking
	// Fourteen busy buckets with distinct volumes. 18:00 and 19:30 are the
	// two quietest of the fourteen and must be the ones cut.
	busy := []string{
		"06:00", "07:00", "08:30", "09:00", "10:30", "11:00", "12:30",
		"14:00", "15:30", "16:00", "17:30", "20:00", "18:00", "19:30",
	}
	for i, start := range busy {
		for n := 0; n < len(busy)-i+1; n++ {
			bookings = append(bookings, slotAt(1, start))
		}
	}

	top := PopularTimeSlots(bookings, testNow, time.UTC)
	if len(top) != 12 {
		t.Fatalf("got %d slots, want 12", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Time >= top[i].Time {
			t.Fatalf("display order not chronological: %s before %s", top[i-1].Time, top[i].Time)
		}
	}
	for _, slot := range top {
		if slot.Time == "18:00" || slot.Time == "19:30" {
			t.Fatalf("bucket %s should have been cut by volume ranking", slot.Time)
		}
		if slot.Count == 0 {
			t.Fatalf("zero-count bucket %s ranked into the top twelve", slot.Time)
		}
	}
}

// Ranking by volume before truncating must be able to pick a late-day bucket
// over an earlier quiet one; a plain chronological cut could not.
func TestPopularTimeSlotsRankBeatsChronology(t *testing.T) {
	var bookings []Booking
	// Thirteen early buckets with one booking each...
	early := []string{
		"06:00", "06:30", "07:00", "07:30", "08:00", "08:30", "09:00",
		"09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
	}
	for _, start := range early {
		bookings = append(bookings, slotAt(1, start))
	}
	// ...and one evening bucket with five.
	for n := 0; n < 5; n++ {
		bookings = append(bookings, slotAt(1, "19:00"))
	}

	top := PopularTimeSlots(bookings, testNow, time.UTC)
	found := false
	for _, slot := range top {
		if slot.Time == "19:00" {
			found = true
			if slot.Count != 5 {
				t.Fatalf("19:00 count = %d, want 5", slot.Count)
			}
		}
	}
	if !found {
		t.Fatal("19:00 bucket missing from top twelve despite highest volume")
	}
	if top[len(top)-1].Time != "19:00" {
		t.Fatalf("chronological re-sort should place 19:00 last, got %s", top[len(top)-1].Time)
	}
}

func TestDisplayLabels(t *testing.T) {
	series := BucketCounts(nil, testNow, time.UTC)
	labels := map[string]string{
		"06:00": "6:00 AM",
		"11:30": "11:30 AM",
		"12:00": "12:00 PM",
		"12:30": "12:30 PM",
		"21:30": "9:30 PM",
	}
	for _, b := range series {
		if want, ok := labels[b.Time]; ok && b.Label != want {
			t.Fatalf("label for %s = %q, want %q", b.Time, b.Label, want)
		}
	}
}
