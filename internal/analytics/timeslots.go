package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Half-hour buckets cover 06:00 up to (not including) 22:00: 32 in total.
const (
	bucketFirstHour = 6
	bucketLastHour  = 22
	topSlotCount    = 12
)

// TimeSlotCount is one histogram bar. Time is the 24-hour bucket key
// ("18:30"), Label the 12-hour display form ("6:30 PM").
type TimeSlotCount struct {
	Time  string `json:"time"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BucketCounts buckets the last 7 days of bookings into the full half-hour
// series. Every bucket appears, zero or not, in chronological order. A
// booking lands in the bucket of its start time with the minute rounded down
// to :00 or :30; start times outside 06:00-22:00 are dropped.
func BucketCounts(bookings []Booking, now time.Time, loc *time.Location) []TimeSlotCount {
	weekAgo := day(now, loc).AddDate(0, 0, -7)

	counts := make(map[string]int, 2*(bucketLastHour-bucketFirstHour))
	for hour := bucketFirstHour; hour < bucketLastHour; hour++ {
		counts[fmt.Sprintf("%02d:00", hour)] = 0
		counts[fmt.Sprintf("%02d:30", hour)] = 0
	}

	for _, b := range bookings {
		d, ok := slotDate(b, loc)
		if !ok || d.Before(weekAgo) {
			continue
		}
		key, ok := bucketKey(b.Slot.StartTime)
		if !ok {
			continue
		}
		if _, tracked := counts[key]; tracked {
			counts[key]++
		}
	}

	series := make([]TimeSlotCount, 0, len(counts))
	for hour := bucketFirstHour; hour < bucketLastHour; hour++ {
		for _, minute := range []string{"00", "30"} {
			key := fmt.Sprintf("%02d:%s", hour, minute)
			series = append(series, TimeSlotCount{
				Time:  key,
				Label: displayLabel(hour, minute),
				Count: counts[key],
			})
		}
	}
	return series
}

// PopularTimeSlots is the chart series: the twelve busiest buckets of the
// full half-hour series, put back in time order for display. Ranking first
// and re-sorting after is deliberate; truncating chronologically would show
// different buckets.
func PopularTimeSlots(bookings []Booking, now time.Time, loc *time.Location) []TimeSlotCount {
	series := BucketCounts(bookings, now, loc)

	ranked := make([]TimeSlotCount, len(series))
	copy(ranked, series)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	top := ranked
	if len(top) > topSlotCount {
		top = top[:topSlotCount]
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].Time < top[j].Time
	})
	return top
}

// bucketKey rounds a "HH:MM" start time down to its half-hour bucket.
func bucketKey(startTime string) (string, bool) {
	parts := strings.SplitN(startTime, ":", 3)
	if len(parts) < 2 {
		return "", false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	rounded := "00"
	if minute >= 30 {
		rounded = "30"
	}
	return fmt.Sprintf("%02d:%s", hour, rounded), true
}

func displayLabel(hour int, minute string) string {
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, minute, ampm)
}
