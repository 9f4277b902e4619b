package analytics

import (
	"math"
	"time"
)

// CountInWindow filters bookings whose slot date falls in [start, end) and
// returns the count together with the full-price revenue sum. A zero end
// means no upper bound. Both bounds are compared against the slot's calendar
// date parsed in start's location.
func CountInWindow(bookings []Booking, start, end time.Time) (int, float64) {
	loc := start.Location()
	count := 0
	revenue := 0.0
	for _, b := range bookings {
		d, ok := slotDate(b, loc)
		if !ok {
			continue
		}
		if d.Before(start) {
			continue
		}
		if !end.IsZero() && !d.Before(end) {
			continue
		}
		count++
		revenue += NormalizePrice(b.Slot.Price)
	}
	return count, revenue
}

// PercentChange reports the relative change from previous to current,
// rounded to one decimal place. A zero previous period yields 100 when the
// current period has anything in it and 0 otherwise; there is no division by
// zero and no NaN. The same rule applies to booking counts and revenue.
func PercentChange(current, previous float64) float64 {
	switch {
	case previous > 0:
		return math.Round((current-previous)/previous*1000) / 10
	case current > 0:
		return 100
	default:
		return 0
	}
}

// TodayStats is the "Today's Bookings" card: today's count against the same
// weekday one week earlier.
type TodayStats struct {
	Count      int     `json:"count"`
	Change     float64 `json:"change"`
	Comparison string  `json:"comparison"`
}

func TodayBookings(bookings []Booking, now time.Time, loc *time.Location) TodayStats {
	today := day(now, loc)
	count, _ := CountInWindow(bookings, today, today.AddDate(0, 0, 1))

	lastWeek := today.AddDate(0, 0, -7)
	prev, _ := CountInWindow(bookings, lastWeek, lastWeek.AddDate(0, 0, 1))

	return TodayStats{
		Count:      count,
		Change:     PercentChange(float64(count), float64(prev)),
		Comparison: "vs last week",
	}
}

// RevenueStats is a revenue figure with its period-over-period delta.
type RevenueStats struct {
	Revenue float64 `json:"revenue"`
	Change  float64 `json:"change"`
}

// WeeklyRevenue sums full slot prices for bookings dated within the last 7
// days (today included, future dates too) and compares against the adjacent
// 7-day window before that.
func WeeklyRevenue(bookings []Booking, now time.Time, loc *time.Location) RevenueStats {
	today := day(now, loc)
	weekAgo := today.AddDate(0, 0, -7)
	twoWeeksAgo := today.AddDate(0, 0, -14)

	_, current := CountInWindow(bookings, weekAgo, time.Time{})
	_, previous := CountInWindow(bookings, twoWeeksAgo, weekAgo)

	return RevenueStats{
		Revenue: current,
		Change:  PercentChange(current, previous),
	}
}

// MonthlyStats carries the rolling 30-day totals plus the all-time figures
// the dashboard shows next to them.
type MonthlyStats struct {
	TotalCount    int     `json:"total_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	MonthCount    int     `json:"month_count"`
	MonthRevenue  float64 `json:"month_revenue"`
	CountChange   float64 `json:"count_change"`
	RevenueChange float64 `json:"revenue_change"`
}

// MonthlyTotals compares the last 30 days against the adjacent 30-day window
// before that, for both booking counts and revenue.
func MonthlyTotals(bookings []Booking, now time.Time, loc *time.Location) MonthlyStats {
	today := day(now, loc)
	monthAgo := today.AddDate(0, 0, -30)
	twoMonthsAgo := today.AddDate(0, 0, -60)

	monthCount, monthRevenue := CountInWindow(bookings, monthAgo, time.Time{})
	prevCount, prevRevenue := CountInWindow(bookings, twoMonthsAgo, monthAgo)

	total := 0.0
	for _, b := range bookings {
		total += NormalizePrice(b.Slot.Price)
	}

	return MonthlyStats{
		TotalCount:    len(bookings),
		TotalRevenue:  total,
		MonthCount:    monthCount,
		MonthRevenue:  monthRevenue,
		CountChange:   PercentChange(float64(monthCount), float64(prevCount)),
		RevenueChange: PercentChange(monthRevenue, prevRevenue),
	}
}
