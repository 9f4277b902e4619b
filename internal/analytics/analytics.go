// Package analytics turns a seller's flattened booking records into the
// metrics shown on the dashboard: today's bookings with a week-over-week
// delta, weekly and monthly revenue, the popular time-slot histogram, sport
// distribution across venues and per-court availability grids.
//
// Every function here is pure. The caller supplies the current instant and
// the venue's timezone; nothing reads the wall clock or touches I/O. Bad
// input (missing slots, malformed prices) degrades to zero values instead of
// returning errors, so the dashboard always renders.
package analytics

import "time"

// PaymentType mirrors the payment_type column on bookings.
type PaymentType int

const (
	PaymentPending PaymentType = 0 // no payment recorded yet
	PaymentPartial PaymentType = 1 // 50% advance collected
	PaymentFull    PaymentType = 2
)

// Slot is one bookable time window. Date is "2006-01-02", StartTime and
// EndTime are 24-hour "15:04" wall-clock strings forming a half-open
// interval. Price is kept loose on purpose: the upstream feed emits numbers,
// currency-prefixed strings and {value: n} objects interchangeably, and
// NormalizePrice is the only place allowed to look inside it.
//
// Booked and BookingCount only matter when the slot comes from the
// availability query; either signal marks the slot as taken.
type Slot struct {
	ID           string `json:"id,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_at"`
	EndTime      string `json:"end_at"`
	Price        any    `json:"price"`
	Booked       bool   `json:"booked,omitempty"`
	BookingCount int    `json:"booking_count,omitempty"`
}

// Booking is one reservation against a slot, flattened from the
// venue > court > slot > booking nesting by the caller. CustomerName is
// empty for guest/offline bookings.
type Booking struct {
	ID           string      `json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	PaymentType  PaymentType `json:"payment_type"`
	CustomerName string      `json:"customer_name,omitempty"`
	VenueName    string      `json:"venue_name"`
	CourtName    string      `json:"court_name"`
	Slot         Slot        `json:"slot"`
}

// Court groups the slots of one playing surface for availability views.
type Court struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Venue carries the sports it offers plus its courts.
type Venue struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Sports []string `json:"sports"`
	Courts []Court  `json:"courts"`
}

// day truncates t to midnight in loc.
func day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// slotDate parses the booking's slot date in loc. The bool is false when the
// date is absent or unparseable; such bookings fall out of every window.
func slotDate(b Booking, loc *time.Location) (time.Time, bool) {
	if b.Slot.Date == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", b.Slot.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
