package analytics

import (
	"math"
	"sort"
)

// SlotBooked reports whether a slot is taken. The backend exposes two
// signals, the booked flag and the attached booking list, and the views are
// not consistent about which one they trust; either being set means booked.
func SlotBooked(s Slot) bool {
	return s.Booked || s.BookingCount > 0
}

// SlotStatus is one cell of the availability grid.
type SlotStatus struct {
	Slot      Slot `json:"slot"`
	Available bool `json:"available"`
}

// CourtAvailability is one court's row of the grid with its own tallies.
type CourtAvailability struct {
	CourtID      string       `json:"court_id"`
	CourtName    string       `json:"court_name"`
	Slots        []SlotStatus `json:"slots"`
	Available    int          `json:"available"`
	Booked       int          `json:"booked"`
	Total        int          `json:"total"`
	AvailablePct int          `json:"available_pct"`
}

// Grid is the whole venue-day availability view.
type Grid struct {
	VenueID      string              `json:"venue_id"`
	VenueTitle   string              `json:"venue_title"`
	Date         string              `json:"date"`
	Courts       []CourtAvailability `json:"courts"`
	Available    int                 `json:"available"`
	Booked       int                 `json:"booked"`
	Total        int                 `json:"total"`
	AvailablePct int                 `json:"available_pct"`
}

// AvailabilityGrid builds the per-court slot grid for one venue and one
// calendar date ("2006-01-02"). Slots on other dates are ignored; each
// court's slots come back sorted by start time with an available/booked
// classification, plus counts and a rounded availability percentage per
// court and for the venue as a whole.
func AvailabilityGrid(venue Venue, date string) Grid {
	grid := Grid{
		VenueID:    venue.ID,
		VenueTitle: venue.Title,
		Date:       date,
		Courts:     make([]CourtAvailability, 0, len(venue.Courts)),
	}

	for _, court := range venue.Courts {
		ca := CourtAvailability{
			CourtID:   court.ID,
			CourtName: court.Name,
		}
		for _, slot := range court.Slots {
			if slot.Date != date {
				continue
			}
			ca.Slots = append(ca.Slots, SlotStatus{
				Slot:      slot,
				Available: !SlotBooked(slot),
			})
		}
		sort.SliceStable(ca.Slots, func(i, j int) bool {
			return ca.Slots[i].Slot.StartTime < ca.Slots[j].Slot.StartTime
		})

		for _, s := range ca.Slots {
			if s.Available {
				ca.Available++
			} else {
				ca.Booked++
			}
		}
		ca.Total = len(ca.Slots)
		ca.AvailablePct = percentage(ca.Available, ca.Total)

		grid.Courts = append(grid.Courts, ca)
		grid.Available += ca.Available
		grid.Booked += ca.Booked
		grid.Total += ca.Total
	}

	grid.AvailablePct = percentage(grid.Available, grid.Total)
	return grid
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
