package main

import (
	"testing"
	"time"

	"courtside/internal/analytics"
	"courtside/internal/store"
)

func TestToEngineBooking(t *testing.T) {
	name := "Ramesh"
	row := store.BookingRow{
		ID:           42,
		CreatedAt:    time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC),
		PaymentType:  1,
		CustomerName: &name,
		VenueName:    "Arena One",
		CourtName:    "Court A",
		SlotID:       7,
		SlotDate:     "2024-03-21",
		StartAt:      "18:00",
		EndAt:        "19:00",
		Price:        1200,
	}

	b := toEngineBooking(row)

	if b.ID != "42" {
		t.Errorf("ID = %q, want %q", b.ID, "42")
	}
	if b.PaymentType != analytics.PaymentPartial {
		t.Errorf("PaymentType = %v, want PaymentPartial", b.PaymentType)
	}
	if b.CustomerName != "Ramesh" {
		t.Errorf("CustomerName = %q, want Ramesh", b.CustomerName)
	}
	if b.Slot.ID != "7" || b.Slot.Date != "2024-03-21" || b.Slot.StartTime != "18:00" {
		t.Errorf("slot mapped wrong: %+v", b.Slot)
	}
	if got := analytics.PaymentAmount(b); got != 600 {
		t.Errorf("PaymentAmount = %v, want 600 (half of 1200 for partial payment)", got)
	}
}

func TestToEngineBookingGuest(t *testing.T) {
	b := toEngineBooking(store.BookingRow{ID: 1})
	if b.CustomerName != "" {
		t.Errorf("CustomerName = %q, want empty for guest booking", b.CustomerName)
	}
}

func TestToEngineVenueGroupsByCourt(t *testing.T) {
	venue := &store.Venue{ID: 5, Title: "Arena One", Sports: []string{"futsal"}}
	slots := []store.SlotRow{
		{ID: 1, CourtID: 10, CourtName: "Court A", Date: "2024-03-21", StartAt: "06:00", EndAt: "07:00"},
		{ID: 2, CourtID: 11, CourtName: "Court B", Date: "2024-03-21", StartAt: "06:00", EndAt: "07:00", Booked: true},
		{ID: 3, CourtID: 10, CourtName: "Court A", Date: "2024-03-21", StartAt: "07:00", EndAt: "08:00", BookingCount: 1},
	}

	ev := toEngineVenue(venue, slots)

	if ev.ID != "5" || ev.Title != "Arena One" {
		t.Errorf("venue mapped wrong: %+v", ev)
	}
	if len(ev.Courts) != 2 {
		t.Fatalf("len(Courts) = %d, want 2", len(ev.Courts))
	}
	// first-seen order is preserved
	if ev.Courts[0].Name != "Court A" || ev.Courts[1].Name != "Court B" {
		t.Errorf("court order = %q, %q; want Court A, Court B", ev.Courts[0].Name, ev.Courts[1].Name)
	}
	if len(ev.Courts[0].Slots) != 2 {
		t.Errorf("Court A slots = %d, want 2", len(ev.Courts[0].Slots))
	}

	grid := analytics.AvailabilityGrid(ev, "2024-03-21")
	if grid.Total != 3 || grid.Booked != 2 || grid.Available != 1 {
		t.Errorf("grid tallies = total %d booked %d available %d, want 3/2/1",
			grid.Total, grid.Booked, grid.Available)
	}
}
