package analytics

import "testing"

func TestSlotBookedORSemantics(t *testing.T) {
	tests := []struct {
		name string
		slot Slot
		want bool
	}{
		{"neither signal", Slot{}, false},
		{"flag only", Slot{Booked: true}, true},
		{"bookings only", Slot{BookingCount: 1}, true},
		{"both", Slot{Booked: true, BookingCount: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlotBooked(tc.slot); got != tc.want {
				t.Fatalf("SlotBooked(%+v) = %v, want %v", tc.slot, got, tc.want)
			}
		})
	}
}

func TestAvailabilityGrid(t *testing.T) {
	venue := Venue{
		ID:    "v1",
		Title: "North Turf",
		Courts: []Court{
			{
				ID:   "c1",
				Name: "Court A",
				Slots: []Slot{
					{ID: "s2", Date: "2024-03-20", StartTime: "08:00", EndTime: "09:00"},
					{ID: "s1", Date: "2024-03-20", StartTime: "07:00", EndTime: "08:00", Booked: true},
					{ID: "s3", Date: "2024-03-21", StartTime: "07:00", EndTime: "08:00"}, // other day
				},
			},
			{
				ID:   "c2",
				Name: "Court B",
				Slots: []Slot{
					{ID: "s4", Date: "2024-03-20", StartTime: "07:00", EndTime: "08:00", BookingCount: 1},
					{ID: "s5", Date: "2024-03-20", StartTime: "08:00", EndTime: "09:00", Booked: true},
				},
			},
		},
	}

	grid := AvailabilityGrid(venue, "2024-03-20")

	if len(grid.Courts) != 2 {
		t.Fatalf("got %d courts, want 2", len(grid.Courts))
	}

	courtA := grid.Courts[0]
	if courtA.Total != 2 || courtA.Available != 1 || courtA.Booked != 1 {
		t.Fatalf("court A tallies = %+v", courtA)
	}
	if courtA.Slots[0].Slot.ID != "s1" || courtA.Slots[1].Slot.ID != "s2" {
		t.Fatalf("court A slots not sorted by start time: %s, %s",
			courtA.Slots[0].Slot.ID, courtA.Slots[1].Slot.ID)
	}
	if courtA.Slots[0].Available {
		t.Fatal("s1 is booked via flag but classified available")
	}
	if courtA.AvailablePct != 50 {
		t.Fatalf("court A availability = %d%%, want 50", courtA.AvailablePct)
	}

	courtB := grid.Courts[1]
	if courtB.Available != 0 || courtB.Booked != 2 {
		t.Fatalf("court B tallies = %+v", courtB)
	}
	if courtB.Slots[0].Available {
		t.Fatal("s4 has a booking attached but classified available")
	}

	if grid.Total != 4 || grid.Available != 1 || grid.Booked != 3 {
		t.Fatalf("grid tallies = total %d, available %d, booked %d", grid.Total, grid.Available, grid.Booked)
	}
	if grid.AvailablePct != 25 {
		t.Fatalf("grid availability = %d%%, want 25", grid.AvailablePct)
	}
}

func TestAvailabilityGridEmpty(t *testing.T) {
	grid := AvailabilityGrid(Venue{ID: "v1", Courts: []Court{{ID: "c1", Name: "Court A"}}}, "2024-03-20")
	if grid.Total != 0 || grid.AvailablePct != 0 {
		t.Fatalf("empty grid tallies = %+v", grid)
	}
	if len(grid.Courts) != 1 || grid.Courts[0].AvailablePct != 0 {
		t.Fatalf("empty court should report 0%%: %+v", grid.Courts)
	}
}
