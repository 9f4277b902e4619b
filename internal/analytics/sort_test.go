package analytics

import "testing"

func TestSortByDateTimeDesc(t *testing.T) {
	bookings := []Booking{
		{ID: "a", Slot: Slot{Date: "2024-01-01", StartTime: "10:00"}},
		{ID: "b", Slot: Slot{Date: "2024-01-02", StartTime: "09:00"}},
		{ID: "c", Slot: Slot{Date: "2024-01-01", StartTime: "18:00"}},
	}

	got := SortByDateTimeDesc(bookings)
	wantOrder := []string{"b", "c", "a"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	// Input order untouched.
	if bookings[0].ID != "a" || bookings[2].ID != "c" {
		t.Fatal("SortByDateTimeDesc mutated its input")
	}
}

func TestSortByDateTimeDescStableOnTies(t *testing.T) {
	bookings := []Booking{
		{ID: "first", Slot: Slot{Date: "2024-01-01", StartTime: "10:00"}},
		{ID: "second", Slot: Slot{Date: "2024-01-01", StartTime: "10:00"}},
		{ID: "third", Slot: Slot{Date: "2024-01-01", StartTime: "10:00"}},
	}

	got := SortByDateTimeDesc(bookings)
	for i, id := range []string{"first", "second", "third"} {
		if got[i].ID != id {
			t.Fatalf("tie order changed: position %d is %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSortByDateTimeDescMalformedLast(t *testing.T) {
	bookings := []Booking{
		{ID: "broken", Slot: Slot{Date: "soon", StartTime: "??"}},
		{ID: "ok", Slot: Slot{Date: "2024-01-01", StartTime: "10:00"}},
	}

	got := SortByDateTimeDesc(bookings)
	if got[0].ID != "ok" || got[1].ID != "broken" {
		t.Fatalf("malformed booking should sort last, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestRecent(t *testing.T) {
	bookings := []Booking{
		{ID: "a", Slot: Slot{Date: "2024-01-01", StartTime: "10:00"}},
		{ID: "b", Slot: Slot{Date: "2024-01-03", StartTime: "09:00"}},
		{ID: "c", Slot: Slot{Date: "2024-01-02", StartTime: "18:00"}},
	}

	got := Recent(bookings, 2)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("Recent(2) = %v", got)
	}

	if got := Recent(bookings, 10); len(got) != 3 {
		t.Fatalf("Recent beyond length returned %d items", len(got))
	}
	if got := Recent(bookings, 0); len(got) != 0 {
		t.Fatalf("Recent(0) returned %d items", len(got))
	}
}
