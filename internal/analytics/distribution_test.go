package analytics

import "testing"

func TestSportDistribution(t *testing.T) {
	venues := []Venue{
		{Title: "North Turf", Sports: []string{"Football"}},
		{Title: "South Turf", Sports: []string{"Football"}},
		{Title: "City Arena", Sports: []string{"Cricket"}},
	}

	got := SportDistribution(venues)
	if len(got) != 2 {
		t.Fatalf("got %d sports, want 2", len(got))
	}
	if got[0].Sport != "Football" || got[0].Percent != 67 {
		t.Fatalf("first share = %+v, want Football 67", got[0])
	}
	if got[1].Sport != "Cricket" || got[1].Percent != 33 {
		t.Fatalf("second share = %+v, want Cricket 33", got[1])
	}
}

func TestSportDistributionCountsPerVenue(t *testing.T) {
	// Courts don't matter; a venue contributes each sport once.
	venues := []Venue{
		{
			Title:  "Multi",
			Sports: []string{"Badminton", "Tennis"},
			Courts: []Court{{Name: "Court 1"}, {Name: "Court 2"}, {Name: "Court 3"}},
		},
		{Title: "Single", Sports: []string{"Badminton"}},
	}

	got := SportDistribution(venues)
	if got[0].Sport != "Badminton" || got[0].Percent != 67 {
		t.Fatalf("got %+v, want Badminton 67", got[0])
	}
	if got[1].Sport != "Tennis" || got[1].Percent != 33 {
		t.Fatalf("got %+v, want Tennis 33", got[1])
	}
}

func TestSportDistributionDeterministicTies(t *testing.T) {
	venues := []Venue{
		{Sports: []string{"Football", "Cricket"}},
	}

	for i := 0; i < 10; i++ {
		got := SportDistribution(venues)
		if got[0].Sport != "Cricket" || got[1].Sport != "Football" {
			t.Fatalf("tie order not deterministic: %+v", got)
		}
		if got[0].Percent != 50 || got[1].Percent != 50 {
			t.Fatalf("percentages = %+v, want 50/50", got)
		}
	}
}

func TestSportDistributionEmpty(t *testing.T) {
	if got := SportDistribution(nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if got := SportDistribution([]Venue{{Title: "No Sports"}}); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
