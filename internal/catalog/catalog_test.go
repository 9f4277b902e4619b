package catalog

import "testing"

func TestValidSport(t *testing.T) {
	for _, s := range Sports {
		if !ValidSport(s.ID) {
			t.Errorf("ValidSport(%q) = false, want true", s.ID)
		}
	}
	if ValidSport("curling") {
		t.Error("ValidSport(\"curling\") = true, want false")
	}
	if ValidSport("") {
		t.Error("ValidSport(\"\") = true, want false")
	}
}

func TestValidAmenity(t *testing.T) {
	for _, a := range Amenities {
		if !ValidAmenity(a.ID) {
			t.Errorf("ValidAmenity(%q) = false, want true", a.ID)
		}
	}
	if ValidAmenity("helipad") {
		t.Error("ValidAmenity(\"helipad\") = true, want false")
	}
}

func TestAmenityCategoriesCovered(t *testing.T) {
	known := make(map[string]bool, len(AmenityCategories))
	for _, c := range AmenityCategories {
		known[c.ID] = true
	}
	for _, a := range Amenities {
		if !known[a.Category] {
			t.Errorf("amenity %q has unknown category %q", a.ID, a.Category)
		}
	}
}
