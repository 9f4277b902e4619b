// Package catalog holds the fixed option lists a venue can be described
// with. The dashboard client renders these and the PATCH endpoint validates
// against them.
package catalog

type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Amenity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type AmenityCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Sports = []Sport{
	{ID: "football", Name: "Football", Icon: "⚽"},
	{ID: "basketball", Name: "Basketball", Icon: "🏀"},
	{ID: "cricket", Name: "Cricket", Icon: "🏏"},
	{ID: "golf", Name: "Golf", Icon: "⛳"},
	{ID: "pickleball", Name: "Pickleball", Icon: "🎾"},
	{ID: "badminton", Name: "Badminton", Icon: "🏸"},
	{ID: "tennis", Name: "Tennis", Icon: "🎾"},
	{ID: "boxcricket", Name: "Box Cricket", Icon: "🏏"},
	{ID: "snooker", Name: "Snooker", Icon: "🎱"},
	{ID: "pool", Name: "Pool", Icon: "🎱"},
}

var Amenities = []Amenity{
	{ID: "parking", Name: "Parking", Category: "facilities"},
	{ID: "changing_rooms", Name: "Changing Rooms", Category: "facilities"},
	{ID: "rooms", Name: "Rooms", Category: "facilities"},
	{ID: "ev-charging", Name: "EV Charging Points", Category: "facilities"},
	{ID: "washrooms", Name: "Washrooms", Category: "facilities"},
	{ID: "drinking_water", Name: "Drinking Water", Category: "facilities"},
	{ID: "seating", Name: "Seating Area", Category: "facilities"},
	{ID: "equipment_rental", Name: "Equipment Rental", Category: "equipment"},
	{ID: "scoreboard", Name: "Digital Scoreboard", Category: "equipment"},
	{ID: "floodlights", Name: "Floodlights", Category: "equipment"},
	{ID: "first_aid", Name: "First Aid Kit", Category: "services"},
	{ID: "cafeteria", Name: "Cafeteria", Category: "services"},
	{ID: "coach", Name: "Coaching Available", Category: "services"},
	{ID: "wifi", Name: "Free WiFi", Category: "services"},
}

var AmenityCategories = []AmenityCategory{
	{ID: "facilities", Name: "Basic Facilities"},
	{ID: "equipment", Name: "Equipment"},
	{ID: "services", Name: "Services"},
}

var sportIDs = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Sports))
	for _, s := range Sports {
		m[s.ID] = struct{}{}
	}
	return m
}()

var amenityIDs = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Amenities))
	for _, a := range Amenities {
		m[a.ID] = struct{}{}
	}
	return m
}()

// ValidSport reports whether id names a known sport.
func ValidSport(id string) bool {
	_, ok := sportIDs[id]
	return ok
}

// ValidAmenity reports whether id names a known amenity.
func ValidAmenity(id string) bool {
	_, ok := amenityIDs[id]
	return ok
}
