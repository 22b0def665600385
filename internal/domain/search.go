package domain

import "sort"

// Search result limits enforced on room_finder
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// Filters is a normalized, conjunctive set of search criteria.
// Zero values mean "no constraint". MaxRent is a pointer so an explicit
// budget of 0 still filters, unlike an absent one
type Filters struct {
	City      string
	Area      string
	Pincode   string
	MaxRent   *int
	Gender    Gender
	Amenities []string
}

// Matches reports whether l satisfies every constraint in f.
// Listing city and area are normalized on the fly so stored free text
// compares against canonical filter values
func (f Filters) Matches(l Listing, n *Normalizer) bool {
	if f.City != "" && n.Normalize(l.Location.City, KindCity) != f.City {
		return false
	}
	if f.Area != "" && n.Normalize(l.Location.Area, KindArea) != f.Area {
		return false
	}
	if f.Pincode != "" && l.Location.Pincode != f.Pincode {
		return false
	}
	if f.MaxRent != nil && l.Rent > *f.MaxRent {
		return false
	}
	if f.Gender != "" && l.GenderPreference != GenderAny && l.GenderPreference != f.Gender {
		return false
	}
	if len(f.Amenities) > 0 && !hasAllAmenities(l, f.Amenities, n) {
		return false
	}
	return true
}

// hasAllAmenities checks the subset relation on normalized amenity sets
func hasAllAmenities(l Listing, wanted []string, n *Normalizer) bool {
	have := make(map[string]struct{}, len(l.Amenities))
	for _, a := range l.Amenities {
		if cleaned := n.Normalize(a, KindAmenity); cleaned != "" {
			have[cleaned] = struct{}{}
		}
	}
	for _, w := range wanted {
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}

// SortListings orders results by rent, then posting date, both ascending.
// The sort is stable so ties keep insertion order and repeated searches
// over the same data return identical slices
func SortListings(listings []Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		if listings[i].Rent != listings[j].Rent {
			return listings[i].Rent < listings[j].Rent
		}
		return listings[i].DatePosted.Before(listings[j].DatePosted)
	})
}

// ClampLimit applies the default and ceiling for result counts
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}
