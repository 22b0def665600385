package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// ListingTTLDays is how long a new listing stays valid
const ListingTTLDays = 30

// Gender is a listing's gender preference
type Gender string

// Accepted gender preference values
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderAny    Gender = "Any"
)

// ParseGender folds raw input ("FEMALE", " male ") into canonical form
// and rejects anything outside the accepted set
func ParseGender(raw string) (Gender, error) {
	switch g := Gender(capitalize(raw)); g {
	case GenderMale, GenderFemale, GenderAny:
		return g, nil
	default:
		return "", ErrInvalidGender()
	}
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Location is where a listed room is
type Location struct {
	City    string `json:"city" yaml:"city"`
	Area    string `json:"area" yaml:"area"`
	Pincode string `json:"pincode" yaml:"pincode"`
}

// Listing is a single room advertisement
// SecretKey is the owner's management credential and never leaves the server
type Listing struct {
	PublicID         string   `json:"id"`
	SecretKey        string   `json:"-"`
	Location         Location `json:"location"`
	Rent             int      `json:"rent"`
	GenderPreference Gender   `json:"gender_pref"`
	Amenities        []string `json:"amenities"`
	Description      string   `json:"description"`
	SpotsAvailable   int      `json:"spots_available"`
	PhotoURL         string   `json:"photo_url,omitempty"`
	DatePosted       Date     `json:"date_posted"`
	ExpiresAt        Date     `json:"expires_at"`
	IsActive         bool     `json:"is_active"`
}

// Clone returns a copy that shares no mutable state with l
func (l Listing) Clone() Listing {
	out := l
	if l.Amenities != nil {
		out.Amenities = append([]string(nil), l.Amenities...)
	}
	return out
}

// NextPublicID formats the successor of the highest assigned ID suffix
func NextPublicID(maxSuffix int) string {
	return fmt.Sprintf("R%03d", maxSuffix+1)
}

// PublicIDSuffix extracts the numeric suffix of a well-formed public ID
// ("R012" -> 12). Malformed IDs report ok=false
func PublicIDSuffix(id string) (int, bool) {
	if len(id) < 2 || id[0] != 'R' {
		return 0, false
	}
	n := 0
	for _, r := range id[1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
