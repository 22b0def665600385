package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/roomiematch/roomiematch/internal/domain"
)

// Mapper converts seed file entries to domain listings
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapRooms converts RoomsConfig to listings. Unusable entries (malformed
// ID, duplicate ID, missing key, unknown gender) are skipped; a file
// yielding no listings at all is rejected
func (m *Mapper) MapRooms(config RoomsConfig) ([]domain.Listing, error) {
	var listings []domain.Listing
	seen := make(map[string]bool)
	today := domain.DateOf(time.Now())

	for _, props := range config.Rooms {
		id := strings.TrimSpace(props.ID)
		if _, ok := domain.PublicIDSuffix(id); !ok {
			continue
		}
		if seen[id] {
			continue
		}
		if props.ManagementKey == "" {
			continue
		}
		gender, err := domain.ParseGender(props.GenderPref)
		if err != nil {
			continue
		}

		posted := props.DatePosted
		if posted.IsZero() {
			posted = today
		}
		expires := props.ExpiresAt
		if expires.IsZero() {
			expires = posted.AddDays(domain.ListingTTLDays)
		}

		active := true
		if props.IsActive != nil {
			active = *props.IsActive
		}

		amenities := props.Amenities
		if amenities == nil {
			amenities = []string{}
		}

		seen[id] = true
		listings = append(listings, domain.Listing{
			PublicID:  id,
			SecretKey: props.ManagementKey,
			Location: domain.Location{
				City:    strings.TrimSpace(props.City),
				Area:    strings.TrimSpace(props.Area),
				Pincode: strings.TrimSpace(props.Pincode),
			},
			Rent:             props.Rent,
			GenderPreference: gender,
			Amenities:        amenities,
			Description:      strings.TrimSpace(props.Description),
			SpotsAvailable:   props.SpotsAvailable,
			PhotoURL:         strings.TrimSpace(props.PhotoURL),
			DatePosted:       posted,
			ExpiresAt:        expires,
			IsActive:         active,
		})
	}

	if len(listings) == 0 {
		return nil, fmt.Errorf("no valid rooms found in seed config")
	}

	return listings, nil
}
