package seed

import "github.com/roomiematch/roomiematch/internal/domain"

// RoomsConfig represents the top-level structure of rooms.yaml
type RoomsConfig struct {
	Rooms []RoomProps `yaml:"rooms"`
}

// RoomProps contains one seed listing as written in the file
type RoomProps struct {
	ID             string      `yaml:"id"`
	ManagementKey  string      `yaml:"management_key"`
	City           string      `yaml:"city"`
	Area           string      `yaml:"area"`
	Pincode        string      `yaml:"pincode,omitempty"`
	Rent           int         `yaml:"rent"`
	GenderPref     string      `yaml:"gender_pref"`
	Amenities      []string    `yaml:"amenities,omitempty"`
	Description    string      `yaml:"description,omitempty"`
	SpotsAvailable int         `yaml:"spots_available"`
	PhotoURL       string      `yaml:"photo_url,omitempty"`
	DatePosted     domain.Date `yaml:"date_posted,omitempty"`
	ExpiresAt      domain.Date `yaml:"expires_at,omitempty"`
	IsActive       *bool       `yaml:"is_active,omitempty"`
}
