package rooms

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/store"
)

// Edit field identifiers, in the order changes are reported
const (
	FieldRent           = "rent"
	FieldDescription    = "description"
	FieldSpotsAvailable = "spots_available"
	FieldAmenities      = "amenities"
)

// Service implements the room operations on top of the in-memory store
type Service struct {
	store  *store.Memory
	norm   *domain.Normalizer
	now    func() time.Time
	newKey func() string
}

// New creates a room service backed by st, normalizing text with norm
func New(st *store.Memory, norm *domain.Normalizer) *Service {
	return &Service{
		store:  st,
		norm:   norm,
		now:    time.Now,
		newKey: uuid.NewString,
	}
}

// AddRoomInput carries the fields a lister supplies for a new room
type AddRoomInput struct {
	City           string
	Area           string
	Rent           int
	GenderPref     string
	SpotsAvailable int
	Description    string
	Pincode        string
	Amenities      []string
}

// AddRoomResult reports either the stored listing with its one-time
// management key, or the fields still required
type AddRoomResult struct {
	Listing       *domain.Listing
	ManagementKey string
	Missing       []string
}

// AddRoom validates required fields, mints the public ID and secret key,
// and stores the listing. Missing fields are a soft outcome, not an error
func (s *Service) AddRoom(in AddRoomInput) (*AddRoomResult, error) {
	if missing := missingFields(in); len(missing) > 0 {
		return &AddRoomResult{Missing: missing}, nil
	}

	gender, err := domain.ParseGender(in.GenderPref)
	if err != nil {
		return nil, err
	}

	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	today := domain.DateOf(s.now())
	stored := s.store.Add(domain.Listing{
		SecretKey: s.newKey(),
		Location: domain.Location{
			City:    strings.TrimSpace(in.City),
			Area:    strings.TrimSpace(in.Area),
			Pincode: strings.TrimSpace(in.Pincode),
		},
		Rent:             in.Rent,
		GenderPreference: gender,
		Amenities:        amenities,
		Description:      strings.TrimSpace(in.Description),
		SpotsAvailable:   in.SpotsAvailable,
		DatePosted:       today,
		ExpiresAt:        today.AddDays(domain.ListingTTLDays),
		IsActive:         true,
	})

	return &AddRoomResult{Listing: &stored, ManagementKey: stored.SecretKey}, nil
}

// missingFields lists required add_room fields that are absent, in the
// order they are prompted for. A zero rent or spot count counts as absent
func missingFields(in AddRoomInput) []string {
	var missing []string
	if in.City == "" {
		missing = append(missing, "city")
	}
	if in.Area == "" {
		missing = append(missing, "area")
	}
	if in.Rent == 0 {
		missing = append(missing, "rent")
	}
	if in.GenderPref == "" {
		missing = append(missing, "gender preference")
	}
	if in.SpotsAvailable == 0 {
		missing = append(missing, "spots available")
	}
	if in.Description == "" {
		missing = append(missing, "a description")
	}
	return missing
}

// authorize fetches a listing and checks the caller's management key.
// Failures echo the room ID exactly as the caller supplied it
func (s *Service) authorize(roomID, managementKey string) (domain.Listing, error) {
	l, ok := s.store.Get(roomID)
	if !ok {
		return domain.Listing{}, domain.ErrRoomNotFound(roomID)
	}
	if l.SecretKey != managementKey {
		return domain.Listing{}, domain.ErrWrongManagementKey(roomID)
	}
	return l, nil
}

// EditRoomInput distinguishes absent fields (nil) from explicit values,
// so a supplied 0 or empty list is still applied
type EditRoomInput struct {
	RoomID         string
	ManagementKey  string
	Rent           *int
	Description    *string
	SpotsAvailable *int
	Amenities      *[]string
}

// EditRoomResult reports which fields changed, or that nothing was asked
type EditRoomResult struct {
	NoChanges bool
	Changed   []string
	Listing   *domain.Listing
}

// EditRoom authenticates the caller and applies every supplied field.
// Asking for no changes is a soft outcome, not an error
func (s *Service) EditRoom(in EditRoomInput) (*EditRoomResult, error) {
	l, err := s.authorize(in.RoomID, in.ManagementKey)
	if err != nil {
		return nil, err
	}

	var changed []string
	if in.Rent != nil {
		changed = append(changed, FieldRent)
	}
	if in.Description != nil {
		changed = append(changed, FieldDescription)
	}
	if in.SpotsAvailable != nil {
		changed = append(changed, FieldSpotsAvailable)
	}
	if in.Amenities != nil {
		changed = append(changed, FieldAmenities)
	}
	if len(changed) == 0 {
		return &EditRoomResult{NoChanges: true}, nil
	}

	updated, ok := s.store.Update(l.PublicID, func(target *domain.Listing) {
		if in.Rent != nil {
			target.Rent = *in.Rent
		}
		if in.Description != nil {
			target.Description = *in.Description
		}
		if in.SpotsAvailable != nil {
			target.SpotsAvailable = *in.SpotsAvailable
		}
		if in.Amenities != nil {
			target.Amenities = append([]string(nil), (*in.Amenities)...)
		}
	})
	if !ok {
		// Removed between the key check and the update
		return nil, domain.ErrRoomNotFound(in.RoomID)
	}

	return &EditRoomResult{Changed: changed, Listing: &updated}, nil
}

// DeleteRoomResult carries the removed listing
type DeleteRoomResult struct {
	Listing *domain.Listing
}

// DeleteRoom authenticates the caller and permanently removes the listing
func (s *Service) DeleteRoom(roomID, managementKey string) (*DeleteRoomResult, error) {
	l, err := s.authorize(roomID, managementKey)
	if err != nil {
		return nil, err
	}

	removed, ok := s.store.Remove(l.PublicID)
	if !ok {
		return nil, domain.ErrRoomNotFound(roomID)
	}
	return &DeleteRoomResult{Listing: &removed}, nil
}

// FindRoomsInput carries raw search criteria; every field is optional
type FindRoomsInput struct {
	City       string
	Area       string
	Pincode    string
	MaxRent    *int
	GenderPref string
	Amenities  []string
	Limit      int
}

// FindRooms normalizes the criteria, scans active listings and returns
// matches sorted by rent then posting date, truncated to the limit
func (s *Service) FindRooms(in FindRoomsInput) ([]domain.Listing, error) {
	f := domain.Filters{
		City:    s.norm.Normalize(in.City, domain.KindCity),
		Area:    s.norm.Normalize(in.Area, domain.KindArea),
		Pincode: strings.TrimSpace(in.Pincode),
		MaxRent: in.MaxRent,
	}

	if strings.TrimSpace(in.GenderPref) != "" {
		gender, err := domain.ParseGender(in.GenderPref)
		if err != nil {
			return nil, err
		}
		f.Gender = gender
	}

	// Amenity terms that normalize to nothing cannot constrain anything
	for _, a := range in.Amenities {
		if cleaned := s.norm.Normalize(a, domain.KindAmenity); cleaned != "" {
			f.Amenities = append(f.Amenities, cleaned)
		}
	}

	matches := make([]domain.Listing, 0)
	for _, l := range s.store.Active() {
		if f.Matches(l, s.norm) {
			matches = append(matches, l)
		}
	}

	domain.SortListings(matches)

	limit := domain.ClampLimit(in.Limit)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
