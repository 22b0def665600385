package store

import (
	"strings"
	"sync"
	"time"

	"github.com/roomiematch/roomiematch/internal/domain"
)

// Memory holds every listing for the lifetime of the process
// All access goes through the mutex; read paths hand out copies so
// callers never share mutable state with the store
type Memory struct {
	mu       sync.RWMutex
	listings []*domain.Listing
	lastSeed time.Time
}

// NewMemory creates an empty store
func NewMemory() *Memory {
	return &Memory{}
}

// Add assigns the next public ID and stores the listing.
// ID assignment and insertion happen under one lock so concurrent
// additions can never share an ID
func (s *Memory) Add(l domain.Listing) domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.PublicID = domain.NextPublicID(s.maxSuffixLocked())
	stored := l.Clone()
	s.listings = append(s.listings, &stored)
	return l
}

// maxSuffixLocked returns the highest numeric suffix among well-formed IDs
func (s *Memory) maxSuffixLocked() int {
	maxSuffix := 0
	for _, l := range s.listings {
		if n, ok := domain.PublicIDSuffix(l.PublicID); ok && n > maxSuffix {
			maxSuffix = n
		}
	}
	return maxSuffix
}

// Get returns a copy of the listing with the given public ID
// Lookup is case-insensitive, matching how owners quote IDs back
func (s *Memory) Get(id string) (domain.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l := s.findLocked(id); l != nil {
		return l.Clone(), true
	}
	return domain.Listing{}, false
}

// findLocked locates a listing by case-insensitive public ID
func (s *Memory) findLocked(id string) *domain.Listing {
	for _, l := range s.listings {
		if strings.EqualFold(l.PublicID, id) {
			return l
		}
	}
	return nil
}

// Update applies fn to the stored listing under the write lock and
// returns the updated copy
func (s *Memory) Update(id string, fn func(*domain.Listing)) (domain.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.findLocked(id)
	if l == nil {
		return domain.Listing{}, false
	}
	fn(l)
	return l.Clone(), true
}

// Remove deletes the listing with the given public ID and returns its
// final state
func (s *Memory) Remove(id string) (domain.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listings {
		if strings.EqualFold(l.PublicID, id) {
			removed := l.Clone()
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return removed, true
		}
	}
	return domain.Listing{}, false
}

// Active returns copies of all listings currently marked active,
// in insertion order
func (s *Memory) Active() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if l.IsActive {
			out = append(out, l.Clone())
		}
	}
	return out
}

// Count returns the number of stored listings, active or not
func (s *Memory) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.listings)
}

// ActiveCount returns the number of active listings without copying them
func (s *Memory) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, l := range s.listings {
		if l.IsActive {
			n++
		}
	}
	return n
}

// Seed appends pre-built listings, keeping their IDs as-is, and stamps
// the seed time. Later Add calls continue from the highest seeded suffix
func (s *Memory) Seed(listings []domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range listings {
		stored := l.Clone()
		s.listings = append(s.listings, &stored)
	}
	s.lastSeed = time.Now()
}

// LastSeed returns when Seed last ran (zero if never)
func (s *Memory) LastSeed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSeed
}
