package handlers

import (
	"net/http"

	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/metrics"
	"github.com/roomiematch/roomiematch/internal/render"
	"github.com/roomiematch/roomiematch/internal/rooms"
)

type roomFinderRequest struct {
	City       string   `json:"city"`
	Area       string   `json:"area"`
	Pincode    string   `json:"pincode"`
	MaxRent    *int     `json:"max_rent"`
	GenderPref string   `json:"gender_pref"`
	Amenities  []string `json:"amenities"`
	Limit      *int     `json:"limit"`
}

type roomFinderData struct {
	Count    int              `json:"count"`
	Listings []domain.Listing `json:"listings"`
}

// RoomFinder searches active listings. Every filter is optional; an
// explicit limit outside 1..50 is rejected before the search runs.
func RoomFinder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roomFinderRequest
		if err := respond.ParseJSON(r, &req); err != nil {
			writeBadRequest(w, d, "room_finder", "invalid JSON body: "+err.Error())
			return
		}

		limit := 0
		if req.Limit != nil {
			if *req.Limit < 1 || *req.Limit > domain.MaxSearchLimit {
				writeBadRequest(w, d, "room_finder", "limit must be between 1 and 50")
				return
			}
			limit = *req.Limit
		}

		listings, err := d.Rooms.FindRooms(rooms.FindRoomsInput{
			City:       req.City,
			Area:       req.Area,
			Pincode:    req.Pincode,
			MaxRent:    req.MaxRent,
			GenderPref: req.GenderPref,
			Amenities:  req.Amenities,
			Limit:      limit,
		})
		if err != nil {
			writeOpError(w, d, "room_finder", err)
			return
		}

		recordTool(d, "room_finder", metrics.OutcomeSuccess)
		respond.OK(w, render.Results(listings), roomFinderData{
			Count:    len(listings),
			Listings: listings,
		})
	}
}
