package handlers

import (
	"net/http"

	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/metrics"
	"github.com/roomiematch/roomiematch/internal/render"
	"github.com/roomiematch/roomiematch/internal/rooms"
)

type addRoomRequest struct {
	City           string   `json:"city"`
	Area           string   `json:"area"`
	Rent           int      `json:"rent"`
	GenderPref     string   `json:"gender_pref"`
	SpotsAvailable int      `json:"spots_available"`
	Description    string   `json:"description"`
	Pincode        string   `json:"pincode"`
	Amenities      []string `json:"amenities"`
}

type addRoomData struct {
	RoomID        string          `json:"room_id"`
	ManagementKey string          `json:"management_key"`
	Listing       *domain.Listing `json:"listing"`
}

type addRoomMissingData struct {
	Missing []string `json:"missing"`
}

// AddRoom creates a listing. The management key in the response is the
// only time the caller ever sees it.
func AddRoom(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRoomRequest
		if err := respond.ParseJSON(r, &req); err != nil {
			writeBadRequest(w, d, "add_room", "invalid JSON body: "+err.Error())
			return
		}

		res, err := d.Rooms.AddRoom(rooms.AddRoomInput{
			City:           req.City,
			Area:           req.Area,
			Rent:           req.Rent,
			GenderPref:     req.GenderPref,
			SpotsAvailable: req.SpotsAvailable,
			Description:    req.Description,
			Pincode:        req.Pincode,
			Amenities:      req.Amenities,
		})
		if err != nil {
			writeOpError(w, d, "add_room", err)
			return
		}

		if len(res.Missing) > 0 {
			recordTool(d, "add_room", metrics.OutcomeMissingFields)
			respond.OKMessage(w, "missing required fields",
				render.AddMissing(res.Missing),
				addRoomMissingData{Missing: res.Missing})
			return
		}

		d.Logger.Info("room listed",
			logger.String("room_id", res.Listing.PublicID),
			logger.String("city", res.Listing.Location.City))
		recordTool(d, "add_room", metrics.OutcomeSuccess)
		respond.Created(w, render.AddSuccess(res.Listing.PublicID, res.ManagementKey), addRoomData{
			RoomID:        res.Listing.PublicID,
			ManagementKey: res.ManagementKey,
			Listing:       res.Listing,
		})
	}
}
