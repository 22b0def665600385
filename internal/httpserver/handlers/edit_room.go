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

type editRoomRequest struct {
	RoomID         string    `json:"room_id"`
	ManagementKey  string    `json:"management_key"`
	Rent           *int      `json:"rent"`
	Description    *string   `json:"description"`
	SpotsAvailable *int      `json:"spots_available"`
	Amenities      *[]string `json:"amenities"`
}

type editRoomData struct {
	RoomID  string          `json:"room_id"`
	Updated []string        `json:"updated"`
	Listing *domain.Listing `json:"listing"`
}

// EditRoom applies partial updates to a listing the caller owns.
// Absent fields stay untouched; supplied zero values are applied.
func EditRoom(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editRoomRequest
		if err := respond.ParseJSON(r, &req); err != nil {
			writeBadRequest(w, d, "edit_room", "invalid JSON body: "+err.Error())
			return
		}
		if req.RoomID == "" {
			writeBadRequest(w, d, "edit_room", "room_id is required")
			return
		}
		if req.ManagementKey == "" {
			writeBadRequest(w, d, "edit_room", "management_key is required")
			return
		}

		res, err := d.Rooms.EditRoom(rooms.EditRoomInput{
			RoomID:         req.RoomID,
			ManagementKey:  req.ManagementKey,
			Rent:           req.Rent,
			Description:    req.Description,
			SpotsAvailable: req.SpotsAvailable,
			Amenities:      req.Amenities,
		})
		if err != nil {
			writeOpError(w, d, "edit_room", err)
			return
		}

		if res.NoChanges {
			recordTool(d, "edit_room", metrics.OutcomeNoChanges)
			respond.OKMessage(w, "no changes requested", render.EditNothing(), nil)
			return
		}

		d.Logger.Info("room updated",
			logger.String("room_id", res.Listing.PublicID),
			logger.Int("fields", len(res.Changed)))
		recordTool(d, "edit_room", metrics.OutcomeSuccess)
		respond.OK(w, render.EditSuccess(req.RoomID, res.Changed, *res.Listing), editRoomData{
			RoomID:  res.Listing.PublicID,
			Updated: res.Changed,
			Listing: res.Listing,
		})
	}
}
