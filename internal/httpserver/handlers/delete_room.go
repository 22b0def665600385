package handlers

import (
	"net/http"

	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/metrics"
	"github.com/roomiematch/roomiematch/internal/render"
)

type deleteRoomRequest struct {
	RoomID        string `json:"room_id"`
	ManagementKey string `json:"management_key"`
}

type deleteRoomData struct {
	RoomID string `json:"room_id"`
}

// DeleteRoom permanently removes a listing the caller owns
func DeleteRoom(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteRoomRequest
		if err := respond.ParseJSON(r, &req); err != nil {
			writeBadRequest(w, d, "delete_room", "invalid JSON body: "+err.Error())
			return
		}
		if req.RoomID == "" {
			writeBadRequest(w, d, "delete_room", "room_id is required")
			return
		}
		if req.ManagementKey == "" {
			writeBadRequest(w, d, "delete_room", "management_key is required")
			return
		}

		res, err := d.Rooms.DeleteRoom(req.RoomID, req.ManagementKey)
		if err != nil {
			writeOpError(w, d, "delete_room", err)
			return
		}

		d.Logger.Info("room deleted", logger.String("room_id", res.Listing.PublicID))
		recordTool(d, "delete_room", metrics.OutcomeSuccess)
		respond.OK(w, render.DeleteSuccess(req.RoomID), deleteRoomData{
			RoomID: res.Listing.PublicID,
		})
	}
}
