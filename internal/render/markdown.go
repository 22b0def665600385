package render

import (
	"fmt"
	"strings"

	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/rooms"
)

// AddSuccess announces a new listing and its one-time management key
func AddSuccess(roomID, managementKey string) string {
	return fmt.Sprintf("✅ **Success! Your room is listed with ID: `%s`**\n\n"+
		"**IMPORTANT: Save your secret management key! You will NOT see it again.**\n"+
		"Your key is: `%s`", roomID, managementKey)
}

// AddMissing prompts for the required fields still absent, in order
func AddMissing(missing []string) string {
	return fmt.Sprintf("To list your room, please provide: **%s**.", strings.Join(missing, ", "))
}

// EditSuccess lists what changed, echoing the room ID as supplied
func EditSuccess(roomID string, changed []string, l domain.Listing) string {
	return fmt.Sprintf("✅ **Success!** For room `%s`, updated: %s.",
		roomID, strings.Join(changeFragments(changed, l), ", "))
}

// changeFragments phrases each changed field, quoting the new value for
// the numeric ones
func changeFragments(changed []string, l domain.Listing) []string {
	out := make([]string, 0, len(changed))
	for _, field := range changed {
		switch field {
		case rooms.FieldRent:
			out = append(out, fmt.Sprintf("rent to ₹%d", l.Rent))
		case rooms.FieldDescription:
			out = append(out, "description")
		case rooms.FieldSpotsAvailable:
			out = append(out, fmt.Sprintf("spots available to %d", l.SpotsAvailable))
		case rooms.FieldAmenities:
			out = append(out, "amenities")
		}
	}
	return out
}

// EditNothing is returned when an edit names no fields
func EditNothing() string {
	return "🤔 Nothing to update. Please specify what to change, like `set rent to 18000`."
}

// DeleteSuccess confirms a removal, echoing the room ID as supplied
func DeleteSuccess(roomID string) string {
	return fmt.Sprintf("✅ **Success!** Room listing `%s` has been deleted.", roomID)
}

// Results renders the room_finder reply: a summary header followed by
// one card per listing, or a no-match hint
func Results(listings []domain.Listing) string {
	if len(listings) == 0 {
		return "🔍 **No matching rooms found.** Try different filters."
	}

	lines := []string{fmt.Sprintf("🏠 **Room Finder Results** (showing %d result(s))\n", len(listings))}
	for _, l := range listings {
		lines = append(lines,
			fmt.Sprintf("**ID:** `%s`", l.PublicID),
			fmt.Sprintf("**Location:** %s • %s • %s", orDash(l.Location.City), orDash(l.Location.Area), orDash(l.Location.Pincode)),
			fmt.Sprintf("**Rent:** ₹%d/month", l.Rent),
			fmt.Sprintf("**Gender Pref:** %s", l.GenderPreference),
			fmt.Sprintf("**Spots Available:** %d", l.SpotsAvailable),
			fmt.Sprintf("**Amenities:** %s", joinOrDash(l.Amenities)),
			fmt.Sprintf("**Posted:** %s  •  **Expires:** %s", orEmDash(l.DatePosted.String()), orEmDash(l.ExpiresAt.String())),
			fmt.Sprintf("**Photo:** %s", orEmDash(l.PhotoURL)),
			fmt.Sprintf("**About:** %s", l.Description),
			"---",
		)
	}
	return strings.Join(lines, "\n")
}

// ErrorText renders operation failures for chat surfaces. Validation
// faults have no chat rendering and return ""
func ErrorText(e *domain.Error) string {
	switch e.Code {
	case domain.ErrCodeNotFound:
		return fmt.Sprintf("❌ Error: Room with ID `%s` not found.", e.RoomID)
	case domain.ErrCodePermissionDenied:
		return fmt.Sprintf("❌ Permission Denied: The management key is incorrect for room `%s`.", e.RoomID)
	default:
		return ""
	}
}

// Help returns the static welcome and usage text
func Help() string {
	return "👋 **Welcome to the RoomieMatch Assistant!**\n\n" +
		"**🔎 How to Search:**\n" +
		"• `Find rooms in Bengaluru`\n" +
		"• `Show me places under ₹20000`\n\n" +
		"**✍️ How to List a Room:**\n" +
		"When you list a room, you'll get a **secret management key**. **SAVE THIS KEY!** You need it to edit or delete your listing later.\n" +
		"• `I want to list a room.`\n\n" +
		"**✏️ How to Manage a Listing:**\n" +
		"You must provide the Room ID and your secret key.\n" +
		"• `Delete room R015 with key <your_secret_key>`\n" +
		"• `Edit room R015 with key <your_secret_key>, set rent to 18000`"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orEmDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func joinOrDash(items []string) string {
	joined := strings.TrimSpace(strings.Join(items, ", "))
	if joined == "" {
		return "—"
	}
	return joined
}
