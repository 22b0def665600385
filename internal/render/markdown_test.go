package render

import (
	"strings"
	"testing"

	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/rooms"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

func sampleListing(t *testing.T) domain.Listing {
	t.Helper()
	return domain.Listing{
		PublicID:         "R005",
		SecretKey:        "test-key-for-r005",
		Location:         domain.Location{City: "Bengaluru", Area: "Marathahalli", Pincode: "560037"},
		Rent:             10500,
		GenderPreference: domain.GenderAny,
		Amenities:        []string{"WiFi", "Geyser"},
		Description:      "Spacious single room in a 2BHK apartment. Close to IT parks.",
		SpotsAvailable:   1,
		PhotoURL:         "https://example.com/img5.jpg",
		DatePosted:       mustDate(t, "2025-08-01"),
		ExpiresAt:        mustDate(t, "2025-08-31"),
		IsActive:         true,
	}
}

func TestAddSuccess(t *testing.T) {
	got := AddSuccess("R007", "abc-123")
	want := "✅ **Success! Your room is listed with ID: `R007`**\n\n" +
		"**IMPORTANT: Save your secret management key! You will NOT see it again.**\n" +
		"Your key is: `abc-123`"
	if got != want {
		t.Errorf("AddSuccess() =\n%q\nwant\n%q", got, want)
	}
}

func TestAddMissing(t *testing.T) {
	got := AddMissing([]string{"city", "area", "a description"})
	want := "To list your room, please provide: **city, area, a description**."
	if got != want {
		t.Errorf("AddMissing() = %q, want %q", got, want)
	}
}

func TestEditSuccess(t *testing.T) {
	l := sampleListing(t)
	l.Rent = 18000
	l.SpotsAvailable = 2

	changed := []string{rooms.FieldRent, rooms.FieldDescription, rooms.FieldSpotsAvailable, rooms.FieldAmenities}
	got := EditSuccess("r005", changed, l)
	want := "✅ **Success!** For room `r005`, updated: rent to ₹18000, description, spots available to 2, amenities."
	if got != want {
		t.Errorf("EditSuccess() = %q, want %q", got, want)
	}
}

func TestEditNothing(t *testing.T) {
	want := "🤔 Nothing to update. Please specify what to change, like `set rent to 18000`."
	if got := EditNothing(); got != want {
		t.Errorf("EditNothing() = %q, want %q", got, want)
	}
}

func TestDeleteSuccess(t *testing.T) {
	want := "✅ **Success!** Room listing `r005` has been deleted."
	if got := DeleteSuccess("r005"); got != want {
		t.Errorf("DeleteSuccess() = %q, want %q", got, want)
	}
}

func TestResultsEmpty(t *testing.T) {
	want := "🔍 **No matching rooms found.** Try different filters."
	if got := Results(nil); got != want {
		t.Errorf("Results(nil) = %q, want %q", got, want)
	}
}

func TestResultsCard(t *testing.T) {
	got := Results([]domain.Listing{sampleListing(t)})

	want := "🏠 **Room Finder Results** (showing 1 result(s))\n" +
		"\n" +
		"**ID:** `R005`\n" +
		"**Location:** Bengaluru • Marathahalli • 560037\n" +
		"**Rent:** ₹10500/month\n" +
		"**Gender Pref:** Any\n" +
		"**Spots Available:** 1\n" +
		"**Amenities:** WiFi, Geyser\n" +
		"**Posted:** 2025-08-01  •  **Expires:** 2025-08-31\n" +
		"**Photo:** https://example.com/img5.jpg\n" +
		"**About:** Spacious single room in a 2BHK apartment. Close to IT parks.\n" +
		"---"
	if got != want {
		t.Errorf("Results() =\n%q\nwant\n%q", got, want)
	}
}

func TestResultsPlaceholders(t *testing.T) {
	l := sampleListing(t)
	l.Location.Pincode = ""
	l.PhotoURL = ""
	l.Amenities = nil
	l.DatePosted = domain.Date{}
	l.ExpiresAt = domain.Date{}

	got := Results([]domain.Listing{l})

	if !strings.Contains(got, "**Location:** Bengaluru • Marathahalli • -") {
		t.Errorf("missing pincode placeholder in:\n%s", got)
	}
	if !strings.Contains(got, "**Amenities:** —") {
		t.Errorf("missing amenities placeholder in:\n%s", got)
	}
	if !strings.Contains(got, "**Photo:** —") {
		t.Errorf("missing photo placeholder in:\n%s", got)
	}
	if !strings.Contains(got, "**Posted:** —  •  **Expires:** —") {
		t.Errorf("missing date placeholders in:\n%s", got)
	}
}

func TestResultsCountsMultiple(t *testing.T) {
	first := sampleListing(t)
	second := sampleListing(t)
	second.PublicID = "R006"

	got := Results([]domain.Listing{first, second})
	if !strings.HasPrefix(got, "🏠 **Room Finder Results** (showing 2 result(s))\n") {
		t.Errorf("unexpected header in:\n%s", got)
	}
	if strings.Count(got, "**ID:**") != 2 {
		t.Errorf("want two cards in:\n%s", got)
	}
}

func TestErrorText(t *testing.T) {
	notFound := ErrorText(domain.ErrRoomNotFound("R015"))
	if notFound != "❌ Error: Room with ID `R015` not found." {
		t.Errorf("not found text = %q", notFound)
	}

	denied := ErrorText(domain.ErrWrongManagementKey("r005"))
	if denied != "❌ Permission Denied: The management key is incorrect for room `r005`." {
		t.Errorf("permission text = %q", denied)
	}

	if got := ErrorText(domain.ErrInvalidGender()); got != "" {
		t.Errorf("invalid parameter text = %q, want empty", got)
	}
}

func TestHelp(t *testing.T) {
	got := Help()

	for _, phrase := range []string{
		"👋 **Welcome to the RoomieMatch Assistant!**",
		"**🔎 How to Search:**",
		"**✍️ How to List a Room:**",
		"**✏️ How to Manage a Listing:**",
		"secret management key",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("Help() missing %q", phrase)
		}
	}
}
