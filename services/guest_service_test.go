package services_test

import (
	"errors"
	"testing"
	"time"

	"halachi-backend/models"
	"halachi-backend/services"
)

func TestCheckIn_DefaultsAndCoercion(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	stay := models.GuestStay{
		FullName:    "Ivan Ivanov",
		GuestsCount: 0, // must be coerced to 1
	}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if stay.ID == "" {
		t.Fatal("expected a generated id")
	}
	if stay.Status != models.GuestStatusCheckedIn {
		t.Fatalf("status = %q, want checked_in", stay.Status)
	}
	if stay.GuestsCount != 1 {
		t.Fatalf("guests_count = %d, want 1", stay.GuestsCount)
	}
}

func TestCheckIn_SnapshotsRoomName(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&models.Room{ID: "r1", Name: "Deluxe Suite"}).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	svc := services.NewGuestService(db)

	stay := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov", RoomID: "r1"}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if stay.RoomName != "Deluxe Suite" {
		t.Fatalf("room_name = %q, want snapshot of room name", stay.RoomName)
	}

	// Renaming the room later must not touch the stored snapshot.
	if err := db.Model(&models.Room{}).Where("id = ?", "r1").Update("name", "Renamed").Error; err != nil {
		t.Fatalf("rename room: %v", err)
	}
	stays, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if stays[0].RoomName != "Deluxe Suite" {
		t.Fatalf("snapshot changed after rename: %q", stays[0].RoomName)
	}
}

func TestCheckIn_UpsertReplacesStay(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	first := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov", CheckInDate: "2026-03-01"}
	if err := svc.CheckIn(&first); err != nil {
		t.Fatalf("first check in: %v", err)
	}
	if err := svc.CheckOut("g1", "2026-03-05", "12:00"); err != nil {
		t.Fatalf("check out: %v", err)
	}

	// Re-posting the same id starts a new episode.
	second := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov", CheckInDate: "2026-04-01"}
	if err := svc.CheckIn(&second); err != nil {
		t.Fatalf("second check in: %v", err)
	}

	stays, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stays) != 1 {
		t.Fatalf("got %d stays, want 1", len(stays))
	}
	if stays[0].Status != models.GuestStatusCheckedIn || stays[0].CheckInDate != "2026-04-01" {
		t.Fatalf("unexpected stay after upsert: %+v", stays[0])
	}
}

func TestEdit_EmptyValuesClearNothing(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	stay := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov", Phone: "+7 900 000-00-00", GuestsCount: 2}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}

	// Empty strings and zero numbers are deliberate no-ops.
	err := svc.Edit("g1", map[string]interface{}{
		"phone":        "",
		"guests_count": float64(0),
		"notes":        "late arrival",
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	stays, _ := svc.List()
	got := stays[0]
	if got.Phone != "+7 900 000-00-00" {
		t.Fatalf("empty phone blanked the stored value: %q", got.Phone)
	}
	if got.GuestsCount != 2 {
		t.Fatalf("zero guests_count overwrote the stored value: %d", got.GuestsCount)
	}
	if got.Notes != "late arrival" {
		t.Fatalf("non-empty field not applied: %q", got.Notes)
	}
}

func TestEdit_NonexistentReturnsNotFound(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	err := svc.Edit("nonexistent", map[string]interface{}{"phone": "+7 900 111-22-33"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// And no record may appear as a side effect.
	stays, _ := svc.List()
	if len(stays) != 0 {
		t.Fatalf("edit of unknown id created %d records", len(stays))
	}
}

func TestEdit_IgnoresProtectedColumns(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	stay := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov"}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if err := svc.Edit("g1", map[string]interface{}{"id": "hacked", "full_name": "Petr Petrov"}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	stays, _ := svc.List()
	if stays[0].ID != "g1" || stays[0].FullName != "Petr Petrov" {
		t.Fatalf("unexpected record after edit: %+v", stays[0])
	}
}

func TestCheckOut_ForcesStatusAndDefaultsTimestamps(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	stay := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov"}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if err := svc.CheckOut("g1", "", ""); err != nil {
		t.Fatalf("check out: %v", err)
	}

	stays, _ := svc.List()
	got := stays[0]
	if got.Status != models.GuestStatusCheckedOut {
		t.Fatalf("status = %q, want checked_out", got.Status)
	}
	if got.CheckOutDate == "" || got.CheckOutTime == "" {
		t.Fatalf("checkout timestamps not defaulted: %q %q", got.CheckOutDate, got.CheckOutTime)
	}

	// Second call just rewrites the same state.
	if err := svc.CheckOut("g1", "2026-03-05", "12:00"); err != nil {
		t.Fatalf("repeat check out: %v", err)
	}
	stays, _ = svc.List()
	if stays[0].Status != models.GuestStatusCheckedOut || stays[0].CheckOutDate != "2026-03-05" {
		t.Fatalf("unexpected stay after repeat checkout: %+v", stays[0])
	}
}

func TestCheckOut_NonexistentReturnsNotFound(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	if err := svc.CheckOut("missing", "", ""); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_SilentAndIdempotent(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	stay := models.GuestStay{ID: "g1", FullName: "Ivan Ivanov"}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if err := svc.Delete("g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	stays, _ := svc.List()
	for _, g := range stays {
		if g.ID == "g1" {
			t.Fatal("deleted stay still listed")
		}
	}

	if err := svc.Delete("g1"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	for _, id := range []string{"g1", "g2", "g3"} {
		stay := models.GuestStay{ID: id, FullName: "Guest " + id}
		if err := svc.CheckIn(&stay); err != nil {
			t.Fatalf("check in %s: %v", id, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	stays, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stays) != 3 {
		t.Fatalf("got %d stays, want 3", len(stays))
	}
	if stays[0].ID != "g3" || stays[2].ID != "g1" {
		t.Fatalf("unexpected order: %s %s %s", stays[0].ID, stays[1].ID, stays[2].ID)
	}
}

func TestSummary_Scenario(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))
	today := time.Now().Format("2006-01-02")

	stay := models.GuestStay{
		ID:          "g1",
		FullName:    "Ivan Ivanov",
		RoomID:      "r1",
		CheckInDate: today,
		GuestsCount: 2,
	}
	if err := svc.CheckIn(&stay); err != nil {
		t.Fatalf("check in: %v", err)
	}

	other := models.GuestStay{ID: "g2", FullName: "Anna Petrova", CheckInDate: "2026-01-15", GuestsCount: 3}
	if err := svc.CheckIn(&other); err != nil {
		t.Fatalf("check in: %v", err)
	}

	summary, err := svc.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := models.OccupancySummary{Total: 2, CurrentlyHoused: 5, CheckedOut: 0, TodayCheckins: 1}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}

	// Checking g1 out drops currently_housed by its guests_count and bumps
	// checked_out by one.
	if err := svc.CheckOut("g1", "", ""); err != nil {
		t.Fatalf("check out: %v", err)
	}
	summary, err = svc.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want = models.OccupancySummary{Total: 2, CurrentlyHoused: 3, CheckedOut: 1, TodayCheckins: 1}
	if summary != want {
		t.Fatalf("summary after checkout = %+v, want %+v", summary, want)
	}
}

func TestSummary_HousedMatchesCheckedInCounts(t *testing.T) {
	svc := services.NewGuestService(newTestDB(t))

	seed := []models.GuestStay{
		{ID: "a", GuestsCount: 2},
		{ID: "b", GuestsCount: 1},
		{ID: "c", GuestsCount: 4},
	}
	for i := range seed {
		if err := svc.CheckIn(&seed[i]); err != nil {
			t.Fatalf("check in %s: %v", seed[i].ID, err)
		}
	}
	if err := svc.CheckOut("b", "", ""); err != nil {
		t.Fatalf("check out: %v", err)
	}
	if err := svc.Edit("c", map[string]interface{}{"guests_count": float64(3)}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	stays, _ := svc.List()
	wantHoused := 0
	for _, g := range stays {
		if g.Status == models.GuestStatusCheckedIn {
			wantHoused += g.GuestsCount
		}
	}

	summary, err := svc.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.CurrentlyHoused != wantHoused {
		t.Fatalf("currently_housed = %d, want %d", summary.CurrentlyHoused, wantHoused)
	}
}
