package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

func TestJSONFileGuests(t *testing.T) {
	dir := t.TempDir()
	stores, err := NewJSONFile(dir)
	if err != nil {
		t.Fatalf("failed to build stores: %v", err)
	}
	ctx := context.Background()

	guest := &models.Guest{ID: "g1", Name: "Maria", RSVPStatus: models.RSVPPending, CreatedAt: time.Now().UTC()}
	if err := stores.Guests.Put(ctx, guest); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// The collection is a plain JSON file on disk.
	if _, err := os.Stat(filepath.Join(dir, "guests.json")); err != nil {
		t.Fatalf("expected guests.json to exist: %v", err)
	}

	got, err := stores.Guests.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Maria" {
		t.Errorf("expected Maria, got %q", got.Name)
	}

	// Put with the same id replaces in place.
	guest.Name = "Maria Santos"
	if err := stores.Guests.Put(ctx, guest); err != nil {
		t.Fatalf("second put failed: %v", err)
	}
	all, _ := stores.Guests.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 guest after replace, got %d", len(all))
	}
	if all[0].Name != "Maria Santos" {
		t.Errorf("expected replaced name, got %q", all[0].Name)
	}

	if err := stores.Guests.Delete(ctx, "g1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := stores.Guests.Delete(ctx, "g1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := stores.Guests.Get(ctx, "g1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONFileAdditionalGuests(t *testing.T) {
	stores, err := NewJSONFile(t.TempDir())
	if err != nil {
		t.Fatalf("failed to build stores: %v", err)
	}
	ctx := context.Background()

	for _, g := range []models.AdditionalGuest{
		{ID: "a1", PrimaryGuestID: "p1", Name: "A"},
		{ID: "a2", PrimaryGuestID: "p1", Name: "B"},
		{ID: "a3", PrimaryGuestID: "p2", Name: "C"},
	} {
		g := g
		if err := stores.AdditionalGuests.Put(ctx, &g); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	p1, err := stores.AdditionalGuests.ListByPrimary(ctx, "p1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(p1) != 2 {
		t.Errorf("expected 2 guests for p1, got %d", len(p1))
	}

	removed, err := stores.AdditionalGuests.DeleteByPrimary(ctx, "p1")
	if err != nil {
		t.Fatalf("delete by primary failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	remaining, _ := stores.AdditionalGuests.List(ctx)
	if len(remaining) != 1 || remaining[0].ID != "a3" {
		t.Error("expected only p2's guest to remain")
	}
}

func TestJSONFileRSVPs(t *testing.T) {
	stores, err := NewJSONFile(t.TempDir())
	if err != nil {
		t.Fatalf("failed to build stores: %v", err)
	}
	ctx := context.Background()

	response := &models.RSVPResponse{
		ID:        "r1",
		GuestID:   "g1",
		GuestName: "Maria",
		Attending: "yes",
		AdditionalGuests: []models.GuestSnapshot{
			{Name: "Plus One", Email: "p@example.com"},
		},
		SubmittedAt: time.Now().UTC(),
	}
	if err := stores.RSVPs.Put(ctx, response); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := stores.RSVPs.GetByGuest(ctx, "g1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.AdditionalGuests) != 1 || got.AdditionalGuests[0].Name != "Plus One" {
		t.Error("snapshot did not round-trip")
	}

	deleted, err := stores.RSVPs.DeleteByGuest(ctx, "g1")
	if err != nil || !deleted {
		t.Fatalf("expected delete to report true, got %v/%v", deleted, err)
	}
	deleted, err = stores.RSVPs.DeleteByGuest(ctx, "g1")
	if err != nil || deleted {
		t.Fatalf("expected delete to report false on repeat, got %v/%v", deleted, err)
	}
}

func TestJSONFileDocuments(t *testing.T) {
	dir := t.TempDir()
	stores, err := NewJSONFile(dir)
	if err != nil {
		t.Fatalf("failed to build stores: %v", err)
	}
	ctx := context.Background()

	// A missing document reads as the default.
	settings, err := stores.UploadSettings.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !settings.Enabled || settings.MaxPhotos != 10 {
		t.Errorf("unexpected defaults: %+v", settings)
	}

	settings.Enabled = false
	settings.Message = "Back soon"
	if err := stores.UploadSettings.Put(ctx, settings); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// A fresh handle over the same directory sees the latest write.
	stores2, err := NewJSONFile(dir)
	if err != nil {
		t.Fatalf("failed to rebuild stores: %v", err)
	}
	got, err := stores2.UploadSettings.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Enabled || got.Message != "Back soon" {
		t.Errorf("expected persisted settings, got %+v", got)
	}
}
