package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

func TestGuestCreate_DuplicateName(t *testing.T) {
	_, guests, _, _ := newTestRegistries(t)
	ctx := context.Background()

	if _, err := guests.Create(ctx, "Maria Santos", "", "", nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := guests.Create(ctx, "MARIA santos", "other@example.com", "", nil)
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	all, err := guests.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected store unchanged with 1 guest, got %d", len(all))
	}
}

func TestGuestCreate_WithAdditionalGuests(t *testing.T) {
	_, guests, additional, _ := newTestRegistries(t)
	ctx := context.Background()

	guest, err := guests.Create(ctx, "Jose Rizal", "jose@example.com", "0917", []AdditionalGuestInput{
		{Name: "Ana Rizal"},
		{Name: "Lolo Rizal", Phone: "0918"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if guest.RSVPStatus != models.RSVPPending {
		t.Errorf("expected pending status, got %s", guest.RSVPStatus)
	}
	if guest.InvitationSent {
		t.Error("expected invitationSent to default to false")
	}

	party, err := additional.ListByPrimary(ctx, guest.ID)
	if err != nil {
		t.Fatalf("list by primary failed: %v", err)
	}
	if len(party) != 2 {
		t.Fatalf("expected 2 additional guests, got %d", len(party))
	}
	for _, member := range party {
		if member.PrimaryGuestID != guest.ID {
			t.Errorf("additional guest %s not linked to primary", member.Name)
		}
		if member.RSVPStatus != models.RSVPPending {
			t.Errorf("expected pending status for %s, got %s", member.Name, member.RSVPStatus)
		}
	}
}

func TestGuestUpdate(t *testing.T) {
	_, guests, _, _ := newTestRegistries(t)
	ctx := context.Background()

	a, _ := guests.Create(ctx, "Alice", "", "", nil)
	b, _ := guests.Create(ctx, "Bob", "", "", nil)

	t.Run("CollisionWithOtherGuest", func(t *testing.T) {
		if _, err := guests.Update(ctx, b.ID, "alice", "", ""); !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("KeepingOwnNameIsFine", func(t *testing.T) {
		updated, err := guests.Update(ctx, a.ID, "Alice", "alice@example.com", "0917")
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Email != "alice@example.com" || updated.Phone != "0917" {
			t.Error("contact details not replaced")
		}
		if !updated.CreatedAt.Equal(a.CreatedAt) {
			t.Error("createdAt must be preserved")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, err := guests.Update(ctx, "missing", "X", "", ""); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGuestPatch_SkipsUniquenessCheck(t *testing.T) {
	_, guests, _, _ := newTestRegistries(t)
	ctx := context.Background()

	guests.Create(ctx, "Alice", "", "", nil)
	b, _ := guests.Create(ctx, "Bob", "", "", nil)

	// Patch deliberately bypasses the duplicate-name check.
	patched, err := guests.Patch(ctx, b.ID, map[string]any{
		"name":           "alice",
		"invitationSent": true,
		"rsvpStatus":     "attending",
	})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if patched.Name != "alice" {
		t.Errorf("expected patched name, got %q", patched.Name)
	}
	if !patched.InvitationSent {
		t.Error("expected invitationSent true")
	}
	if patched.RSVPStatus != models.RSVPAttending {
		t.Errorf("expected attending, got %s", patched.RSVPStatus)
	}
}

func TestGuestDelete_Cascades(t *testing.T) {
	stores, guests, additional, ledger := newTestRegistries(t)
	ctx := context.Background()

	guest, _ := guests.Create(ctx, "Maria", "", "", []AdditionalGuestInput{
		{Name: "Plus One"},
		{Name: "Plus Two"},
	})
	party, _ := additional.ListByPrimary(ctx, guest.ID)

	_, err := ledger.Submit(ctx, SubmitInput{
		GuestID:                    guest.ID,
		GuestName:                  guest.Name,
		Attending:                  "yes",
		Phone:                      "0917",
		SelectedAdditionalGuestIDs: []string{party[0].ID},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	result, err := guests.Delete(ctx, guest.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !result.GuestDeleted {
		t.Error("expected guest deleted")
	}
	if result.AdditionalGuestsDeleted != 2 {
		t.Errorf("expected 2 additional guests deleted, got %d", result.AdditionalGuestsDeleted)
	}
	if !result.ResponseDeleted {
		t.Error("expected rsvp response deleted")
	}

	if _, err := guests.Get(ctx, guest.ID); !errors.Is(err, ErrNotFound) {
		t.Error("guest still present after delete")
	}
	remaining, _ := stores.AdditionalGuests.ListByPrimary(ctx, guest.ID)
	if len(remaining) != 0 {
		t.Errorf("expected 0 additional guests, got %d", len(remaining))
	}
	if _, err := ledger.Get(ctx, guest.ID); !errors.Is(err, ErrNotFound) {
		t.Error("rsvp response still present after delete")
	}
}

func TestGuestDelete_NotFoundOnRepeat(t *testing.T) {
	_, guests, _, _ := newTestRegistries(t)
	ctx := context.Background()

	guest, _ := guests.Create(ctx, "Maria", "", "", nil)
	if _, err := guests.Delete(ctx, guest.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// Repeating the delete reports not-found, it does not silently
	// succeed.
	if _, err := guests.Delete(ctx, guest.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestGuestList_NewestFirst(t *testing.T) {
	stores, guests, _, _ := newTestRegistries(t)
	ctx := context.Background()

	first, _ := guests.Create(ctx, "First", "", "", nil)
	second, _ := guests.Create(ctx, "Second", "", "", nil)

	// Force distinct creation times; uuids are written in one test run
	// faster than clock resolution on some systems.
	g, _ := stores.Guests.Get(ctx, first.ID)
	g.CreatedAt = g.CreatedAt.Add(-time.Second)
	stores.Guests.Put(ctx, g)

	all, err := guests.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 guests, got %d", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("expected newest guest first, got %s", all[0].Name)
	}
}
