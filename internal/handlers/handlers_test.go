package handlers

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delacruz-wedding/wedding-api/internal/registry"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// stubBlob accepts every store and returns a deterministic URL.
type stubBlob struct {
	stored []string
}

func (s *stubBlob) Store(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	s.stored = append(s.stored, key)
	return "https://blob.example.com/" + key, nil
}

func (s *stubBlob) Delete(ctx context.Context, url string) error { return nil }

type testEnv struct {
	stores     *store.Stores
	guests     *registry.GuestRegistry
	additional *registry.AdditionalGuestRegistry
	ledger     *registry.RSVPLedger
	gallery    *registry.Gallery
	blob       *stubBlob
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	stores, err := store.NewGorm(db)
	if err != nil {
		t.Fatalf("failed to build stores: %v", err)
	}

	blob := &stubBlob{}
	additional := registry.NewAdditionalGuestRegistry(stores.AdditionalGuests)
	guests := registry.NewGuestRegistry(stores.Guests, stores.RSVPs, additional, zerolog.Nop())
	ledger := registry.NewRSVPLedger(stores.Guests, stores.AdditionalGuests, stores.RSVPs, zerolog.Nop())
	gallery := registry.NewGallery(stores.Gallery, stores.Preview, blob, zerolog.Nop())

	return &testEnv{
		stores:     stores,
		guests:     guests,
		additional: additional,
		ledger:     ledger,
		gallery:    gallery,
		blob:       blob,
	}
}
