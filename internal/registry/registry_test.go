package registry

import (
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// newTestStores opens the full store bundle over an in-memory sqlite
// database.
func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	stores, err := store.NewGorm(db)
	if err != nil {
		t.Fatalf("failed to build stores: %v", err)
	}
	return stores
}

func newTestRegistries(t *testing.T) (*store.Stores, *GuestRegistry, *AdditionalGuestRegistry, *RSVPLedger) {
	t.Helper()
	stores := newTestStores(t)
	additional := NewAdditionalGuestRegistry(stores.AdditionalGuests)
	guests := NewGuestRegistry(stores.Guests, stores.RSVPs, additional, zerolog.Nop())
	ledger := NewRSVPLedger(stores.Guests, stores.AdditionalGuests, stores.RSVPs, zerolog.Nop())
	return stores, guests, additional, ledger
}
