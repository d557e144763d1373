package registry

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// AdditionalGuestRegistry owns dependents of primary guests. It does not
// verify that the referenced primary guest exists: callers create
// additional guests either nested inside a primary-guest creation or
// from the admin console, both of which hold a live primary id.
type AdditionalGuestRegistry struct {
	guests store.AdditionalGuestStore
}

func NewAdditionalGuestRegistry(guests store.AdditionalGuestStore) *AdditionalGuestRegistry {
	return &AdditionalGuestRegistry{guests: guests}
}

func (r *AdditionalGuestRegistry) Create(ctx context.Context, primaryGuestID, name, email, phone string) (*models.AdditionalGuest, error) {
	if strings.TrimSpace(primaryGuestID) == "" || strings.TrimSpace(name) == "" {
		return nil, ErrMissingFields
	}

	guest := &models.AdditionalGuest{
		ID:             uuid.NewString(),
		PrimaryGuestID: primaryGuestID,
		Name:           strings.TrimSpace(name),
		Email:          email,
		Phone:          phone,
		RSVPStatus:     models.RSVPPending,
		CreatedAt:      time.Now().UTC(),
	}
	if err := r.guests.Put(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Update fully replaces name, email and phone. Status and ownership are
// untouched.
func (r *AdditionalGuestRegistry) Update(ctx context.Context, id, name, email, phone string) (*models.AdditionalGuest, error) {
	guest, err := r.guests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	guest.Name = name
	guest.Email = email
	guest.Phone = phone
	if err := r.guests.Put(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (r *AdditionalGuestRegistry) Delete(ctx context.Context, id string) error {
	return r.guests.Delete(ctx, id)
}

// ListByPrimary returns all additional guests, or only those belonging
// to one primary guest when primaryGuestID is non-empty.
func (r *AdditionalGuestRegistry) ListByPrimary(ctx context.Context, primaryGuestID string) ([]models.AdditionalGuest, error) {
	if primaryGuestID == "" {
		return r.guests.List(ctx)
	}
	return r.guests.ListByPrimary(ctx, primaryGuestID)
}
