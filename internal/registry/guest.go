package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// GuestRegistry owns primary guest records and orchestrates the cascade
// over additional guests and RSVP responses when a primary is deleted.
type GuestRegistry struct {
	guests     store.GuestStore
	rsvps      store.RSVPStore
	additional *AdditionalGuestRegistry
	log        zerolog.Logger
}

func NewGuestRegistry(guests store.GuestStore, rsvps store.RSVPStore, additional *AdditionalGuestRegistry, log zerolog.Logger) *GuestRegistry {
	return &GuestRegistry{guests: guests, rsvps: rsvps, additional: additional, log: log}
}

// AdditionalGuestInput is a dependent created alongside a primary guest.
type AdditionalGuestInput struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CascadeResult reports which steps of a guest deletion completed. The
// three deletes are sequential and are not rolled back on a later
// failure, so a caller seeing an error alongside a partially-filled
// result is looking at a genuinely inconsistent store.
type CascadeResult struct {
	GuestDeleted            bool `json:"guestDeleted"`
	AdditionalGuestsDeleted int  `json:"additionalGuestsDeleted"`
	ResponseDeleted         bool `json:"responseDeleted"`
}

// Create persists a new primary guest plus any nested additional guests.
// Names are unique case-insensitively across primary guests.
func (r *GuestRegistry) Create(ctx context.Context, name, email, phone string, additional []AdditionalGuestInput) (*models.Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	if err := r.checkDuplicateName(ctx, name, ""); err != nil {
		return nil, err
	}

	guest := &models.Guest{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		RSVPStatus: models.RSVPPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.guests.Put(ctx, guest); err != nil {
		return nil, err
	}

	// Nested creation is sequential: a failure here leaves the primary
	// in place and surfaces the error.
	for _, in := range additional {
		if strings.TrimSpace(in.Name) == "" {
			continue
		}
		if _, err := r.additional.Create(ctx, guest.ID, in.Name, in.Email, in.Phone); err != nil {
			return nil, fmt.Errorf("create additional guest %q: %w", in.Name, err)
		}
	}
	return guest, nil
}

// Update replaces name, email and phone. RSVP status, invitation flag
// and creation time are preserved.
func (r *GuestRegistry) Update(ctx context.Context, id, name, email, phone string) (*models.Guest, error) {
	guest, err := r.guests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	if err := r.checkDuplicateName(ctx, name, id); err != nil {
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

// Patch shallow-merges the provided fields without any validation, the
// name uniqueness check included. This is the admin escape hatch and is
// deliberately weaker than Update.
func (r *GuestRegistry) Patch(ctx context.Context, id string, fields map[string]any) (*models.Guest, error) {
	guest, err := r.guests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for key, value := range fields {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				guest.Name = v
			}
		case "email":
			if v, ok := value.(string); ok {
				guest.Email = v
			}
		case "phone":
			if v, ok := value.(string); ok {
				guest.Phone = v
			}
		case "rsvpStatus":
			if v, ok := value.(string); ok {
				guest.RSVPStatus = models.RSVPStatus(v)
			}
		case "invitationSent":
			if v, ok := value.(bool); ok {
				guest.InvitationSent = v
			}
		}
	}
	if err := r.guests.Put(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Delete removes the guest and cascades over its additional guests and
// RSVP response, in that order. Later steps are skipped on failure and
// earlier ones are not undone; the result reports how far it got.
func (r *GuestRegistry) Delete(ctx context.Context, id string) (CascadeResult, error) {
	var result CascadeResult

	if err := r.guests.Delete(ctx, id); err != nil {
		return result, err
	}
	result.GuestDeleted = true

	removed, err := r.additional.guests.DeleteByPrimary(ctx, id)
	if err != nil {
		r.log.Error().Err(err).Str("guest_id", id).Msg("cascade: additional guests not deleted")
		return result, fmt.Errorf("delete additional guests: %w", err)
	}
	result.AdditionalGuestsDeleted = removed

	deleted, err := r.rsvps.DeleteByGuest(ctx, id)
	if err != nil {
		r.log.Error().Err(err).Str("guest_id", id).Msg("cascade: rsvp response not deleted")
		return result, fmt.Errorf("delete rsvp response: %w", err)
	}
	result.ResponseDeleted = deleted

	return result, nil
}

// List returns all primary guests, newest first.
func (r *GuestRegistry) List(ctx context.Context) ([]models.Guest, error) {
	guests, err := r.guests.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(guests, func(i, j int) bool {
		return guests[i].CreatedAt.After(guests[j].CreatedAt)
	})
	return guests, nil
}

func (r *GuestRegistry) Get(ctx context.Context, id string) (*models.Guest, error) {
	return r.guests.Get(ctx, id)
}

// checkDuplicateName scans all primary guests for a case-insensitive
// name collision, ignoring the guest with excludeID.
func (r *GuestRegistry) checkDuplicateName(ctx context.Context, name, excludeID string) error {
	guests, err := r.guests.List(ctx)
	if err != nil {
		return err
	}
	for _, g := range guests {
		if g.ID != excludeID && strings.EqualFold(g.Name, name) {
			return ErrDuplicateName
		}
	}
	return nil
}
