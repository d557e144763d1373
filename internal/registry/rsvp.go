package registry

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// Accepts anything shaped like local@domain.tld. Deliverability is the
// mail provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RSVPLedger owns the one-response-per-guest attendance collection. A
// submission touches three collections in the fixed order guest →
// additional guests → ledger, with no shared transaction: a failure
// partway leaves earlier writes in place.
type RSVPLedger struct {
	guests     store.GuestStore
	additional store.AdditionalGuestStore
	rsvps      store.RSVPStore
	log        zerolog.Logger
}

func NewRSVPLedger(guests store.GuestStore, additional store.AdditionalGuestStore, rsvps store.RSVPStore, log zerolog.Logger) *RSVPLedger {
	return &RSVPLedger{guests: guests, additional: additional, rsvps: rsvps, log: log}
}

// AdditionalGuestDetail carries the per-dependent contact details a
// guest filled in on the RSVP form, keyed by the additional guest's id.
type AdditionalGuestDetail struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type SubmitInput struct {
	GuestID                    string
	GuestName                  string
	Attending                  string
	Email                      string
	Phone                      string
	SelectedAdditionalGuestIDs []string
	AdditionalGuestDetails     []AdditionalGuestDetail
	DietaryRestrictions        string
	Message                    string
}

// Submit validates in order, short-circuiting on the first failure, then
// performs the three writes. Validation failures mutate nothing.
func (l *RSVPLedger) Submit(ctx context.Context, in SubmitInput) (*models.RSVPResponse, error) {
	if in.GuestID == "" || strings.TrimSpace(in.GuestName) == "" {
		return nil, ErrMissingGuestInfo
	}
	if in.Attending != "yes" && in.Attending != "no" {
		return nil, ErrMissingAttendance
	}
	if in.Attending == "yes" && strings.TrimSpace(in.Phone) == "" {
		return nil, ErrPhoneRequired
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		return nil, ErrInvalidEmail
	}

	status := models.RSVPNotAttending
	if in.Attending == "yes" {
		status = models.RSVPAttending
	}

	// Write 1: primary guest contact details and attendance.
	guest, err := l.guests.Get(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}
	guest.Email = in.Email
	guest.Phone = in.Phone
	guest.RSVPStatus = status
	if err := l.guests.Put(ctx, guest); err != nil {
		return nil, err
	}

	// Write 2: the whole party. Every additional guest of this primary
	// is touched, not just the ones named in the submission; anyone not
	// selected is marked not-attending. A submission is a full replace
	// of the party's attendance state.
	selected := make(map[string]bool, len(in.SelectedAdditionalGuestIDs))
	for _, id := range in.SelectedAdditionalGuestIDs {
		selected[id] = true
	}
	details := make(map[string]AdditionalGuestDetail, len(in.AdditionalGuestDetails))
	for _, d := range in.AdditionalGuestDetails {
		details[d.ID] = d
	}
	party, err := l.additional.ListByPrimary(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}
	for i := range party {
		member := party[i]
		if selected[member.ID] {
			member.RSVPStatus = models.RSVPAttending
		} else {
			member.RSVPStatus = models.RSVPNotAttending
		}
		if d, ok := details[member.ID]; ok {
			member.Email = d.Email
			member.Phone = d.Phone
		}
		if err := l.additional.Put(ctx, &member); err != nil {
			return nil, err
		}
	}

	// Write 3: replace the ledger entry. The snapshot freezes the full
	// details array as submitted, selected or not.
	if _, err := l.rsvps.DeleteByGuest(ctx, in.GuestID); err != nil {
		return nil, err
	}
	snapshots := make([]models.GuestSnapshot, 0, len(in.AdditionalGuestDetails))
	for _, d := range in.AdditionalGuestDetails {
		snapshots = append(snapshots, models.GuestSnapshot{
			Name:  strings.TrimSpace(d.Name),
			Email: strings.TrimSpace(d.Email),
		})
	}
	response := &models.RSVPResponse{
		ID:               uuid.NewString(),
		GuestID:          in.GuestID,
		GuestName:        in.GuestName,
		Attending:        in.Attending,
		AdditionalGuests: snapshots,
		SubmittedAt:      time.Now().UTC(),
	}
	if in.Attending == "yes" || len(in.SelectedAdditionalGuestIDs) > 0 {
		response.DietaryRestrictions = in.DietaryRestrictions
	}
	if strings.TrimSpace(in.Message) != "" {
		response.Message = in.Message
	}
	if err := l.rsvps.Put(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}

// Get returns the guest's current response, or ErrNotFound.
func (l *RSVPLedger) Get(ctx context.Context, guestID string) (*models.RSVPResponse, error) {
	return l.rsvps.GetByGuest(ctx, guestID)
}

func (l *RSVPLedger) ListAll(ctx context.Context) ([]models.RSVPResponse, error) {
	return l.rsvps.List(ctx)
}
