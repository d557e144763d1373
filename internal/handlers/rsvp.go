package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/gate"
	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/notifier"
	"github.com/delacruz-wedding/wedding-api/internal/registry"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

type RSVPHandler struct {
	guests     *registry.GuestRegistry
	additional *registry.AdditionalGuestRegistry
	ledger     *registry.RSVPLedger
	settings   store.Document[models.RSVPSettings]
	notifier   notifier.Notifier
	log        zerolog.Logger
}

func NewRSVPHandler(guests *registry.GuestRegistry, additional *registry.AdditionalGuestRegistry, ledger *registry.RSVPLedger, settings store.Document[models.RSVPSettings], n notifier.Notifier, log zerolog.Logger) *RSVPHandler {
	return &RSVPHandler{guests: guests, additional: additional, ledger: ledger, settings: settings, notifier: n, log: log}
}

type RSVPStatusResponse struct {
	Body gate.Decision
}

// HandleStatus reports whether RSVP submission is currently open,
// evaluated fresh against the clock on every call.
func (h *RSVPHandler) HandleStatus(ctx context.Context, input *struct{}) (*RSVPStatusResponse, error) {
	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load rsvp settings")
		return nil, domainError(err)
	}
	return &RSVPStatusResponse{Body: gate.RSVP(settings, time.Now())}, nil
}

type RSVPPageRequest struct {
	GuestID string `path:"guestID" doc:"Primary guest id from the personalized invitation link"`
}

type RSVPPageResponse struct {
	Body struct {
		Guest            models.Guest             `json:"guest"`
		AdditionalGuests []models.AdditionalGuest `json:"additionalGuests"`
		Response         *models.RSVPResponse     `json:"response,omitempty"`
		Gate             gate.Decision            `json:"gate"`
	}
}

// HandlePage resolves a personalized link into everything the RSVP page
// needs. An unknown id is a 404; the frontend redirects home.
func (h *RSVPHandler) HandlePage(ctx context.Context, input *RSVPPageRequest) (*RSVPPageResponse, error) {
	guest, err := h.guests.Get(ctx, input.GuestID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, huma.Error404NotFound("Guest not found")
		}
		h.log.Error().Err(err).Str("guest_id", input.GuestID).Msg("failed to load guest")
		return nil, domainError(err)
	}

	party, err := h.additional.ListByPrimary(ctx, guest.ID)
	if err != nil {
		h.log.Error().Err(err).Str("guest_id", guest.ID).Msg("failed to load additional guests")
		return nil, domainError(err)
	}

	res := &RSVPPageResponse{}
	res.Body.Guest = *guest
	res.Body.AdditionalGuests = party

	response, err := h.ledger.Get(ctx, guest.ID)
	if err == nil {
		res.Body.Response = response
	} else if !errors.Is(err, registry.ErrNotFound) {
		h.log.Error().Err(err).Str("guest_id", guest.ID).Msg("failed to load rsvp response")
		return nil, domainError(err)
	}

	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load rsvp settings")
		return nil, domainError(err)
	}
	res.Body.Gate = gate.RSVP(settings, time.Now())

	return res, nil
}

type SubmitRSVPRequest struct {
	Body struct {
		GuestID                    string                           `json:"guestId" doc:"Primary guest id"`
		GuestName                  string                           `json:"guestName" doc:"Primary guest name as shown on the invitation"`
		Attending                  string                           `json:"attending" doc:"yes or no"`
		Email                      string                           `json:"email,omitempty"`
		Phone                      string                           `json:"phone,omitempty"`
		SelectedAdditionalGuestIDs []string                         `json:"selectedAdditionalGuestIds,omitempty" doc:"Ids of additional guests who will attend"`
		AdditionalGuestDetails     []registry.AdditionalGuestDetail `json:"additionalGuestDetails,omitempty"`
		DietaryRestrictions        string                           `json:"dietaryRestrictions,omitempty"`
		Message                    string                           `json:"message,omitempty"`
	}
}

type SubmitRSVPResponse struct {
	Body struct {
		Message  string              `json:"message"`
		Response models.RSVPResponse `json:"response"`
	}
}

func (h *RSVPHandler) HandleSubmit(ctx context.Context, input *SubmitRSVPRequest) (*SubmitRSVPResponse, error) {
	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load rsvp settings")
		return nil, domainError(err)
	}
	if decision := gate.RSVP(settings, time.Now()); !decision.Open {
		return nil, huma.Error403Forbidden(decision.Message)
	}

	response, err := h.ledger.Submit(ctx, registry.SubmitInput{
		GuestID:                    input.Body.GuestID,
		GuestName:                  input.Body.GuestName,
		Attending:                  input.Body.Attending,
		Email:                      input.Body.Email,
		Phone:                      input.Body.Phone,
		SelectedAdditionalGuestIDs: input.Body.SelectedAdditionalGuestIDs,
		AdditionalGuestDetails:     input.Body.AdditionalGuestDetails,
		DietaryRestrictions:        input.Body.DietaryRestrictions,
		Message:                    input.Body.Message,
	})
	if err != nil {
		h.log.Warn().Err(err).Str("guest_id", input.Body.GuestID).Msg("rsvp submission failed")
		return nil, domainError(err)
	}

	if h.notifier != nil {
		if guest, err := h.guests.Get(ctx, response.GuestID); err == nil {
			if err := h.notifier.NotifyRSVP(*guest, *response); err != nil {
				h.log.Warn().Err(err).Msg("rsvp notification failed")
			}
		}
	}

	res := &SubmitRSVPResponse{}
	res.Body.Message = "Thank you! Your RSVP has been recorded."
	res.Body.Response = *response
	return res, nil
}

type ListRSVPsResponse struct {
	Body struct {
		Responses []models.RSVPResponse `json:"responses"`
	}
}

func (h *RSVPHandler) HandleList(ctx context.Context, input *struct{}) (*ListRSVPsResponse, error) {
	responses, err := h.ledger.ListAll(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list rsvp responses")
		return nil, domainError(err)
	}
	res := &ListRSVPsResponse{}
	res.Body.Responses = responses
	return res, nil
}

type GetRSVPRequest struct {
	GuestID string `path:"guestID"`
}

type GetRSVPResponse struct {
	Body models.RSVPResponse
}

func (h *RSVPHandler) HandleGet(ctx context.Context, input *GetRSVPRequest) (*GetRSVPResponse, error) {
	response, err := h.ledger.Get(ctx, input.GuestID)
	if err != nil {
		return nil, domainError(err)
	}
	return &GetRSVPResponse{Body: *response}, nil
}
