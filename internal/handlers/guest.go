package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/qr"
	"github.com/delacruz-wedding/wedding-api/internal/registry"
)

// GuestHandler is the admin surface over the primary-guest registry.
type GuestHandler struct {
	registry *registry.GuestRegistry
	qr       *qr.Generator
	log      zerolog.Logger
}

func NewGuestHandler(reg *registry.GuestRegistry, qrGen *qr.Generator, log zerolog.Logger) *GuestHandler {
	return &GuestHandler{registry: reg, qr: qrGen, log: log}
}

type ListGuestsResponse struct {
	Body struct {
		Guests []models.Guest `json:"guests"`
	}
}

func (h *GuestHandler) HandleList(ctx context.Context, input *struct{}) (*ListGuestsResponse, error) {
	guests, err := h.registry.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list guests")
		return nil, domainError(err)
	}
	res := &ListGuestsResponse{}
	res.Body.Guests = guests
	return res, nil
}

type CreateGuestRequest struct {
	Body struct {
		Name             string                          `json:"name" doc:"Guest name, unique case-insensitively"`
		Email            string                          `json:"email,omitempty"`
		Phone            string                          `json:"phone,omitempty"`
		AdditionalGuests []registry.AdditionalGuestInput `json:"additionalGuests,omitempty"`
	}
}

type GuestResponse struct {
	Body models.Guest
}

func (h *GuestHandler) HandleCreate(ctx context.Context, input *CreateGuestRequest) (*GuestResponse, error) {
	guest, err := h.registry.Create(ctx, input.Body.Name, input.Body.Email, input.Body.Phone, input.Body.AdditionalGuests)
	if err != nil {
		h.log.Warn().Err(err).Str("name", input.Body.Name).Msg("guest creation failed")
		return nil, domainError(err)
	}
	return &GuestResponse{Body: *guest}, nil
}

type GetGuestRequest struct {
	ID string `path:"id"`
}

func (h *GuestHandler) HandleGet(ctx context.Context, input *GetGuestRequest) (*GuestResponse, error) {
	guest, err := h.registry.Get(ctx, input.ID)
	if err != nil {
		return nil, domainError(err)
	}
	return &GuestResponse{Body: *guest}, nil
}

type UpdateGuestRequest struct {
	ID   string `path:"id"`
	Body struct {
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
		Phone string `json:"phone,omitempty"`
	}
}

func (h *GuestHandler) HandleUpdate(ctx context.Context, input *UpdateGuestRequest) (*GuestResponse, error) {
	guest, err := h.registry.Update(ctx, input.ID, input.Body.Name, input.Body.Email, input.Body.Phone)
	if err != nil {
		return nil, domainError(err)
	}
	return &GuestResponse{Body: *guest}, nil
}

type PatchGuestRequest struct {
	ID   string         `path:"id"`
	Body map[string]any `doc:"Fields to merge; no validation is applied"`
}

// HandlePatch is the admin escape hatch: it merges whatever fields are
// given, including rsvpStatus and invitationSent, without the name
// uniqueness check Update enforces.
func (h *GuestHandler) HandlePatch(ctx context.Context, input *PatchGuestRequest) (*GuestResponse, error) {
	guest, err := h.registry.Patch(ctx, input.ID, input.Body)
	if err != nil {
		return nil, domainError(err)
	}
	return &GuestResponse{Body: *guest}, nil
}

type DeleteGuestRequest struct {
	ID string `path:"id"`
}

type DeleteGuestResponse struct {
	Body struct {
		Message string                 `json:"message"`
		Cascade registry.CascadeResult `json:"cascade"`
	}
}

func (h *GuestHandler) HandleDelete(ctx context.Context, input *DeleteGuestRequest) (*DeleteGuestResponse, error) {
	cascade, err := h.registry.Delete(ctx, input.ID)
	if err != nil {
		if cascade.GuestDeleted {
			// The primary is gone but a dependent delete failed. The
			// store is inconsistent and stays that way; report it.
			h.log.Error().Err(err).Str("guest_id", input.ID).Msg("cascade left dependents behind")
		}
		return nil, domainError(err)
	}
	res := &DeleteGuestResponse{}
	res.Body.Message = "Guest deleted"
	res.Body.Cascade = cascade
	return res, nil
}

type GuestQRRequest struct {
	ID string `path:"id"`
}

type GuestQRResponse struct {
	Body struct {
		Link     string `json:"link"`
		ImageURL string `json:"imageUrl"`
	}
}

// HandleQR returns the guest's personalized link plus the external
// QR-service URL that renders it as an image.
func (h *GuestHandler) HandleQR(ctx context.Context, input *GuestQRRequest) (*GuestQRResponse, error) {
	guest, err := h.registry.Get(ctx, input.ID)
	if err != nil {
		return nil, domainError(err)
	}
	res := &GuestQRResponse{}
	res.Body.Link = h.qr.InvitationLink(guest.ID)
	res.Body.ImageURL = h.qr.ImageURL(guest.ID)
	return res, nil
}
