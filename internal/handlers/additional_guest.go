package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/registry"
)

// AdditionalGuestHandler is the admin surface over dependents.
type AdditionalGuestHandler struct {
	registry *registry.AdditionalGuestRegistry
	log      zerolog.Logger
}

func NewAdditionalGuestHandler(reg *registry.AdditionalGuestRegistry, log zerolog.Logger) *AdditionalGuestHandler {
	return &AdditionalGuestHandler{registry: reg, log: log}
}

type ListAdditionalGuestsRequest struct {
	PrimaryGuestID string `query:"primaryGuestId" doc:"Filter to one primary guest"`
}

type ListAdditionalGuestsResponse struct {
	Body struct {
		AdditionalGuests []models.AdditionalGuest `json:"additionalGuests"`
	}
}

func (h *AdditionalGuestHandler) HandleList(ctx context.Context, input *ListAdditionalGuestsRequest) (*ListAdditionalGuestsResponse, error) {
	guests, err := h.registry.ListByPrimary(ctx, input.PrimaryGuestID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list additional guests")
		return nil, domainError(err)
	}
	res := &ListAdditionalGuestsResponse{}
	res.Body.AdditionalGuests = guests
	return res, nil
}

type CreateAdditionalGuestRequest struct {
	Body struct {
		PrimaryGuestID string `json:"primaryGuestId"`
		Name           string `json:"name"`
		Email          string `json:"email,omitempty"`
		Phone          string `json:"phone,omitempty"`
	}
}

type AdditionalGuestResponse struct {
	Body models.AdditionalGuest
}

func (h *AdditionalGuestHandler) HandleCreate(ctx context.Context, input *CreateAdditionalGuestRequest) (*AdditionalGuestResponse, error) {
	guest, err := h.registry.Create(ctx, input.Body.PrimaryGuestID, input.Body.Name, input.Body.Email, input.Body.Phone)
	if err != nil {
		return nil, domainError(err)
	}
	return &AdditionalGuestResponse{Body: *guest}, nil
}

type UpdateAdditionalGuestRequest struct {
	ID   string `path:"id"`
	Body struct {
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
		Phone string `json:"phone,omitempty"`
	}
}

func (h *AdditionalGuestHandler) HandleUpdate(ctx context.Context, input *UpdateAdditionalGuestRequest) (*AdditionalGuestResponse, error) {
	guest, err := h.registry.Update(ctx, input.ID, input.Body.Name, input.Body.Email, input.Body.Phone)
	if err != nil {
		return nil, domainError(err)
	}
	return &AdditionalGuestResponse{Body: *guest}, nil
}

type DeleteAdditionalGuestRequest struct {
	ID string `path:"id"`
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AdditionalGuestHandler) HandleDelete(ctx context.Context, input *DeleteAdditionalGuestRequest) (*MessageResponse, error) {
	if err := h.registry.Delete(ctx, input.ID); err != nil {
		return nil, domainError(err)
	}
	res := &MessageResponse{}
	res.Body.Message = "Additional guest deleted"
	return res, nil
}
