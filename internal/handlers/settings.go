package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// SettingsHandler exposes the three singleton settings documents to the
// admin console. Reads always reflect the latest write; nothing is
// cached between requests.
type SettingsHandler struct {
	preview store.Document[models.PreviewSettings]
	rsvp    store.Document[models.RSVPSettings]
	upload  store.Document[models.UploadSettings]
	log     zerolog.Logger
}

func NewSettingsHandler(preview store.Document[models.PreviewSettings], rsvp store.Document[models.RSVPSettings], upload store.Document[models.UploadSettings], log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{preview: preview, rsvp: rsvp, upload: upload, log: log}
}

type PreviewSettingsResponse struct {
	Body models.PreviewSettings
}

func (h *SettingsHandler) HandleGetPreview(ctx context.Context, input *struct{}) (*PreviewSettingsResponse, error) {
	settings, err := h.preview.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load preview settings")
		return nil, domainError(err)
	}
	return &PreviewSettingsResponse{Body: settings}, nil
}

type PutPreviewSettingsRequest struct {
	Body models.PreviewSettings
}

func (h *SettingsHandler) HandlePutPreview(ctx context.Context, input *PutPreviewSettingsRequest) (*PreviewSettingsResponse, error) {
	settings := input.Body
	settings.Count = clamp(settings.Count, 1, 50)
	if err := h.preview.Put(ctx, settings); err != nil {
		h.log.Error().Err(err).Msg("failed to save preview settings")
		return nil, domainError(err)
	}
	return &PreviewSettingsResponse{Body: settings}, nil
}

type RSVPSettingsResponse struct {
	Body models.RSVPSettings
}

func (h *SettingsHandler) HandleGetRSVP(ctx context.Context, input *struct{}) (*RSVPSettingsResponse, error) {
	settings, err := h.rsvp.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load rsvp settings")
		return nil, domainError(err)
	}
	return &RSVPSettingsResponse{Body: settings}, nil
}

type PutRSVPSettingsRequest struct {
	Body models.RSVPSettings
}

func (h *SettingsHandler) HandlePutRSVP(ctx context.Context, input *PutRSVPSettingsRequest) (*RSVPSettingsResponse, error) {
	if err := h.rsvp.Put(ctx, input.Body); err != nil {
		h.log.Error().Err(err).Msg("failed to save rsvp settings")
		return nil, domainError(err)
	}
	return &RSVPSettingsResponse{Body: input.Body}, nil
}

type UploadSettingsResponse struct {
	Body models.UploadSettings
}

func (h *SettingsHandler) HandleGetUpload(ctx context.Context, input *struct{}) (*UploadSettingsResponse, error) {
	settings, err := h.upload.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load upload settings")
		return nil, domainError(err)
	}
	return &UploadSettingsResponse{Body: settings}, nil
}

type PutUploadSettingsRequest struct {
	Body models.UploadSettings
}

func (h *SettingsHandler) HandlePutUpload(ctx context.Context, input *PutUploadSettingsRequest) (*UploadSettingsResponse, error) {
	settings := input.Body
	settings.MaxPhotos = clamp(settings.MaxPhotos, 1, 20)
	if err := h.upload.Put(ctx, settings); err != nil {
		h.log.Error().Err(err).Msg("failed to save upload settings")
		return nil, domainError(err)
	}
	return &UploadSettingsResponse{Body: settings}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
