package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/gate"
	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/notifier"
	"github.com/delacruz-wedding/wedding-api/internal/registry"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

const maxUploadMemory = 32 << 20

type GalleryHandler struct {
	gallery  *registry.Gallery
	settings store.Document[models.UploadSettings]
	notifier notifier.Notifier
	log      zerolog.Logger
}

func NewGalleryHandler(gallery *registry.Gallery, settings store.Document[models.UploadSettings], n notifier.Notifier, log zerolog.Logger) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, settings: settings, notifier: n, log: log}
}

type ListGalleryResponse struct {
	Body struct {
		Images []models.GalleryImage `json:"images"`
	}
}

// HandleListPublic returns visible images, newest first.
func (h *GalleryHandler) HandleListPublic(ctx context.Context, input *struct{}) (*ListGalleryResponse, error) {
	images, err := h.gallery.Visible(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list gallery")
		return nil, domainError(err)
	}
	res := &ListGalleryResponse{}
	res.Body.Images = images
	return res, nil
}

// HandlePreview returns the home-page preview selection.
func (h *GalleryHandler) HandlePreview(ctx context.Context, input *struct{}) (*ListGalleryResponse, error) {
	images, err := h.gallery.Preview(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to compute gallery preview")
		return nil, domainError(err)
	}
	res := &ListGalleryResponse{}
	res.Body.Images = images
	return res, nil
}

type UploadStatusResponse struct {
	Body struct {
		Open      bool   `json:"open"`
		Message   string `json:"message,omitempty"`
		MaxPhotos int    `json:"maxPhotos"`
	}
}

func (h *GalleryHandler) HandleUploadStatus(ctx context.Context, input *struct{}) (*UploadStatusResponse, error) {
	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load upload settings")
		return nil, domainError(err)
	}
	decision := gate.Upload(settings, time.Now())
	res := &UploadStatusResponse{}
	res.Body.Open = decision.Open
	res.Body.Message = decision.Message
	res.Body.MaxPhotos = clampMaxPhotos(settings.MaxPhotos)
	return res, nil
}

// HandleUpload accepts a multipart batch of photos. It stays a plain
// chi handler because huma's typed model doesn't buy anything for
// streaming multipart bodies.
func (h *GalleryHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load upload settings")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Something went wrong, please try again"})
		return
	}
	if decision := gate.Upload(settings, time.Now()); !decision.Open {
		writeJSON(w, http.StatusForbidden, map[string]any{"error": decision.Message})
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid upload request"})
		return
	}

	uploader := r.FormValue("uploader")
	caption := r.FormValue("caption")
	headers := r.MultipartForm.File["photos"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["files"]
	}

	if max := clampMaxPhotos(settings.MaxPhotos); len(headers) > max {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "Too many photos in one upload"})
		return
	}

	var files []registry.UploadFile
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			h.log.Warn().Err(err).Str("file", header.Filename).Msg("failed to open uploaded file, skipping")
			continue
		}
		defer file.Close()
		files = append(files, registry.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	count, err := h.gallery.RecordUpload(ctx, uploader, caption, files)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, registry.ErrInvalidRequest):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, registry.ErrUploadFailed):
			status = http.StatusBadGateway
		default:
			h.log.Error().Err(err).Msg("gallery upload failed")
		}
		writeJSON(w, status, map[string]any{"error": err.Error()})
		return
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyUpload(uploader, count); err != nil {
			h.log.Warn().Err(err).Msg("upload notification failed")
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Photos uploaded",
		"count":   count,
	})
}

// HandleListAdmin returns every image, hidden ones included, newest
// first.
func (h *GalleryHandler) HandleListAdmin(ctx context.Context, input *struct{}) (*ListGalleryResponse, error) {
	images, err := h.gallery.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list gallery")
		return nil, domainError(err)
	}
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].UploadedAt.After(images[j].UploadedAt)
	})
	res := &ListGalleryResponse{}
	res.Body.Images = images
	return res, nil
}

type SetVisibilityRequest struct {
	ID   string `path:"id"`
	Body struct {
		Visible bool `json:"visible"`
	}
}

type GalleryImageResponse struct {
	Body models.GalleryImage
}

func (h *GalleryHandler) HandleSetVisibility(ctx context.Context, input *SetVisibilityRequest) (*GalleryImageResponse, error) {
	image, err := h.gallery.SetVisibility(ctx, input.ID, input.Body.Visible)
	if err != nil {
		return nil, domainError(err)
	}
	return &GalleryImageResponse{Body: *image}, nil
}

type DeleteImageRequest struct {
	ID string `path:"id"`
}

func (h *GalleryHandler) HandleDelete(ctx context.Context, input *DeleteImageRequest) (*MessageResponse, error) {
	if err := h.gallery.Delete(ctx, input.ID); err != nil {
		return nil, domainError(err)
	}
	res := &MessageResponse{}
	res.Body.Message = "Image deleted"
	return res, nil
}

func clampMaxPhotos(max int) int {
	if max < 1 {
		return 1
	}
	if max > 20 {
		return 20
	}
	return max
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
