package registry

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/blob"
	"github.com/delacruz-wedding/wedding-api/internal/models"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// Gallery owns uploaded-image metadata. Bytes live in object storage;
// the metadata collection is authoritative and storage cleanup is
// advisory.
type Gallery struct {
	images  store.GalleryStore
	preview store.Document[models.PreviewSettings]
	blob    blob.Storage
	log     zerolog.Logger
	now     func() time.Time
}

func NewGallery(images store.GalleryStore, preview store.Document[models.PreviewSettings], storage blob.Storage, log zerolog.Logger) *Gallery {
	return &Gallery{images: images, preview: preview, blob: storage, log: log, now: time.Now}
}

// UploadFile is one file from a multipart upload.
type UploadFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// RecordUpload stores each image file and appends a metadata record per
// success. Non-image files and individual storage failures are skipped;
// partial success is success. Only a batch with zero stored files fails.
func (g *Gallery) RecordUpload(ctx context.Context, uploader, caption string, files []UploadFile) (int, error) {
	uploader = strings.TrimSpace(uploader)
	if uploader == "" || len(files) == 0 {
		return 0, ErrInvalidRequest
	}

	stored := 0
	for _, file := range files {
		if !strings.HasPrefix(file.ContentType, "image/") {
			g.log.Debug().Str("file", file.Name).Str("content_type", file.ContentType).Msg("skipping non-image upload")
			continue
		}
		uploadedAt := g.now().UTC()
		filename := uploadFilename(uploader, uploadedAt, file.Name)
		url, err := g.blob.Store(ctx, "gallery/"+filename, file.ContentType, file.Body)
		if err != nil {
			g.log.Warn().Err(err).Str("file", file.Name).Msg("object storage rejected upload, skipping file")
			continue
		}
		image := &models.GalleryImage{
			ID:           uuid.NewString(),
			Filename:     filename,
			OriginalName: file.Name,
			Uploader:     uploader,
			UploadedAt:   uploadedAt,
			Caption:      caption,
			Visible:      true,
			BlobURL:      url,
		}
		if err := g.images.Put(ctx, image); err != nil {
			g.log.Warn().Err(err).Str("file", file.Name).Msg("failed to record gallery image, skipping file")
			continue
		}
		stored++
	}

	if stored == 0 {
		return 0, ErrUploadFailed
	}
	return stored, nil
}

// SetVisibility toggles public display without touching the record or
// the stored bytes.
func (g *Gallery) SetVisibility(ctx context.Context, id string, visible bool) (*models.GalleryImage, error) {
	image, err := g.images.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	image.Visible = visible
	if err := g.images.Put(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete removes the metadata record, then asks object storage to drop
// the bytes. A storage failure is logged and does not undo the delete.
func (g *Gallery) Delete(ctx context.Context, id string) error {
	image, err := g.images.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := g.images.Delete(ctx, id); err != nil {
		return err
	}
	if err := g.blob.Delete(ctx, image.BlobURL); err != nil {
		g.log.Warn().Err(err).Str("url", image.BlobURL).Msg("object storage delete failed, metadata already removed")
	}
	return nil
}

// List returns every image in storage order; callers sort and filter.
func (g *Gallery) List(ctx context.Context) ([]models.GalleryImage, error) {
	return g.images.List(ctx)
}

// Visible returns publicly displayable images, newest first.
func (g *Gallery) Visible(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := g.images.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]models.GalleryImage, 0, len(images))
	for _, img := range images {
		if img.Visible {
			visible = append(visible, img)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].UploadedAt.After(visible[j].UploadedAt)
	})
	return visible, nil
}

// Preview computes the home-page preview. With useLatest the result is
// the count most recently uploaded visible images, newest first;
// otherwise it is the admin's explicit selection, in selection order,
// minus anything hidden since.
func (g *Gallery) Preview(ctx context.Context) ([]models.GalleryImage, error) {
	settings, err := g.preview.Get(ctx)
	if err != nil {
		return nil, err
	}
	count := clampCount(settings.Count)

	if settings.UseLatest {
		visible, err := g.Visible(ctx)
		if err != nil {
			return nil, err
		}
		if len(visible) > count {
			visible = visible[:count]
		}
		return visible, nil
	}

	images, err := g.images.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.GalleryImage, len(images))
	for _, img := range images {
		if img.Visible {
			byID[img.ID] = img
		}
	}
	selection := make([]models.GalleryImage, 0, len(settings.SelectedImages))
	for _, id := range settings.SelectedImages {
		if img, ok := byID[id]; ok {
			selection = append(selection, img)
		}
	}
	return selection, nil
}

func clampCount(count int) int {
	if count < 1 {
		return 1
	}
	if count > 50 {
		return 50
	}
	return count
}

// uploadFilename derives a deterministic object name from the uploader
// and the upload instant, millisecond granularity keeping concurrent
// uploads from colliding.
func uploadFilename(uploader string, uploadedAt time.Time, originalName string) string {
	slug := strings.ToLower(uploader)
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "guest"
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	stamp := fmt.Sprintf("%s-%03d", uploadedAt.Format("20060102-150405"), uploadedAt.Nanosecond()/1e6)
	return fmt.Sprintf("%s-%s%s", slug, stamp, ext)
}
