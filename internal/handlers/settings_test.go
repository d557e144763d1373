package handlers

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

func TestSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	handler := NewSettingsHandler(env.stores.Preview, env.stores.RSVPSettings, env.stores.UploadSettings, zerolog.Nop())
	ctx := context.Background()

	t.Run("PreviewCountClamped", func(t *testing.T) {
		input := &PutPreviewSettingsRequest{Body: models.PreviewSettings{Count: 500, UseLatest: true}}
		res, err := handler.HandlePutPreview(ctx, input)
		if err != nil {
			t.Fatalf("put failed: %v", err)
		}
		if res.Body.Count != 50 {
			t.Errorf("expected count clamped to 50, got %d", res.Body.Count)
		}

		got, err := handler.HandleGetPreview(ctx, nil)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Body.Count != 50 {
			t.Errorf("clamped value must persist, got %d", got.Body.Count)
		}
	})

	t.Run("RSVPDeadlineStoredVerbatim", func(t *testing.T) {
		input := &PutRSVPSettingsRequest{Body: models.RSVPSettings{Enabled: true, Deadline: "2026-06-01T18:00"}}
		if _, err := handler.HandlePutRSVP(ctx, input); err != nil {
			t.Fatalf("put failed: %v", err)
		}
		got, err := handler.HandleGetRSVP(ctx, nil)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Body.Deadline != "2026-06-01T18:00" {
			t.Errorf("deadline altered on round trip: %q", got.Body.Deadline)
		}
	})

	t.Run("UploadMaxPhotosClamped", func(t *testing.T) {
		input := &PutUploadSettingsRequest{Body: models.UploadSettings{Enabled: true, MaxPhotos: 0}}
		res, err := handler.HandlePutUpload(ctx, input)
		if err != nil {
			t.Fatalf("put failed: %v", err)
		}
		if res.Body.MaxPhotos != 1 {
			t.Errorf("expected max photos clamped to 1, got %d", res.Body.MaxPhotos)
		}
	})
}
