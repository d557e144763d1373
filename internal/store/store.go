package store

import (
	"context"
	"errors"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

// ErrNotFound is returned by Get and Delete when no record has the given
// id. Deleting an already-deleted record reports it again rather than
// silently succeeding.
var ErrNotFound = errors.New("record not found")

// GuestStore holds primary guest records. Put inserts or replaces by id.
type GuestStore interface {
	List(ctx context.Context) ([]models.Guest, error)
	Get(ctx context.Context, id string) (*models.Guest, error)
	Put(ctx context.Context, guest *models.Guest) error
	Delete(ctx context.Context, id string) error
}

// AdditionalGuestStore holds dependents of primary guests.
type AdditionalGuestStore interface {
	List(ctx context.Context) ([]models.AdditionalGuest, error)
	ListByPrimary(ctx context.Context, primaryGuestID string) ([]models.AdditionalGuest, error)
	Get(ctx context.Context, id string) (*models.AdditionalGuest, error)
	Put(ctx context.Context, guest *models.AdditionalGuest) error
	Delete(ctx context.Context, id string) error
	// DeleteByPrimary removes every record owned by the given primary
	// guest and reports how many were removed. Zero is not an error.
	DeleteByPrimary(ctx context.Context, primaryGuestID string) (int, error)
}

// RSVPStore holds at most one response per primary guest.
type RSVPStore interface {
	List(ctx context.Context) ([]models.RSVPResponse, error)
	GetByGuest(ctx context.Context, guestID string) (*models.RSVPResponse, error)
	Put(ctx context.Context, response *models.RSVPResponse) error
	// DeleteByGuest removes the guest's response if one exists and
	// reports whether anything was removed.
	DeleteByGuest(ctx context.Context, guestID string) (bool, error)
}

// GalleryStore holds uploaded-image metadata.
type GalleryStore interface {
	List(ctx context.Context) ([]models.GalleryImage, error)
	Get(ctx context.Context, id string) (*models.GalleryImage, error)
	Put(ctx context.Context, image *models.GalleryImage) error
	Delete(ctx context.Context, id string) error
}

// Document is a singleton settings document. Get always reflects the
// latest Put; implementations must not cache. A missing document reads
// as the configured default.
type Document[T any] interface {
	Get(ctx context.Context) (T, error)
	Put(ctx context.Context, value T) error
}

// Stores bundles every collection and settings document behind one
// handle so the same wiring works for the SQL and JSON-file backends.
type Stores struct {
	Guests           GuestStore
	AdditionalGuests AdditionalGuestStore
	RSVPs            RSVPStore
	Gallery          GalleryStore
	Preview          Document[models.PreviewSettings]
	RSVPSettings     Document[models.RSVPSettings]
	UploadSettings   Document[models.UploadSettings]
}
