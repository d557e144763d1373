package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

// NewJSONFile wires every store onto flat JSON files under dir, one file
// per collection or settings document. Every mutation rewrites the whole
// file; concurrent writers are last-write-wins at file granularity. The
// mutex only keeps a single process from corrupting its own writes.
func NewJSONFile(dir string) (*Stores, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Stores{
		Guests:           &jsonGuests{c: newCollection[models.Guest](dir, "guests.json")},
		AdditionalGuests: &jsonAdditionalGuests{c: newCollection[models.AdditionalGuest](dir, "additional-guests.json")},
		RSVPs:            &jsonRSVPs{c: newCollection[models.RSVPResponse](dir, "rsvps.json")},
		Gallery:          &jsonGallery{c: newCollection[models.GalleryImage](dir, "gallery.json")},
		Preview:          &jsonDocument[models.PreviewSettings]{path: filepath.Join(dir, "preview-settings.json"), def: models.DefaultPreviewSettings()},
		RSVPSettings:     &jsonDocument[models.RSVPSettings]{path: filepath.Join(dir, "rsvp-settings.json"), def: models.DefaultRSVPSettings()},
		UploadSettings:   &jsonDocument[models.UploadSettings]{path: filepath.Join(dir, "upload-settings.json"), def: models.DefaultUploadSettings()},
	}, nil
}

type collection[T any] struct {
	mu   sync.Mutex
	path string
}

func newCollection[T any](dir, name string) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, name)}
}

func (c *collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}
	return items, nil
}

func (c *collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// upsert replaces the first item matched by sameID or appends.
func (c *collection[T]) upsert(item T, sameID func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	for i := range items {
		if sameID(items[i]) {
			items[i] = item
			return c.save(items)
		}
	}
	return c.save(append(items, item))
}

// remove deletes every matched item and reports how many went away.
func (c *collection[T]) remove(match func(T) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return 0, err
	}
	kept := items[:0]
	removed := 0
	for _, item := range items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, c.save(kept)
}

type jsonGuests struct {
	c *collection[models.Guest]
}

func (s *jsonGuests) List(ctx context.Context) ([]models.Guest, error) {
	return s.c.load()
}

func (s *jsonGuests) Get(ctx context.Context, id string) (*models.Guest, error) {
	guests, err := s.c.load()
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].ID == id {
			return &guests[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonGuests) Put(ctx context.Context, guest *models.Guest) error {
	return s.c.upsert(*guest, func(g models.Guest) bool { return g.ID == guest.ID })
}

func (s *jsonGuests) Delete(ctx context.Context, id string) error {
	removed, err := s.c.remove(func(g models.Guest) bool { return g.ID == id })
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

type jsonAdditionalGuests struct {
	c *collection[models.AdditionalGuest]
}

func (s *jsonAdditionalGuests) List(ctx context.Context) ([]models.AdditionalGuest, error) {
	return s.c.load()
}

func (s *jsonAdditionalGuests) ListByPrimary(ctx context.Context, primaryGuestID string) ([]models.AdditionalGuest, error) {
	guests, err := s.c.load()
	if err != nil {
		return nil, err
	}
	var filtered []models.AdditionalGuest
	for _, g := range guests {
		if g.PrimaryGuestID == primaryGuestID {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func (s *jsonAdditionalGuests) Get(ctx context.Context, id string) (*models.AdditionalGuest, error) {
	guests, err := s.c.load()
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].ID == id {
			return &guests[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonAdditionalGuests) Put(ctx context.Context, guest *models.AdditionalGuest) error {
	return s.c.upsert(*guest, func(g models.AdditionalGuest) bool { return g.ID == guest.ID })
}

func (s *jsonAdditionalGuests) Delete(ctx context.Context, id string) error {
	removed, err := s.c.remove(func(g models.AdditionalGuest) bool { return g.ID == id })
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *jsonAdditionalGuests) DeleteByPrimary(ctx context.Context, primaryGuestID string) (int, error) {
	return s.c.remove(func(g models.AdditionalGuest) bool { return g.PrimaryGuestID == primaryGuestID })
}

type jsonRSVPs struct {
	c *collection[models.RSVPResponse]
}

func (s *jsonRSVPs) List(ctx context.Context) ([]models.RSVPResponse, error) {
	return s.c.load()
}

func (s *jsonRSVPs) GetByGuest(ctx context.Context, guestID string) (*models.RSVPResponse, error) {
	responses, err := s.c.load()
	if err != nil {
		return nil, err
	}
	for i := range responses {
		if responses[i].GuestID == guestID {
			return &responses[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonRSVPs) Put(ctx context.Context, response *models.RSVPResponse) error {
	return s.c.upsert(*response, func(r models.RSVPResponse) bool { return r.ID == response.ID })
}

func (s *jsonRSVPs) DeleteByGuest(ctx context.Context, guestID string) (bool, error) {
	removed, err := s.c.remove(func(r models.RSVPResponse) bool { return r.GuestID == guestID })
	return removed > 0, err
}

type jsonGallery struct {
	c *collection[models.GalleryImage]
}

func (s *jsonGallery) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.c.load()
}

func (s *jsonGallery) Get(ctx context.Context, id string) (*models.GalleryImage, error) {
	images, err := s.c.load()
	if err != nil {
		return nil, err
	}
	for i := range images {
		if images[i].ID == id {
			return &images[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *jsonGallery) Put(ctx context.Context, image *models.GalleryImage) error {
	return s.c.upsert(*image, func(img models.GalleryImage) bool { return img.ID == image.ID })
}

func (s *jsonGallery) Delete(ctx context.Context, id string) error {
	removed, err := s.c.remove(func(img models.GalleryImage) bool { return img.ID == id })
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

type jsonDocument[T any] struct {
	mu   sync.Mutex
	path string
	def  T
}

func (d *jsonDocument[T]) Get(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := os.ReadFile(d.path)
	if os.IsNotExist(err) {
		return d.def, nil
	}
	if err != nil {
		return d.def, err
	}
	value := d.def
	if err := json.Unmarshal(data, &value); err != nil {
		return d.def, fmt.Errorf("decode %s: %w", filepath.Base(d.path), err)
	}
	return value, nil
}

func (d *jsonDocument[T]) Put(ctx context.Context, value T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0o644)
}
