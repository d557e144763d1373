package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

// settingsRow backs every singleton settings document: one row per
// document name, payload stored as JSON.
type settingsRow struct {
	Name string `gorm:"primaryKey"`
	Data []byte
}

func (settingsRow) TableName() string { return "settings" }

// NewGorm wires every store onto a gorm connection (sqlite or a hosted
// SQL database, the DSN decides) and migrates the schema.
func NewGorm(db *gorm.DB) (*Stores, error) {
	err := db.AutoMigrate(
		&models.Guest{},
		&models.AdditionalGuest{},
		&models.RSVPResponse{},
		&models.GalleryImage{},
		&settingsRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Stores{
		Guests:           &gormGuests{db: db},
		AdditionalGuests: &gormAdditionalGuests{db: db},
		RSVPs:            &gormRSVPs{db: db},
		Gallery:          &gormGallery{db: db},
		Preview:          &gormDocument[models.PreviewSettings]{db: db, name: "preview", def: models.DefaultPreviewSettings()},
		RSVPSettings:     &gormDocument[models.RSVPSettings]{db: db, name: "rsvp", def: models.DefaultRSVPSettings()},
		UploadSettings:   &gormDocument[models.UploadSettings]{db: db, name: "upload", def: models.DefaultUploadSettings()},
	}, nil
}

type gormGuests struct {
	db *gorm.DB
}

func (s *gormGuests) List(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.db.WithContext(ctx).Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *gormGuests) Get(ctx context.Context, id string) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.WithContext(ctx).First(&guest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (s *gormGuests) Put(ctx context.Context, guest *models.Guest) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(guest).Error
}

func (s *gormGuests) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Guest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormAdditionalGuests struct {
	db *gorm.DB
}

func (s *gormAdditionalGuests) List(ctx context.Context) ([]models.AdditionalGuest, error) {
	var guests []models.AdditionalGuest
	if err := s.db.WithContext(ctx).Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *gormAdditionalGuests) ListByPrimary(ctx context.Context, primaryGuestID string) ([]models.AdditionalGuest, error) {
	var guests []models.AdditionalGuest
	if err := s.db.WithContext(ctx).Where("primary_guest_id = ?", primaryGuestID).Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *gormAdditionalGuests) Get(ctx context.Context, id string) (*models.AdditionalGuest, error) {
	var guest models.AdditionalGuest
	if err := s.db.WithContext(ctx).First(&guest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (s *gormAdditionalGuests) Put(ctx context.Context, guest *models.AdditionalGuest) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(guest).Error
}

func (s *gormAdditionalGuests) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.AdditionalGuest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormAdditionalGuests) DeleteByPrimary(ctx context.Context, primaryGuestID string) (int, error) {
	res := s.db.WithContext(ctx).Delete(&models.AdditionalGuest{}, "primary_guest_id = ?", primaryGuestID)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

type gormRSVPs struct {
	db *gorm.DB
}

func (s *gormRSVPs) List(ctx context.Context) ([]models.RSVPResponse, error) {
	var responses []models.RSVPResponse
	if err := s.db.WithContext(ctx).Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *gormRSVPs) GetByGuest(ctx context.Context, guestID string) (*models.RSVPResponse, error) {
	var response models.RSVPResponse
	if err := s.db.WithContext(ctx).First(&response, "guest_id = ?", guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &response, nil
}

func (s *gormRSVPs) Put(ctx context.Context, response *models.RSVPResponse) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(response).Error
}

func (s *gormRSVPs) DeleteByGuest(ctx context.Context, guestID string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.RSVPResponse{}, "guest_id = ?", guestID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type gormGallery struct {
	db *gorm.DB
}

func (s *gormGallery) List(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (s *gormGallery) Get(ctx context.Context, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (s *gormGallery) Put(ctx context.Context, image *models.GalleryImage) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(image).Error
}

func (s *gormGallery) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.GalleryImage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormDocument[T any] struct {
	db   *gorm.DB
	name string
	def  T
}

func (d *gormDocument[T]) Get(ctx context.Context) (T, error) {
	var row settingsRow
	err := d.db.WithContext(ctx).First(&row, "name = ?", d.name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return d.def, nil
	}
	if err != nil {
		return d.def, err
	}
	value := d.def
	if err := json.Unmarshal(row.Data, &value); err != nil {
		return d.def, fmt.Errorf("decode %s settings: %w", d.name, err)
	}
	return value, nil
}

func (d *gormDocument[T]) Put(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s settings: %w", d.name, err)
	}
	row := settingsRow{Name: d.name, Data: data}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}
