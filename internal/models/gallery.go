package models

import (
	"time"
)

// GalleryImage is the metadata record for one uploaded photo. The bytes
// live in external object storage; BlobURL is the durable reference.
type GalleryImage struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Uploader     string    `json:"uploader"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Caption      string    `json:"caption,omitempty"`
	Visible      bool      `json:"visible"`
	BlobURL      string    `json:"blobUrl"`
}
