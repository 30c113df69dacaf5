package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
)

// MediaAsset captures metadata for an object held in external storage. Path is
// relative to the public asset base URL.
type MediaAsset struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Type      enums.MediaType `gorm:"column:type;type:text;not null" json:"type"`
	Title     *string         `gorm:"column:title" json:"title"`
	Path      string          `gorm:"column:path;not null" json:"path"`
	MimeType  *string         `gorm:"column:mime_type" json:"mimeType"`
	Width     *int            `gorm:"column:width" json:"width"`
	Height    *int            `gorm:"column:height" json:"height"`
	SizeBytes *int64          `gorm:"column:size_bytes" json:"sizeBytes"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (m *MediaAsset) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)
	return nil
}
