package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsPost is an article. Drafts have a nil PublishedAt and are hidden from public reads.
type NewsPost struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Slug        string      `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Title       string      `gorm:"column:title;not null" json:"title"`
	Excerpt     *string     `gorm:"column:excerpt" json:"excerpt"`
	ContentHTML string      `gorm:"column:content_html;not null" json:"contentHtml"`
	IsFeatured  bool        `gorm:"column:is_featured;not null" json:"isFeatured"`
	HeroMediaID *uuid.UUID  `gorm:"column:hero_media_id;type:uuid" json:"heroMediaId"`
	HeroMedia   *MediaAsset `gorm:"foreignKey:HeroMediaID" json:"heroMedia,omitempty"`
	PublishedAt *time.Time  `gorm:"column:published_at;index" json:"publishedAt"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (n *NewsPost) BeforeCreate(*gorm.DB) error {
	assignID(&n.ID)
	return nil
}
