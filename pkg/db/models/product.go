package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a club shop listing. Kit products carry a KitType (HOME, AWAY, ...).
type Product struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Slug        string      `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Title       string      `gorm:"column:title;not null" json:"title"`
	Description *string     `gorm:"column:description" json:"description"`
	Price       int64       `gorm:"column:price;not null" json:"price"`
	Currency    string      `gorm:"column:currency;not null" json:"currency"`
	Category    *string     `gorm:"column:category" json:"category"`
	KitType     *string     `gorm:"column:kit_type" json:"kitType"`
	IsActive    bool        `gorm:"column:is_active;not null" json:"isActive"`
	HeroMediaID *uuid.UUID  `gorm:"column:hero_media_id;type:uuid" json:"heroMediaId"`
	HeroMedia   *MediaAsset `gorm:"foreignKey:HeroMediaID" json:"heroMedia,omitempty"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}
