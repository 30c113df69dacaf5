package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sponsor struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"column:name;not null" json:"name"`
	Tier      *string     `gorm:"column:tier" json:"tier"`
	Website   *string     `gorm:"column:website" json:"website"`
	LogoID    *uuid.UUID  `gorm:"column:logo_id;type:uuid" json:"logoId"`
	Logo      *MediaAsset `gorm:"foreignKey:LogoID" json:"logo,omitempty"`
	Sort      int         `gorm:"column:sort;not null" json:"sort"`
	IsActive  bool        `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (s *Sponsor) BeforeCreate(*gorm.DB) error {
	assignID(&s.ID)
	return nil
}
