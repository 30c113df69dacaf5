package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember is a player or staff profile.
type TeamMember struct {
	ID         uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Slug       string      `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	FullName   string      `gorm:"column:full_name;not null" json:"fullName"`
	JerseyNo   *int        `gorm:"column:jersey_no" json:"jerseyNo"`
	Position   *string     `gorm:"column:position" json:"position"`
	Team       string      `gorm:"column:team;not null" json:"team"`
	BioHTML    *string     `gorm:"column:bio_html" json:"bioHtml"`
	FunFact    *string     `gorm:"column:fun_fact" json:"funFact"`
	IsStaff    bool        `gorm:"column:is_staff;not null" json:"isStaff"`
	PortraitID *uuid.UUID  `gorm:"column:portrait_id;type:uuid" json:"portraitId"`
	Portrait   *MediaAsset `gorm:"foreignKey:PortraitID" json:"portrait,omitempty"`
	CreatedAt  time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (t *TeamMember) BeforeCreate(*gorm.DB) error {
	assignID(&t.ID)
	return nil
}
