package models

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a supporter or staff account.
type User struct {
	ID              uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Email           string                 `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash    string                 `gorm:"column:password_hash;not null"`
	Name            *string                `gorm:"column:name"`
	Role            enums.UserRole         `gorm:"column:role;type:text;not null"`
	Membership      enums.MembershipStatus `gorm:"column:membership;type:text;not null"`
	MembershipUntil *time.Time             `gorm:"column:membership_until"`
	CreatedAt       time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	assignID(&u.ID)
	return nil
}
