package models

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketEvent puts a match on sale during [SalesOpenAt, SalesCloseAt].
type TicketEvent struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	MatchID      uuid.UUID    `gorm:"column:match_id;type:uuid;not null;uniqueIndex" json:"matchId"`
	Title        string       `gorm:"column:title;not null" json:"title"`
	Currency     string       `gorm:"column:currency;not null" json:"currency"`
	SalesOpenAt  time.Time    `gorm:"column:sales_open_at;not null" json:"salesOpenAt"`
	SalesCloseAt time.Time    `gorm:"column:sales_close_at;not null" json:"salesCloseAt"`
	IsActive     bool         `gorm:"column:is_active;not null" json:"isActive"`
	Tiers        []TicketTier `gorm:"foreignKey:EventID" json:"tiers,omitempty"`
	Match        *Match       `gorm:"foreignKey:MatchID" json:"match,omitempty"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (e *TicketEvent) BeforeCreate(*gorm.DB) error {
	assignID(&e.ID)
	return nil
}

// SalesOpen reports whether now falls inside the inclusive sales window.
func (e TicketEvent) SalesOpen(now time.Time) bool {
	return !now.Before(e.SalesOpenAt) && !now.After(e.SalesCloseAt)
}

// TicketTier is a priced, capacity limited class of seats. Sold never exceeds Capacity.
type TicketTier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"column:event_id;type:uuid;not null;index" json:"eventId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Price     int64     `gorm:"column:price;not null" json:"price"`
	Capacity  int       `gorm:"column:capacity;not null" json:"capacity"`
	Sold      int       `gorm:"column:sold;not null" json:"sold"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (t *TicketTier) BeforeCreate(*gorm.DB) error {
	assignID(&t.ID)
	return nil
}

// Ticket is a user's seat purchase. QRDataURL is set once the ticket is paid.
type Ticket struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID          `gorm:"column:user_id;type:uuid;not null;index"`
	EventID   uuid.UUID          `gorm:"column:event_id;type:uuid;not null"`
	TierID    uuid.UUID          `gorm:"column:tier_id;type:uuid;not null"`
	Quantity  int                `gorm:"column:quantity;not null"`
	Total     int64              `gorm:"column:total;not null"`
	Status    enums.TicketStatus `gorm:"column:status;type:text;not null"`
	Code      string             `gorm:"column:code;not null;uniqueIndex"`
	QRDataURL *string            `gorm:"column:qr_data_url"`
	Event     *TicketEvent       `gorm:"foreignKey:EventID"`
	Tier      *TicketTier        `gorm:"foreignKey:TierID"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (t *Ticket) BeforeCreate(*gorm.DB) error {
	assignID(&t.ID)
	return nil
}
