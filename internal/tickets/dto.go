package tickets

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
)

// EventView is the public shape of a ticket event.
type EventView struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Currency     string              `json:"currency"`
	SalesOpenAt  time.Time           `json:"salesOpenAt"`
	SalesCloseAt time.Time           `json:"salesCloseAt"`
	IsActive     bool                `json:"isActive"`
	Match        *models.Match       `json:"match"`
	Tiers        []models.TicketTier `json:"tiers"`
}

func toEventView(e models.TicketEvent) EventView {
	tiers := e.Tiers
	if tiers == nil {
		tiers = []models.TicketTier{}
	}
	return EventView{
		ID:           e.ID,
		Title:        e.Title,
		Currency:     e.Currency,
		SalesOpenAt:  e.SalesOpenAt,
		SalesCloseAt: e.SalesCloseAt,
		IsActive:     e.IsActive,
		Match:        e.Match,
		Tiers:        tiers,
	}
}

// TicketView is a ticket as shown to its owner.
type TicketView struct {
	ID        uuid.UUID           `json:"id"`
	Status    enums.TicketStatus  `json:"status"`
	Quantity  int                 `json:"quantity"`
	Total     int64               `json:"total"`
	Code      string              `json:"code"`
	QRDataURL *string             `json:"qrDataUrl"`
	Event     *models.TicketEvent `json:"event"`
	Tier      *models.TicketTier  `json:"tier"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toTicketView(t models.Ticket) TicketView {
	return TicketView{
		ID:        t.ID,
		Status:    t.Status,
		Quantity:  t.Quantity,
		Total:     t.Total,
		Code:      t.Code,
		QRDataURL: t.QRDataURL,
		Event:     t.Event,
		Tier:      t.Tier,
		CreatedAt: t.CreatedAt,
	}
}

// TierInput describes one tier of a new event.
type TierInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Price    int64  `json:"price" validate:"min=0"`
	Capacity int    `json:"capacity" validate:"min=1"`
}

// CreateEventInput is the admin payload for putting a match on sale.
type CreateEventInput struct {
	MatchID      uuid.UUID   `json:"matchId" validate:"required"`
	Title        string      `json:"title" validate:"required,min=2"`
	SalesOpenAt  time.Time   `json:"salesOpenAt" validate:"required"`
	SalesCloseAt time.Time   `json:"salesCloseAt" validate:"required"`
	Currency     string      `json:"currency" validate:"omitempty,min=3"`
	IsActive     *bool       `json:"isActive,omitempty"`
	Tiers        []TierInput `json:"tiers" validate:"required,min=1,dive"`
}
