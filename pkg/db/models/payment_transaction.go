package models

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentTransaction records one payment attempt against an order and,
// for ticket purchases, the reserved ticket.
type PaymentTransaction struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Provider  enums.PaymentProvider   `gorm:"column:provider;type:text;not null"`
	Amount    int64                   `gorm:"column:amount;not null"`
	Currency  string                  `gorm:"column:currency;not null"`
	Status    enums.TransactionStatus `gorm:"column:status;type:text;not null"`
	UserID    uuid.UUID               `gorm:"column:user_id;type:uuid;not null;index"`
	OrderID   *uuid.UUID              `gorm:"column:order_id;type:uuid"`
	TicketID  *uuid.UUID              `gorm:"column:ticket_id;type:uuid"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (t *PaymentTransaction) BeforeCreate(*gorm.DB) error {
	assignID(&t.ID)
	return nil
}
