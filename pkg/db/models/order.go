package models

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order is a purchase of a membership, shop items or tickets. Metadata holds the
// encoded type specific variant; see internal/orders for the typed form.
type Order struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	Type      enums.OrderType   `gorm:"column:type;type:text;not null" json:"type"`
	Currency  string            `gorm:"column:currency;not null" json:"currency"`
	Total     int64             `gorm:"column:total;not null" json:"total"`
	Status    enums.OrderStatus `gorm:"column:status;type:text;not null" json:"status"`
	Metadata  datatypes.JSON    `gorm:"column:metadata" json:"-"`
	Items     []OrderItem       `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	assignID(&o.ID)
	return nil
}

// OrderItem snapshots a product price at checkout time.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null" json:"productId"`
	Qty       int       `gorm:"column:qty;not null" json:"qty"`
	UnitPrice int64     `gorm:"column:unit_price;not null" json:"unitPrice"`
	LineTotal int64     `gorm:"column:line_total;not null" json:"lineTotal"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	assignID(&i.ID)
	return nil
}
