package orders

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
)

// OrderView is the caller facing shape of an order with its line items.
type OrderView struct {
	ID        uuid.UUID         `json:"id"`
	Type      enums.OrderType   `json:"type"`
	Currency  string            `json:"currency"`
	Total     int64             `json:"total"`
	Status    enums.OrderStatus `json:"status"`
	Items     []ItemView        `json:"items"`
	CreatedAt time.Time         `json:"createdAt"`
}

type ItemView struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"productId"`
	Qty       int          `json:"qty"`
	UnitPrice int64        `json:"unitPrice"`
	LineTotal int64        `json:"lineTotal"`
	Product   *ProductStub `json:"product"`
}

// ProductStub is the product summary embedded in order items.
type ProductStub struct {
	ID      uuid.UUID `json:"id"`
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	HeroURL *string   `json:"heroUrl"`
}

func toOrderView(o models.Order, urls media.URLResolver) OrderView {
	items := make([]ItemView, 0, len(o.Items))
	for _, it := range o.Items {
		item := ItemView{
			ID:        it.ID,
			ProductID: it.ProductID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		}
		if it.Product != nil {
			item.Product = &ProductStub{
				ID:      it.Product.ID,
				Slug:    it.Product.Slug,
				Title:   it.Product.Title,
				HeroURL: urls.AssetURL(it.Product.HeroMedia),
			}
		}
		items = append(items, item)
	}
	return OrderView{
		ID:        o.ID,
		Type:      o.Type,
		Currency:  o.Currency,
		Total:     o.Total,
		Status:    o.Status,
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}
