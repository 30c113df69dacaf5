package orders

import (
	"context"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for orders and their line items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order, meta Metadata) error
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, orderType enums.OrderType, limit int) ([]models.Order, error)
}

// Record is a stored order with its decoded metadata.
type Record struct {
	Order    *models.Order
	Metadata Metadata
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Create inserts the order and any line items in Items. The order type is taken
// from the metadata variant.
func (r *repository) Create(ctx context.Context, order *models.Order, meta Metadata) error {
	if order == nil {
		return fmt.Errorf("order required")
	}
	raw, err := EncodeMetadata(meta)
	if err != nil {
		return err
	}
	order.Type = meta.OrderType()
	order.Metadata = raw
	if order.Status == "" {
		order.Status = enums.OrderStatusPending
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &Record{Order: &order, Metadata: DecodeMetadata(order.Type, order.Metadata)}, nil
}

// MarkPaid flips a PENDING order to PAID. It reports false when the order was
// not pending.
func (r *repository) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", id, enums.OrderStatusPending).
		Update("status", enums.OrderStatusPaid)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, orderType enums.OrderType, limit int) ([]models.Order, error) {
	var out []models.Order
	q := r.db.WithContext(ctx).
		Preload("Items.Product.HeroMedia").
		Where("user_id = ? AND type = ?", userID, orderType).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
