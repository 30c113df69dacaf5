package tickets

import (
	"context"
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence for ticket events, tiers and tickets.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindEvent(ctx context.Context, id uuid.UUID) (*models.TicketEvent, error)
	ListFeatured(ctx context.Context, now time.Time, limit int) ([]models.TicketEvent, error)
	CreateEvent(ctx context.Context, event *models.TicketEvent) error
	CountEvents(ctx context.Context) (int64, error)
	IncrementSold(ctx context.Context, tierID uuid.UUID, qty int) (bool, error)
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	FindTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	MarkPaid(ctx context.Context, id uuid.UUID, qrDataURL string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Ticket, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a tickets repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func tiersByPrice(db *gorm.DB) *gorm.DB {
	return db.Order("price DESC")
}

// FindEvent loads an event with its match and tiers, most expensive tier first.
func (r *repository) FindEvent(ctx context.Context, id uuid.UUID) (*models.TicketEvent, error) {
	var event models.TicketEvent
	err := r.db.WithContext(ctx).
		Preload("Tiers", tiersByPrice).
		Preload("Match").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListFeatured returns active events whose sales have not closed, soonest opening first.
func (r *repository) ListFeatured(ctx context.Context, now time.Time, limit int) ([]models.TicketEvent, error) {
	var out []models.TicketEvent
	q := r.db.WithContext(ctx).
		Preload("Tiers", tiersByPrice).
		Preload("Match").
		Where("is_active = ? AND sales_close_at > ?", true, now).
		Order("sales_open_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEvent inserts the event together with its tiers.
func (r *repository) CreateEvent(ctx context.Context, event *models.TicketEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) CountEvents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.TicketEvent{}).Count(&n).Error
	return n, err
}

// IncrementSold adds qty to the tier's sold counter only if the result stays
// within capacity. It reports false when the tier is missing or would oversell.
func (r *repository) IncrementSold(ctx context.Context, tierID uuid.UUID, qty int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.TicketTier{}).
		Where("id = ? AND sold + ? <= capacity", tierID, qty).
		UpdateColumn("sold", gorm.Expr("sold + ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) FindTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// MarkPaid stores the QR artifact and flips the ticket to PAID. It reports
// false when the ticket was already paid.
func (r *repository) MarkPaid(ctx context.Context, id uuid.UUID, qrDataURL string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("id = ? AND status <> ?", id, enums.TicketStatusPaid).
		Updates(map[string]any{
			"status":      enums.TicketStatusPaid,
			"qr_data_url": qrDataURL,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Ticket, error) {
	var out []models.Ticket
	q := r.db.WithContext(ctx).
		Preload("Event.Match").
		Preload("Tier").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
