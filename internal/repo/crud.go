package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Query narrows a List or Count call. Zero values mean no filter, natural
// order and no limit.
type Query struct {
	Where   string
	Args    []any
	Order   []string
	Limit   int
	Offset  int
	Preload []string
}

func (q Query) apply(db *gorm.DB) *gorm.DB {
	if q.Where != "" {
		db = db.Where(q.Where, q.Args...)
	}
	for _, order := range q.Order {
		db = db.Order(order)
	}
	for _, assoc := range q.Preload {
		db = db.Preload(assoc)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	return db
}

// CRUD implements the id keyed reads and writes shared by the content tables.
// Missing rows surface as gorm.ErrRecordNotFound.
type CRUD[T any] struct {
	Base
}

func NewCRUD[T any](db *gorm.DB) CRUD[T] {
	return CRUD[T]{Base: NewBase(db)}
}

func (r CRUD[T]) WithTx(tx *gorm.DB) CRUD[T] {
	return CRUD[T]{Base: r.Base.WithTx(tx)}
}

func (r CRUD[T]) FindByID(ctx context.Context, id uuid.UUID, preload ...string) (*T, error) {
	return r.FindOne(ctx, Query{Where: "id = ?", Args: []any{id}, Preload: preload})
}

// FindOne returns the first row matching q.
func (r CRUD[T]) FindOne(ctx context.Context, q Query) (*T, error) {
	var out T
	q.Limit = 0
	if err := q.apply(r.DB(ctx)).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r CRUD[T]) List(ctx context.Context, q Query) ([]T, error) {
	var out []T
	if err := q.apply(r.DB(ctx)).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r CRUD[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	q.Order, q.Limit, q.Offset, q.Preload = nil, 0, 0, nil
	err := q.apply(r.DB(ctx).Model(new(T))).Count(&n).Error
	return n, err
}

func (r CRUD[T]) Create(ctx context.Context, row *T) error {
	return r.DB(ctx).Create(row).Error
}

// Update applies column updates to the row with the given id.
func (r CRUD[T]) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}
	res := r.DB(ctx).Model(new(T)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r CRUD[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
