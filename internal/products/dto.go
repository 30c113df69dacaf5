package product

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
	"github.com/google/uuid"
)

// ProductDTO represents the shop product payload returned to clients.
type ProductDTO struct {
	ID          uuid.UUID        `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Price       int64            `json:"price"`
	Currency    string           `json:"currency"`
	Category    *string          `json:"category"`
	KitType     *string          `json:"kitType"`
	IsActive    bool             `json:"isActive"`
	HeroMediaID *uuid.UUID       `json:"heroMediaId"`
	HeroURL     *string          `json:"heroUrl"`
	HeroMedia   *media.AssetView `json:"heroMedia,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func toDTO(p models.Product, urls media.URLResolver) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Category:    p.Category,
		KitType:     p.KitType,
		IsActive:    p.IsActive,
		HeroMediaID: p.HeroMediaID,
		HeroURL:     urls.AssetURL(p.HeroMedia),
		HeroMedia:   urls.View(p.HeroMedia),
		CreatedAt:   p.CreatedAt,
	}
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Slug        string     `json:"slug" validate:"required,min=2"`
	Title       string     `json:"title" validate:"required,min=2"`
	Description *string    `json:"description,omitempty"`
	Price       int64      `json:"price" validate:"min=0"`
	Currency    string     `json:"currency,omitempty" validate:"omitempty,min=3"`
	Category    *string    `json:"category,omitempty"`
	KitType     *string    `json:"kitType,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
	HeroMediaID *uuid.UUID `json:"heroMediaId,omitempty"`
}

// UpdateProductInput is a partial update; absent fields are left untouched.
type UpdateProductInput struct {
	Slug        *string              `json:"slug,omitempty" validate:"omitempty,min=2"`
	Title       *string              `json:"title,omitempty" validate:"omitempty,min=2"`
	Description types.NullableString `json:"description"`
	Price       *int64               `json:"price,omitempty" validate:"omitempty,min=0"`
	Currency    *string              `json:"currency,omitempty" validate:"omitempty,min=3"`
	Category    types.NullableString `json:"category"`
	KitType     types.NullableString `json:"kitType"`
	IsActive    *bool                `json:"isActive,omitempty"`
	HeroMediaID types.NullableUUID   `json:"heroMediaId"`
}

func (in UpdateProductInput) updates() map[string]any {
	out := map[string]any{}
	if in.Slug != nil {
		out["slug"] = *in.Slug
	}
	if in.Title != nil {
		out["title"] = *in.Title
	}
	if in.Description.Set {
		out["description"] = in.Description.Value
	}
	if in.Price != nil {
		out["price"] = *in.Price
	}
	if in.Currency != nil {
		out["currency"] = *in.Currency
	}
	if in.Category.Set {
		out["category"] = in.Category.Value
	}
	if in.KitType.Set {
		out["kit_type"] = in.KitType.Value
	}
	if in.IsActive != nil {
		out["is_active"] = *in.IsActive
	}
	if in.HeroMediaID.Set {
		out["hero_media_id"] = in.HeroMediaID.Value
	}
	return out
}
