package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
)

const adminListLimit = 200

type mediaRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) (*models.MediaAsset, error)
	Search(ctx context.Context, query string, limit int) ([]models.MediaAsset, error)
}

// Service exposes the admin media library.
type Service interface {
	List(ctx context.Context, query string) ([]AssetView, error)
	Register(ctx context.Context, input RegisterInput) (*AssetView, error)
}

type service struct {
	repo mediaRepository
	urls URLResolver
}

// NewService constructs a media service.
func NewService(repo mediaRepository, urls URLResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("media repository required")
	}
	return &service{repo: repo, urls: urls}, nil
}

// RegisterInput records an asset that already lives in external storage.
type RegisterInput struct {
	Type      enums.MediaType `json:"type" validate:"required"`
	Title     *string         `json:"title,omitempty" validate:"omitempty,max=200"`
	Path      string          `json:"path" validate:"required,min=1"`
	MimeType  *string         `json:"mimeType,omitempty"`
	Width     *int            `json:"width,omitempty" validate:"omitempty,min=1"`
	Height    *int            `json:"height,omitempty" validate:"omitempty,min=1"`
	SizeBytes *int64          `json:"sizeBytes,omitempty" validate:"omitempty,min=0"`
}

func (s *service) List(ctx context.Context, query string) ([]AssetView, error) {
	rows, err := s.repo.Search(ctx, query, adminListLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list media")
	}
	out := make([]AssetView, 0, len(rows))
	for i := range rows {
		out = append(out, *s.urls.View(&rows[i]))
	}
	return out, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AssetView, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media type")
	}
	assetPath := strings.TrimLeft(strings.TrimSpace(input.Path), "/")
	if assetPath == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "path is required")
	}
	declared := ""
	if input.MimeType != nil {
		declared = *input.MimeType
	}
	mimeType, err := resolveMimeType(input.Type, declared, assetPath)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	asset := &models.MediaAsset{
		Type:      input.Type,
		Title:     input.Title,
		Path:      assetPath,
		Width:     input.Width,
		Height:    input.Height,
		SizeBytes: input.SizeBytes,
	}
	if mimeType != "" {
		asset.MimeType = &mimeType
	}
	created, err := s.repo.Create(ctx, asset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create media")
	}
	return s.urls.View(created), nil
}
