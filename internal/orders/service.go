package orders

import (
	"context"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
)

const myOrdersLimit = 50

// Service exposes order reads for the order owner.
type Service interface {
	ListMyShopOrders(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type service struct {
	repo Repository
	urls media.URLResolver
}

// NewService constructs the orders read service.
func NewService(repo Repository, urls media.URLResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo, urls: urls}, nil
}

func (s *service) ListMyShopOrders(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Unauthorized")
	}
	rows, err := s.repo.ListByUser(ctx, userID, enums.OrderTypeShop, myOrdersLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list shop orders")
	}
	out := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOrderView(row, s.urls))
	}
	return out, nil
}
