package payments

import (
	"context"
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/api/middleware"
	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	internalpayments "github.com/angelmondragon/clubhouse-backend/internal/payments"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/google/uuid"
)

// MembershipCheckout opens a pending membership order for the caller.
func MembershipCheckout(svc internalpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, userID uuid.UUID, r *http.Request) (any, error) {
		var payload internalpayments.MembershipCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.CheckoutMembership(ctx, userID, payload)
	})
}

// ShopCheckout opens a pending shop order with snapshotted prices.
func ShopCheckout(svc internalpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, userID uuid.UUID, r *http.Request) (any, error) {
		var payload internalpayments.ShopCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.CheckoutShop(ctx, userID, payload)
	})
}

// TicketsCheckout reserves seats on a tier and opens a pending ticket order.
func TicketsCheckout(svc internalpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, userID uuid.UUID, r *http.Request) (any, error) {
		var payload internalpayments.TicketCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.CheckoutTickets(ctx, userID, payload)
	})
}

// MockConfirm simulates the gateway callback for one of the caller's transactions.
func MockConfirm(svc internalpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, userID uuid.UUID, r *http.Request) (any, error) {
		var payload internalpayments.ConfirmRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.Confirm(ctx, userID, payload)
	})
}

type action func(ctx context.Context, userID uuid.UUID, r *http.Request) (any, error)

func handle(svc internalpayments.Service, logg *logger.Logger, fn action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payments service unavailable"))
			return
		}

		userID, err := middleware.CallerID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := fn(r.Context(), userID, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
