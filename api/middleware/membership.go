package middleware

import (
	"context"
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/google/uuid"
)

type membershipChecker interface {
	IsActiveUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireMembership gates member-only routes. It must run after Auth. The
// membership is read from the database on every request since it changes on
// payment confirmation while the token stays the same.
func RequireMembership(checker membershipChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := CallerID(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			active, err := checker.IsActiveUser(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !active {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodePayment, "Membership required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
