package team

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	internalteam "github.com/angelmondragon/clubhouse-backend/internal/team"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Roster returns members grouped by position, optionally filtered by team and
// staff flag.
func Roster(svc internalteam.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "team service unavailable"))
			return
		}

		var filter internalteam.Filter
		if team := validators.ParseQueryString(r, "team", 100); team != "" {
			filter.Team = &team
		}
		isStaff, err := validators.ParseQueryBool(r, "isStaff")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.IsStaff = isStaff

		roster, err := svc.Roster(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, roster)
	}
}

func Member(svc internalteam.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "team service unavailable"))
			return
		}

		member, err := svc.GetBySlug(r.Context(), strings.TrimSpace(chi.URLParam(r, "slug")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, member)
	}
}
