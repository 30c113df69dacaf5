package news

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	internalnews "github.com/angelmondragon/clubhouse-backend/internal/news"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize = 12
	maxPageSize     = 30
	maxPage         = 10000
)

// List pages through published posts. Out-of-range page values are clamped.
func List(svc internalnews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "news service unavailable"))
			return
		}

		page, err := validators.ParseQueryIntClamped(r, "page", 1, 1, maxPage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageSize, err := validators.ParseQueryIntClamped(r, "pageSize", defaultPageSize, 1, maxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListPublished(r.Context(), page, pageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func Detail(svc internalnews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "news service unavailable"))
			return
		}

		post, err := svc.GetBySlug(r.Context(), strings.TrimSpace(chi.URLParam(r, "slug")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, post)
	}
}
