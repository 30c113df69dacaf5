package admin

import (
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
)

const maxMediaQuery = 200

// MediaList searches the library by title or path.
func MediaList(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), validators.ParseQueryString(r, "q", maxMediaQuery))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteItems(w, items)
	}
}

// MediaRegister records an asset already uploaded to external storage.
func MediaRegister(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return createHandler(svc.Register, logg)
}
