package admin

import (
	"context"
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/google/uuid"
)

type itemEnvelope[T any] struct {
	Item T `json:"item"`
}

func listHandler[T any](list func(context.Context) ([]T, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteItems(w, items)
	}
}

func createHandler[In, Out any](create func(context.Context, In) (Out, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload In
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, itemEnvelope[Out]{Item: item})
	}
}

// updateHandler applies a partial update to the row named by the {id} param.
func updateHandler[In, Out any](update func(context.Context, uuid.UUID, In) (Out, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload In
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := update(r.Context(), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, itemEnvelope[Out]{Item: item})
	}
}

func deleteHandler(del func(context.Context, uuid.UUID) error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := del(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteOK(w)
	}
}
