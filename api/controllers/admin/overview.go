package admin

import (
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	internaladmin "github.com/angelmondragon/clubhouse-backend/internal/admin"
	"github.com/angelmondragon/clubhouse-backend/internal/tickets"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
)

func Overview(svc internaladmin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}

type eventEnvelope struct {
	Event *tickets.EventView `json:"event"`
}

// CreateTicketEvent opens a ticket event with its tiers in one insert.
func CreateTicketEvent(svc tickets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload tickets.CreateEventInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.CreateEvent(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, eventEnvelope{Event: event})
	}
}
