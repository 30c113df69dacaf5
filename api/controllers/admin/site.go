package admin

import (
	"net/http"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/api/validators"
	"github.com/angelmondragon/clubhouse-backend/internal/site"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
)

type settingsEnvelope struct {
	Settings *site.SettingsView `json:"settings"`
}

func FAQs(svc site.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminFAQs, logg),
		Create: createHandler(svc.CreateFAQ, logg),
		Update: updateHandler(svc.UpdateFAQ, logg),
		Delete: deleteHandler(svc.DeleteFAQ, logg),
	}
}

func Highlights(svc site.Service, logg *logger.Logger) Resource {
	return Resource{
		List:   listHandler(svc.AdminHighlights, logg),
		Create: createHandler(svc.CreateHighlight, logg),
		Update: updateHandler(svc.UpdateHighlight, logg),
		Delete: deleteHandler(svc.DeleteHighlight, logg),
	}
}

// Settings returns the global settings row, or null before the first upsert.
func Settings(svc site.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.Settings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, settingsEnvelope{Settings: settings})
	}
}

func UpsertSettings(svc site.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload site.SettingsInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		settings, err := svc.UpsertSettings(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, settingsEnvelope{Settings: settings})
	}
}
