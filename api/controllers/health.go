package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
	"golang.org/x/sync/errgroup"
)

const healthTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness after a database round trip.
func Health(db pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
			return
		}
		responses.WriteSuccess(w, types.OK{OK: true})
	}
}

// HealthReady pings every configured dependency. cache may be nil when redis is
// not configured.
func HealthReady(db pinger, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := db.Ping(gctx); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable")
			}
			return nil
		})
		if cache != nil {
			g.Go(func() error {
				if err := cache.Ping(gctx); err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable")
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.OK{OK: true})
	}
}
