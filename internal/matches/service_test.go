package matches

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var now = time.Date(2026, 8, 15, 15, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	dsn := "file:matches_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Match{}, &models.TicketEvent{}, &models.TicketTier{}))
	svc, err := NewService(NewRepository(db), func() time.Time { return now })
	require.NoError(t, err)
	return svc, db
}

func strPtr(v string) *string { return &v }

func seedFixtures(t *testing.T, svc Service) map[string]*models.Match {
	t.Helper()
	ctx := context.Background()
	out := map[string]*models.Match{}
	fixtures := []struct {
		key    string
		offset time.Duration
		season string
		status string
	}{
		{"last-season", -400 * 24 * time.Hour, "2024/25", models.MatchStatusFullTime},
		{"last-week", -7 * 24 * time.Hour, "2025/26", models.MatchStatusFullTime},
		{"yesterday", -24 * time.Hour, "2025/26", models.MatchStatusFullTime},
		{"next-week", 7 * 24 * time.Hour, "2025/26", ""},
		{"tomorrow", 24 * time.Hour, "2025/26", ""},
	}
	for _, f := range fixtures {
		m, err := svc.Create(ctx, CreateMatchInput{
			Competition: "League",
			Season:      strPtr(f.season),
			KickoffAt:   now.Add(f.offset),
			Opponent:    "Opponent " + f.key,
			Status:      f.status,
		})
		require.NoError(t, err)
		out[f.key] = m
	}
	return out
}

func TestUpcomingAndResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	fixtures := seedFixtures(t, svc)
	require.Equal(t, models.MatchStatusScheduled, fixtures["tomorrow"].Status)

	upcoming, err := svc.Upcoming(ctx, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	require.Equal(t, fixtures["tomorrow"].ID, upcoming[0].ID)
	require.Equal(t, fixtures["next-week"].ID, upcoming[1].ID)

	results, err := svc.Results(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, fixtures["yesterday"].ID, results[0].ID)
	require.Equal(t, fixtures["last-week"].ID, results[1].ID)

	next, err := svc.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, fixtures["tomorrow"].ID, next.ID)
}

func TestNextWithoutFixtures(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	next, err := svc.Next(context.Background())
	require.NoError(t, err)
	require.Nil(t, next)
}

func TestListFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	fixtures := seedFixtures(t, svc)

	all, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, fixtures["last-season"].ID, all[0].ID)

	season, err := svc.List(ctx, Filter{Season: "2025/26"})
	require.NoError(t, err)
	require.Len(t, season, 4)

	from := now.Add(-2 * 24 * time.Hour)
	to := now.Add(2 * 24 * time.Hour)
	window, err := svc.List(ctx, Filter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, window, 2)
	require.Equal(t, fixtures["yesterday"].ID, window[0].ID)
	require.Equal(t, fixtures["tomorrow"].ID, window[1].ID)
}

func TestAdminScoresAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, db := newTestService(t)
	fixtures := seedFixtures(t, svc)

	var patch UpdateMatchInput
	require.NoError(t, json.Unmarshal([]byte(`{"homeScore":2,"awayScore":1,"status":"FT","venue":"Home Park"}`), &patch))
	updated, err := svc.Update(ctx, fixtures["tomorrow"].ID, patch)
	require.NoError(t, err)
	require.Equal(t, 2, *updated.HomeScore)
	require.Equal(t, 1, *updated.AwayScore)
	require.Equal(t, "Home Park", *updated.Venue)
	require.Equal(t, models.MatchStatusFullTime, updated.Status)

	bad := enums.MatchType("fun")
	_, err = svc.Create(ctx, CreateMatchInput{Competition: "Cup", KickoffAt: now, Opponent: "Rivals", MatchType: &bad})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	event := &models.TicketEvent{MatchID: fixtures["next-week"].ID, Title: "Tickets", Currency: "KES", SalesOpenAt: now, SalesCloseAt: now.Add(time.Hour), IsActive: true}
	require.NoError(t, db.Create(event).Error)

	items, err := svc.AdminList(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	require.Equal(t, fixtures["next-week"].ID, items[0].ID)
	require.NotNil(t, items[0].TicketEvent)

	err = svc.Delete(ctx, fixtures["next-week"].ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	require.NoError(t, svc.Delete(ctx, fixtures["last-season"].ID))
	require.True(t, pkgerrors.IsCode(svc.Delete(ctx, fixtures["last-season"].ID), pkgerrors.CodeNotFound))

	_, err = svc.Update(ctx, uuid.New(), UpdateMatchInput{Opponent: strPtr("Nobody")})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
