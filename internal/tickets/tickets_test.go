package tickets

import (
	"bytes"
	"context"
	"regexp"
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

var fixedNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:tickets_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Match{}, &models.TicketEvent{}, &models.TicketTier{}, &models.Ticket{}))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, active bool, open, close time.Time, tiers ...models.TicketTier) *models.TicketEvent {
	t.Helper()
	match := &models.Match{Competition: "League", KickoffAt: close.Add(2 * time.Hour), Opponent: "Rivals FC", IsHome: true, Status: models.MatchStatusScheduled}
	require.NoError(t, db.Create(match).Error)
	event := &models.TicketEvent{MatchID: match.ID, Title: "vs Rivals FC", Currency: "KES", SalesOpenAt: open, SalesCloseAt: close, IsActive: active, Tiers: tiers}
	require.NoError(t, db.Create(event).Error)
	return event
}

func TestNewCodeFormat(t *testing.T) {
	t.Parallel()

	code, err := NewCode()
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^T-[0-9A-F]{12}$`), code)

	code, err = newCodeFrom(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02}))
	require.NoError(t, err)
	require.Equal(t, "T-DEADBEEF0102", code)

	_, err = newCodeFrom(bytes.NewReader([]byte{0x01}))
	require.Error(t, err)
}

func TestIncrementSoldRespectsCapacity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)
	event := seedEvent(t, db, true, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), models.TicketTier{Name: "Regular", Price: 300, Capacity: 3})
	tierID := event.Tiers[0].ID

	ok, err := repo.IncrementSold(ctx, tierID, 2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.IncrementSold(ctx, tierID, 2)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.IncrementSold(ctx, tierID, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.IncrementSold(ctx, uuid.New(), 1)
	require.NoError(t, err)
	require.False(t, ok)

	var tier models.TicketTier
	require.NoError(t, db.First(&tier, "id = ?", tierID).Error)
	require.Equal(t, 3, tier.Sold)
}

func TestMarkPaidOnlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)
	event := seedEvent(t, db, true, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), models.TicketTier{Name: "VIP", Price: 1000, Capacity: 10})

	ticket := &models.Ticket{UserID: uuid.New(), EventID: event.ID, TierID: event.Tiers[0].ID, Quantity: 1, Total: 1000, Status: enums.TicketStatusReserved, Code: "T-000000000001"}
	require.NoError(t, repo.CreateTicket(ctx, ticket))

	changed, err := repo.MarkPaid(ctx, ticket.ID, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = repo.MarkPaid(ctx, ticket.ID, "data:image/png;base64,BBBB")
	require.NoError(t, err)
	require.False(t, changed)

	stored, err := repo.FindTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.Equal(t, enums.TicketStatusPaid, stored.Status)
	require.Equal(t, "data:image/png;base64,AAAA", *stored.QRDataURL)
}

func TestServiceFeaturedAndGetEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	later := seedEvent(t, db, true, fixedNow.Add(48*time.Hour), fixedNow.Add(72*time.Hour),
		models.TicketTier{Name: "Regular", Price: 300, Capacity: 100},
		models.TicketTier{Name: "VIP", Price: 1500, Capacity: 10},
	)
	sooner := seedEvent(t, db, true, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour))
	closed := seedEvent(t, db, true, fixedNow.Add(-48*time.Hour), fixedNow.Add(-time.Hour))
	inactive := seedEvent(t, db, false, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour))

	svc, err := NewService(ServiceParams{Repo: NewRepository(db), DefaultCurrency: "KES", Now: func() time.Time { return fixedNow }})
	require.NoError(t, err)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, sooner.ID, featured[0].ID)
	require.Equal(t, later.ID, featured[1].ID)
	require.Equal(t, "VIP", featured[1].Tiers[0].Name)
	require.NotNil(t, featured[1].Match)

	view, err := svc.GetEvent(ctx, closed.ID)
	require.NoError(t, err)
	require.Equal(t, closed.ID, view.ID)

	_, err = svc.GetEvent(ctx, inactive.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.GetEvent(ctx, uuid.New())
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestServiceCreateEventDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	match := &models.Match{Competition: "Cup", KickoffAt: fixedNow.Add(96 * time.Hour), Opponent: "City", Status: models.MatchStatusScheduled}
	require.NoError(t, db.Create(match).Error)

	svc, err := NewService(ServiceParams{Repo: NewRepository(db), DefaultCurrency: "KES"})
	require.NoError(t, err)

	view, err := svc.CreateEvent(ctx, CreateEventInput{
		MatchID:      match.ID,
		Title:        "Cup night",
		SalesOpenAt:  fixedNow,
		SalesCloseAt: fixedNow.Add(72 * time.Hour),
		Tiers: []TierInput{
			{Name: "Regular", Price: 200, Capacity: 500},
			{Name: "VIP", Price: 1000, Capacity: 50},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "KES", view.Currency)
	require.True(t, view.IsActive)
	require.Len(t, view.Tiers, 2)
	require.Equal(t, "VIP", view.Tiers[0].Name)
	require.Zero(t, view.Tiers[0].Sold)

	_, err = svc.CreateEvent(ctx, CreateEventInput{MatchID: match.ID, Title: "Again", SalesOpenAt: fixedNow, SalesCloseAt: fixedNow.Add(time.Hour), Tiers: []TierInput{{Name: "A", Capacity: 1}}})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	_, err = svc.CreateEvent(ctx, CreateEventInput{MatchID: match.ID, Title: "Backwards", SalesOpenAt: fixedNow, SalesCloseAt: fixedNow.Add(-time.Hour), Tiers: []TierInput{{Name: "A", Capacity: 1}}})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestServiceListMine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRepository(db)
	event := seedEvent(t, db, true, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), models.TicketTier{Name: "Regular", Price: 300, Capacity: 10})
	userID := uuid.New()

	require.NoError(t, repo.CreateTicket(ctx, &models.Ticket{UserID: userID, EventID: event.ID, TierID: event.Tiers[0].ID, Quantity: 2, Total: 600, Status: enums.TicketStatusReserved, Code: "T-AAAAAAAAAAAA"}))
	require.NoError(t, repo.CreateTicket(ctx, &models.Ticket{UserID: uuid.New(), EventID: event.ID, TierID: event.Tiers[0].ID, Quantity: 1, Total: 300, Status: enums.TicketStatusReserved, Code: "T-BBBBBBBBBBBB"}))

	svc, err := NewService(ServiceParams{Repo: repo, DefaultCurrency: "KES"})
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "T-AAAAAAAAAAAA", mine[0].Code)
	require.NotNil(t, mine[0].Event)
	require.NotNil(t, mine[0].Event.Match)
	require.NotNil(t, mine[0].Tier)
	require.Nil(t, mine[0].QRDataURL)
}
