package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/orders"
	product "github.com/angelmondragon/clubhouse-backend/internal/products"
	"github.com/angelmondragon/clubhouse-backend/internal/tickets"
	"github.com/angelmondragon/clubhouse-backend/internal/users"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/metrics"
	"github.com/angelmondragon/clubhouse-backend/pkg/qr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type recordingQR struct {
	mu       sync.Mutex
	payloads []string
}

func (r *recordingQR) DataURL(content string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, content)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(content)), nil
}

type fixture struct {
	db      *gorm.DB
	svc     Service
	qr      *recordingQR
	metrics *metrics.PaymentMetrics
	reg     *prometheus.Registry
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := "file:payments_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, conn.AutoMigrate(models.All()...))

	f := &fixture{db: conn, qr: &recordingQR{}, reg: prometheus.NewRegistry(), now: fixedNow}
	f.metrics = metrics.NewPaymentMetrics(f.reg)
	svc, err := NewService(ServiceParams{
		Tx:              db.Wrap(conn),
		Orders:          orders.NewRepository(conn),
		Transactions:    NewTransactionRepository(conn),
		Tickets:         tickets.NewRepository(conn),
		Products:        product.NewRepository(conn),
		Users:           users.NewRepository(conn),
		QR:              f.qr,
		Metrics:         f.metrics,
		MembershipPrice: 500,
		Currency:        "KES",
		Now:             func() time.Time { return f.now },
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func (f *fixture) createUser(t *testing.T, until *time.Time) *models.User {
	t.Helper()
	u := &models.User{
		Email:           uuid.NewString() + "@club.test",
		PasswordHash:    "hash",
		Role:            enums.UserRoleMember,
		Membership:      enums.MembershipStatusNone,
		MembershipUntil: until,
	}
	if until != nil {
		u.Membership = enums.MembershipStatusActive
	}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) createEvent(t *testing.T, open, close time.Time, active bool, capacity int) (*models.TicketEvent, *models.TicketTier) {
	t.Helper()
	match := &models.Match{Competition: "League", KickoffAt: close.Add(time.Hour), Opponent: "Rivals FC", IsHome: true, Status: models.MatchStatusScheduled}
	require.NoError(t, f.db.Create(match).Error)
	event := &models.TicketEvent{
		MatchID:      match.ID,
		Title:        "vs Rivals FC",
		Currency:     "KES",
		SalesOpenAt:  open,
		SalesCloseAt: close,
		IsActive:     active,
		Tiers:        []models.TicketTier{{Name: "Regular", Price: 300, Capacity: capacity}},
	}
	require.NoError(t, f.db.Create(event).Error)
	return event, &event.Tiers[0]
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func (f *fixture) requireNoCheckoutRows(t *testing.T) {
	t.Helper()
	require.Zero(t, f.count(t, &models.Order{}))
	require.Zero(t, f.count(t, &models.OrderItem{}))
	require.Zero(t, f.count(t, &models.PaymentTransaction{}))
	require.Zero(t, f.count(t, &models.Ticket{}))
}

// counter returns the value of the named counter whose labels match.
func (f *fixture) counter(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := f.reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			got := map[string]string{}
			for _, pair := range m.GetLabel() {
				got[pair.GetName()] = pair.GetValue()
			}
			if reflect.DeepEqual(got, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func intPtr(v int) *int { return &v }

func TestNewServiceValidatesDependencies(t *testing.T) {
	t.Parallel()
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}

func TestCheckoutMembership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	resp, err := f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{Months: intPtr(3)})
	require.NoError(t, err)
	require.EqualValues(t, 1500, resp.Amount)
	require.Equal(t, "KES", resp.Currency)
	require.Nil(t, resp.TicketID)
	require.Equal(t, checkoutMessage, resp.Message)

	var order models.Order
	require.NoError(t, f.db.First(&order, "id = ?", resp.OrderID).Error)
	require.Equal(t, enums.OrderTypeMembership, order.Type)
	require.Equal(t, enums.OrderStatusPending, order.Status)
	require.Equal(t, orders.MembershipMetadata{Months: 3, MonthlyPrice: 500}, orders.DecodeMetadata(order.Type, order.Metadata))

	var txn models.PaymentTransaction
	require.NoError(t, f.db.First(&txn, "id = ?", resp.TransactionID).Error)
	require.Equal(t, enums.PaymentProviderManual, txn.Provider)
	require.Equal(t, enums.TransactionStatusPending, txn.Status)
	require.Equal(t, user.ID, txn.UserID)
	require.Equal(t, resp.OrderID, *txn.OrderID)
	require.Nil(t, txn.TicketID)

	resp, err = f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 500, resp.Amount)

	_, err = f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{Months: intPtr(25)})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestCheckoutShopSnapshotsPrices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	p1 := &models.Product{Slug: "p1", Title: "Home Kit", Price: 500, Currency: "KES", IsActive: true}
	require.NoError(t, f.db.Create(p1).Error)

	resp, err := f.svc.CheckoutShop(ctx, user.ID, ShopCheckoutRequest{Items: []ShopItem{{ProductID: p1.ID, Qty: 2}}})
	require.NoError(t, err)
	require.EqualValues(t, 1000, resp.Amount)

	require.NoError(t, f.db.Model(&models.Product{}).Where("id = ?", p1.ID).Update("price", 900).Error)

	var items []models.OrderItem
	require.NoError(t, f.db.Where("order_id = ?", resp.OrderID).Find(&items).Error)
	require.Len(t, items, 1)
	require.EqualValues(t, 500, items[0].UnitPrice)
	require.EqualValues(t, 1000, items[0].LineTotal)
	require.Equal(t, 2, items[0].Qty)

	var order models.Order
	require.NoError(t, f.db.First(&order, "id = ?", resp.OrderID).Error)
	require.Equal(t, enums.OrderTypeShop, order.Type)
	require.EqualValues(t, 1000, order.Total)
}

func TestCheckoutShopRejectsInactiveProductBeforeWriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	active := &models.Product{Slug: "scarf", Title: "Scarf", Price: 300, Currency: "KES", IsActive: true}
	inactive := &models.Product{Slug: "p1", Title: "Old Kit", Price: 500, Currency: "KES"}
	require.NoError(t, f.db.Create(active).Error)
	require.NoError(t, f.db.Create(inactive).Error)

	_, err := f.svc.CheckoutShop(ctx, user.ID, ShopCheckoutRequest{Items: []ShopItem{
		{ProductID: active.ID, Qty: 1},
		{ProductID: inactive.ID, Qty: 2},
	}})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	require.Equal(t, "Some products not found", pkgerrors.As(err).Message())

	_, err = f.svc.CheckoutShop(ctx, user.ID, ShopCheckoutRequest{Items: []ShopItem{{ProductID: uuid.New(), Qty: 1}}})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	f.requireNoCheckoutRows(t)
}

func TestCheckoutTicketsReservesSeats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)
	event, tier := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), true, 10)

	resp, err := f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: event.ID, TierID: tier.ID, Qty: 3})
	require.NoError(t, err)
	require.NotNil(t, resp.TicketID)
	require.EqualValues(t, 900, resp.Amount)
	require.Equal(t, "KES", resp.Currency)
	require.Equal(t, ticketCheckoutMessage, resp.Message)

	var ticket models.Ticket
	require.NoError(t, f.db.First(&ticket, "id = ?", *resp.TicketID).Error)
	require.Equal(t, enums.TicketStatusReserved, ticket.Status)
	require.Regexp(t, `^T-[0-9A-F]{12}$`, ticket.Code)
	require.Equal(t, 3, ticket.Quantity)
	require.Nil(t, ticket.QRDataURL)

	var stored models.TicketTier
	require.NoError(t, f.db.First(&stored, "id = ?", tier.ID).Error)
	require.Equal(t, 3, stored.Sold)

	var order models.Order
	require.NoError(t, f.db.First(&order, "id = ?", resp.OrderID).Error)
	require.Equal(t, enums.OrderTypeTickets, order.Type)
	require.Equal(t, orders.TicketMetadata{TicketID: ticket.ID, EventID: event.ID, TierID: tier.ID, Qty: 3}, orders.DecodeMetadata(order.Type, order.Metadata))

	var txn models.PaymentTransaction
	require.NoError(t, f.db.First(&txn, "id = ?", resp.TransactionID).Error)
	require.Equal(t, ticket.ID, *txn.TicketID)
	require.Equal(t, order.ID, *txn.OrderID)
}

func TestCheckoutTicketsSoldOutLeavesNoRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)
	event, tier := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), true, 2)

	_, err := f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: event.ID, TierID: tier.ID, Qty: 3})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	require.Equal(t, "Sold out", pkgerrors.As(err).Message())
	f.requireNoCheckoutRows(t)

	var stored models.TicketTier
	require.NoError(t, f.db.First(&stored, "id = ?", tier.ID).Error)
	require.Zero(t, stored.Sold)

	require.EqualValues(t, 1, f.counter(t, "checkouts_total", map[string]string{"type": string(enums.OrderTypeTickets), "outcome": metrics.OutcomeSoldOut}))
}

func TestCheckoutTicketsConcurrentLastSeat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	event, tier := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), true, 1)
	buyers := []*models.User{f.createUser(t, nil), f.createUser(t, nil)}

	errs := make([]error, len(buyers))
	var wg sync.WaitGroup
	for i, buyer := range buyers {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = f.svc.CheckoutTickets(ctx, userID, TicketCheckoutRequest{EventID: event.ID, TierID: tier.ID, Qty: 1})
		}(i, buyer.ID)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case pkgerrors.IsCode(err, pkgerrors.CodeConflict):
			conflicted++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, conflicted)

	var stored models.TicketTier
	require.NoError(t, f.db.First(&stored, "id = ?", tier.ID).Error)
	require.Equal(t, 1, stored.Sold)
	require.EqualValues(t, 1, f.count(t, &models.Ticket{}))
	require.EqualValues(t, 1, f.count(t, &models.Order{}))
	require.EqualValues(t, 1, f.count(t, &models.PaymentTransaction{}))
}

func TestCheckoutTicketsSalesWindowAndLookups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	closed, closedTier := f.createEvent(t, fixedNow.Add(-48*time.Hour), fixedNow.Add(-time.Hour), true, 100)
	_, err := f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: closed.ID, TierID: closedTier.ID, Qty: 1})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	require.Equal(t, "Ticket sales closed", pkgerrors.As(err).Message())

	notYet, notYetTier := f.createEvent(t, fixedNow.Add(time.Hour), fixedNow.Add(48*time.Hour), true, 100)
	_, err = f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: notYet.ID, TierID: notYetTier.ID, Qty: 1})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	inactive, inactiveTier := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), false, 100)
	_, err = f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: inactive.ID, TierID: inactiveTier.ID, Qty: 1})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	require.Equal(t, "Event not found", pkgerrors.As(err).Message())

	_, err = f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: uuid.New(), TierID: uuid.New(), Qty: 1})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	open, _ := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), true, 100)
	_, err = f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: open.ID, TierID: closedTier.ID, Qty: 1})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	require.Equal(t, "Tier not found", pkgerrors.As(err).Message())

	f.requireNoCheckoutRows(t)
}

func TestConfirmMembershipExtendsFromNow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	resp, err := f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{})
	require.NoError(t, err)

	first, err := f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)
	require.Equal(t, &ConfirmResponse{OK: true}, first)

	var reloaded models.User
	require.NoError(t, f.db.First(&reloaded, "id = ?", user.ID).Error)
	require.Equal(t, enums.MembershipStatusActive, reloaded.Membership)
	require.True(t, reloaded.MembershipUntil.Equal(fixedNow.AddDate(0, 1, 0)))

	var order models.Order
	require.NoError(t, f.db.First(&order, "id = ?", resp.OrderID).Error)
	require.Equal(t, enums.OrderStatusPaid, order.Status)

	f.now = fixedNow.Add(time.Hour)
	second, err := f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)
	require.Equal(t, &ConfirmResponse{OK: true, Already: true}, second)

	require.NoError(t, f.db.First(&reloaded, "id = ?", user.ID).Error)
	require.True(t, reloaded.MembershipUntil.Equal(fixedNow.AddDate(0, 1, 0)))
}

func TestConfirmMembershipStacksOnUnexpiredWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	current := fixedNow.Add(10 * 24 * time.Hour)
	user := f.createUser(t, &current)

	resp, err := f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{Months: intPtr(1)})
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, f.db.First(&reloaded, "id = ?", user.ID).Error)
	require.True(t, reloaded.MembershipUntil.Equal(current.AddDate(0, 1, 0)))
}

func TestConfirmTicketRendersQROnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)
	event, tier := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), true, 5)

	resp, err := f.svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: event.ID, TierID: tier.ID, Qty: 2})
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)
	again, err := f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)
	require.True(t, again.Already)

	var ticket models.Ticket
	require.NoError(t, f.db.First(&ticket, "id = ?", *resp.TicketID).Error)
	require.Equal(t, enums.TicketStatusPaid, ticket.Status)
	require.NotNil(t, ticket.QRDataURL)

	require.Len(t, f.qr.payloads, 1)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.qr.payloads[0]), &decoded))
	require.Equal(t, map[string]any{"code": ticket.Code, "ticketId": ticket.ID.String()}, decoded)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(*ticket.QRDataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	require.JSONEq(t, f.qr.payloads[0], string(raw))

	var order models.Order
	require.NoError(t, f.db.First(&order, "id = ?", resp.OrderID).Error)
	require.Equal(t, enums.OrderStatusPaid, order.Status)

	var user2 models.User
	require.NoError(t, f.db.First(&user2, "id = ?", user.ID).Error)
	require.Equal(t, enums.MembershipStatusNone, user2.Membership)
}

func TestConfirmRejectsForeignAndUnknownTransactions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	owner := f.createUser(t, nil)
	stranger := f.createUser(t, nil)

	resp, err := f.svc.CheckoutMembership(ctx, owner.ID, MembershipCheckoutRequest{})
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, stranger.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	require.Equal(t, "Not found", pkgerrors.As(err).Message())

	_, err = f.svc.Confirm(ctx, owner.ID, ConfirmRequest{TransactionID: uuid.New()})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	var txn models.PaymentTransaction
	require.NoError(t, f.db.First(&txn, "id = ?", resp.TransactionID).Error)
	require.Equal(t, enums.TransactionStatusPending, txn.Status)
}

func TestConfirmSkipsMissingReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	orderID := uuid.New()
	ticketID := uuid.New()
	txn := &models.PaymentTransaction{
		Provider: enums.PaymentProviderManual,
		Amount:   100,
		Currency: "KES",
		Status:   enums.TransactionStatusPending,
		UserID:   user.ID,
		OrderID:  &orderID,
		TicketID: &ticketID,
	}
	require.NoError(t, f.db.Create(txn).Error)

	resp, err := f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: txn.ID})
	require.NoError(t, err)
	require.Equal(t, &ConfirmResponse{OK: true}, resp)
	require.Empty(t, f.qr.payloads)
}

func TestConfirmToleratesMalformedMembershipMetadata(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	resp, err := f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{Months: intPtr(6)})
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&models.Order{}).Where("id = ?", resp.OrderID).Update("metadata", "{not json").Error)

	_, err = f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, f.db.First(&reloaded, "id = ?", user.ID).Error)
	require.True(t, reloaded.MembershipUntil.Equal(fixedNow.AddDate(0, 1, 0)))
}

func TestConfirmWithRealQRRenderer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	renderer, err := qr.NewRenderer(320, 1)
	require.NoError(t, err)

	svc, err := NewService(ServiceParams{
		Tx:              db.Wrap(f.db),
		Orders:          orders.NewRepository(f.db),
		Transactions:    NewTransactionRepository(f.db),
		Tickets:         tickets.NewRepository(f.db),
		Products:        product.NewRepository(f.db),
		Users:           users.NewRepository(f.db),
		QR:              renderer,
		MembershipPrice: 500,
		Currency:        "KES",
		Now:             func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	user := f.createUser(t, nil)
	event, tier := f.createEvent(t, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), true, 5)
	resp, err := svc.CheckoutTickets(ctx, user.ID, TicketCheckoutRequest{EventID: event.ID, TierID: tier.ID, Qty: 1})
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)

	var ticket models.Ticket
	require.NoError(t, f.db.First(&ticket, "id = ?", *resp.TicketID).Error)
	require.True(t, strings.HasPrefix(*ticket.QRDataURL, "data:image/png;base64,"))
}

func TestConfirmationMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, nil)

	resp, err := f.svc.CheckoutMembership(ctx, user.ID, MembershipCheckoutRequest{})
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, user.ID, ConfirmRequest{TransactionID: resp.TransactionID})
	require.NoError(t, err)

	require.EqualValues(t, 1, f.counter(t, "checkouts_total", map[string]string{"type": string(enums.OrderTypeMembership), "outcome": metrics.OutcomeCreated}))
	require.EqualValues(t, 1, f.counter(t, "payment_confirmations_total", map[string]string{"outcome": metrics.OutcomeConfirmed}))
	require.EqualValues(t, 1, f.counter(t, "payment_confirmations_total", map[string]string{"outcome": metrics.OutcomeAlready}))
}
