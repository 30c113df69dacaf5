package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/memberships"
	"github.com/angelmondragon/clubhouse-backend/internal/orders"
	"github.com/angelmondragon/clubhouse-backend/internal/tickets"
	"github.com/angelmondragon/clubhouse-backend/internal/users"
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/angelmondragon/clubhouse-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type productLoader interface {
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

type qrRenderer interface {
	DataURL(content string) (string, error)
}

// Service runs the checkout flows and the mock gateway confirmation.
type Service interface {
	CheckoutMembership(ctx context.Context, userID uuid.UUID, req MembershipCheckoutRequest) (*CheckoutResponse, error)
	CheckoutShop(ctx context.Context, userID uuid.UUID, req ShopCheckoutRequest) (*CheckoutResponse, error)
	CheckoutTickets(ctx context.Context, userID uuid.UUID, req TicketCheckoutRequest) (*CheckoutResponse, error)
	Confirm(ctx context.Context, userID uuid.UUID, req ConfirmRequest) (*ConfirmResponse, error)
}

type ServiceParams struct {
	Tx              txRunner
	Orders          orders.Repository
	Transactions    TransactionRepository
	Tickets         tickets.Repository
	Products        productLoader
	Users           *users.Repository
	QR              qrRenderer
	Metrics         *metrics.PaymentMetrics
	Logger          *logger.Logger
	MembershipPrice int64
	Currency        string
	Now             func() time.Time
	NewTicketCode   func() (string, error)
}

type service struct {
	tx              txRunner
	orders          orders.Repository
	transactions    TransactionRepository
	tickets         tickets.Repository
	products        productLoader
	users           *users.Repository
	qr              qrRenderer
	metrics         *metrics.PaymentMetrics
	logg            *logger.Logger
	membershipPrice int64
	currency        string
	now             func() time.Time
	newTicketCode   func() (string, error)
}

// NewService builds the payments service.
func NewService(params ServiceParams) (Service, error) {
	if params.Tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Transactions == nil {
		return nil, fmt.Errorf("transactions repository required")
	}
	if params.Tickets == nil {
		return nil, fmt.Errorf("tickets repository required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if params.QR == nil {
		return nil, fmt.Errorf("qr renderer required")
	}
	if params.MembershipPrice < 0 {
		return nil, fmt.Errorf("membership price must not be negative")
	}
	if params.Currency == "" {
		return nil, fmt.Errorf("currency required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	newCode := params.NewTicketCode
	if newCode == nil {
		newCode = tickets.NewCode
	}
	return &service{
		tx:              params.Tx,
		orders:          params.Orders,
		transactions:    params.Transactions,
		tickets:         params.Tickets,
		products:        params.Products,
		users:           params.Users,
		qr:              params.QR,
		metrics:         params.Metrics,
		logg:            params.Logger,
		membershipPrice: params.MembershipPrice,
		currency:        params.Currency,
		now:             now,
		newTicketCode:   newCode,
	}, nil
}

func (s *service) CheckoutMembership(ctx context.Context, userID uuid.UUID, req MembershipCheckoutRequest) (resp *CheckoutResponse, err error) {
	defer s.observe(enums.OrderTypeMembership, time.Now(), &err)

	months := memberships.DefaultMonths
	if req.Months != nil {
		months = *req.Months
	}
	if months < 1 || months > 24 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "months must be between 1 and 24")
	}
	total := s.membershipPrice * int64(months)
	meta := orders.MembershipMetadata{Months: months, MonthlyPrice: s.membershipPrice}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		order := &models.Order{UserID: userID, Currency: s.currency, Total: total}
		if err := s.orders.WithTx(tx).Create(ctx, order, meta); err != nil {
			return err
		}
		txn, err := s.createTransaction(ctx, tx, userID, total, s.currency, &order.ID, nil)
		if err != nil {
			return err
		}
		resp = &CheckoutResponse{
			OrderID:       order.ID,
			TransactionID: txn.ID,
			Amount:        total,
			Currency:      s.currency,
			Message:       checkoutMessage,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) CheckoutShop(ctx context.Context, userID uuid.UUID, req ShopCheckoutRequest) (resp *CheckoutResponse, err error) {
	defer s.observe(enums.OrderTypeShop, time.Now(), &err)

	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	ids := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]struct{}, len(req.Items))
	for _, item := range req.Items {
		if item.Qty < 1 || item.Qty > 20 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "qty must be between 1 and 20")
		}
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	found, err := s.products.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load products")
	}
	prices := make(map[uuid.UUID]int64, len(found))
	for _, p := range found {
		prices[p.ID] = p.Price
	}

	var total int64
	lines := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		price, ok := prices[item.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Some products not found")
		}
		lineTotal := price * int64(item.Qty)
		total += lineTotal
		lines = append(lines, models.OrderItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			UnitPrice: price,
			LineTotal: lineTotal,
		})
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		order := &models.Order{UserID: userID, Currency: s.currency, Total: total, Items: lines}
		if err := s.orders.WithTx(tx).Create(ctx, order, orders.ShopMetadata{}); err != nil {
			return err
		}
		txn, err := s.createTransaction(ctx, tx, userID, total, s.currency, &order.ID, nil)
		if err != nil {
			return err
		}
		resp = &CheckoutResponse{
			OrderID:       order.ID,
			TransactionID: txn.ID,
			Amount:        total,
			Currency:      s.currency,
			Message:       checkoutMessage,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) CheckoutTickets(ctx context.Context, userID uuid.UUID, req TicketCheckoutRequest) (resp *CheckoutResponse, err error) {
	defer s.observe(enums.OrderTypeTickets, time.Now(), &err)

	if req.Qty < 1 || req.Qty > 20 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "qty must be between 1 and 20")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		ticketRepo := s.tickets.WithTx(tx)

		event, err := ticketRepo.FindEvent(ctx, req.EventID)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Event not found")
			}
			return err
		}
		if !event.IsActive {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Event not found")
		}
		if !event.SalesOpen(s.now()) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Ticket sales closed")
		}

		var tier *models.TicketTier
		for i := range event.Tiers {
			if event.Tiers[i].ID == req.TierID {
				tier = &event.Tiers[i]
				break
			}
		}
		if tier == nil {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Tier not found")
		}

		// The conditional increment is authoritative; sold may have moved since the read.
		reserved, err := ticketRepo.IncrementSold(ctx, tier.ID, req.Qty)
		if err != nil {
			return err
		}
		if !reserved {
			return pkgerrors.New(pkgerrors.CodeConflict, "Sold out")
		}

		code, err := s.newTicketCode()
		if err != nil {
			return err
		}
		total := tier.Price * int64(req.Qty)
		ticket := &models.Ticket{
			UserID:   userID,
			EventID:  event.ID,
			TierID:   tier.ID,
			Quantity: req.Qty,
			Total:    total,
			Status:   enums.TicketStatusReserved,
			Code:     code,
		}
		if err := ticketRepo.CreateTicket(ctx, ticket); err != nil {
			return err
		}

		order := &models.Order{UserID: userID, Currency: event.Currency, Total: total}
		meta := orders.TicketMetadata{TicketID: ticket.ID, EventID: event.ID, TierID: tier.ID, Qty: req.Qty}
		if err := s.orders.WithTx(tx).Create(ctx, order, meta); err != nil {
			return err
		}
		txn, err := s.createTransaction(ctx, tx, userID, total, event.Currency, &order.ID, &ticket.ID)
		if err != nil {
			return err
		}

		ticketID := ticket.ID
		resp = &CheckoutResponse{
			TicketID:      &ticketID,
			OrderID:       order.ID,
			TransactionID: txn.ID,
			Amount:        total,
			Currency:      event.Currency,
			Message:       ticketCheckoutMessage,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.AddTicketsReserved(req.Qty)
	return resp, nil
}

// Confirm simulates a gateway success callback for the caller's transaction.
func (s *service) Confirm(ctx context.Context, userID uuid.UUID, req ConfirmRequest) (*ConfirmResponse, error) {
	var resp *ConfirmResponse
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txnRepo := s.transactions.WithTx(tx)

		txn, err := txnRepo.FindByID(ctx, req.TransactionID)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
			}
			return err
		}
		if txn.UserID != userID {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
		}
		if txn.Status == enums.TransactionStatusSuccess {
			resp = &ConfirmResponse{OK: true, Already: true}
			return nil
		}

		won, err := txnRepo.MarkSuccess(ctx, txn.ID)
		if err != nil {
			return err
		}
		if !won {
			resp = &ConfirmResponse{OK: true, Already: true}
			return nil
		}

		if txn.OrderID != nil {
			if err := s.settleOrder(ctx, tx, txn.UserID, *txn.OrderID); err != nil {
				return err
			}
		}
		if txn.TicketID != nil {
			if err := s.issueTicket(ctx, tx, *txn.TicketID); err != nil {
				return err
			}
		}
		resp = &ConfirmResponse{OK: true}
		return nil
	})
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			s.metrics.IncConfirmation(metrics.OutcomeRejected)
		} else {
			s.metrics.IncConfirmation(metrics.OutcomeFailed)
		}
		return nil, err
	}

	if resp.Already {
		s.metrics.IncConfirmation(metrics.OutcomeAlready)
	} else {
		s.metrics.IncConfirmation(metrics.OutcomeConfirmed)
		if s.logg != nil {
			logCtx := s.logg.WithFields(ctx, map[string]any{
				"transaction_id": req.TransactionID.String(),
				"user_id":        userID.String(),
			})
			s.logg.Info(logCtx, "payment transaction confirmed")
		}
	}
	return resp, nil
}

func (s *service) settleOrder(ctx context.Context, tx *gorm.DB, userID, orderID uuid.UUID) error {
	orderRepo := s.orders.WithTx(tx)
	rec, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return err
	}

	if meta, ok := rec.Metadata.(orders.MembershipMetadata); ok {
		if err := s.extendMembership(ctx, tx, userID, meta.Months); err != nil {
			return err
		}
	}
	_, err = orderRepo.MarkPaid(ctx, orderID)
	return err
}

func (s *service) extendMembership(ctx context.Context, tx *gorm.DB, userID uuid.UUID, months int) error {
	userRepo := s.users.WithTx(tx)
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return err
	}
	until := memberships.ExtendUntil(user.MembershipUntil, s.now(), months)
	return userRepo.UpdateMembership(ctx, userID, enums.MembershipStatusActive, &until)
}

func (s *service) issueTicket(ctx context.Context, tx *gorm.DB, ticketID uuid.UUID) error {
	ticketRepo := s.tickets.WithTx(tx)
	ticket, err := ticketRepo.FindTicket(ctx, ticketID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return err
	}
	if ticket.Status == enums.TicketStatusPaid {
		return nil
	}

	payload, err := json.Marshal(ticketQRPayload{Code: ticket.Code, TicketID: ticket.ID})
	if err != nil {
		return fmt.Errorf("encode ticket qr payload: %w", err)
	}
	dataURL, err := s.qr.DataURL(string(payload))
	if err != nil {
		return fmt.Errorf("render ticket qr: %w", err)
	}
	_, err = ticketRepo.MarkPaid(ctx, ticket.ID, dataURL)
	return err
}

func (s *service) createTransaction(ctx context.Context, tx *gorm.DB, userID uuid.UUID, amount int64, currency string, orderID, ticketID *uuid.UUID) (*models.PaymentTransaction, error) {
	txn := &models.PaymentTransaction{
		Provider: enums.PaymentProviderManual,
		Amount:   amount,
		Currency: currency,
		Status:   enums.TransactionStatusPending,
		UserID:   userID,
		OrderID:  orderID,
		TicketID: ticketID,
	}
	if err := s.transactions.WithTx(tx).Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *service) observe(orderType enums.OrderType, started time.Time, errp *error) {
	outcome := metrics.OutcomeCreated
	if err := *errp; err != nil {
		typed := pkgerrors.As(err)
		switch {
		case typed == nil || typed.Code() == pkgerrors.CodeInternal:
			outcome = metrics.OutcomeFailed
		case typed.Code() == pkgerrors.CodeConflict:
			outcome = metrics.OutcomeSoldOut
		default:
			outcome = metrics.OutcomeRejected
		}
	}
	s.metrics.ObserveCheckout(string(orderType), outcome, time.Since(started))
}
