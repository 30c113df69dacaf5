package payments

import "github.com/google/uuid"

const (
	checkoutMessage       = "DEV mode: call /payments/mock/confirm to simulate payment success."
	ticketCheckoutMessage = "DEV mode: call /payments/mock/confirm to simulate payment success and generate QR."
)

// MembershipCheckoutRequest buys Months months of membership. Months defaults to 1.
type MembershipCheckoutRequest struct {
	Months *int `json:"months,omitempty" validate:"omitempty,min=1,max=24"`
}

type ShopItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Qty       int       `json:"qty" validate:"min=1,max=20"`
}

type ShopCheckoutRequest struct {
	Items []ShopItem `json:"items" validate:"required,min=1,dive"`
}

type TicketCheckoutRequest struct {
	EventID uuid.UUID `json:"eventId" validate:"required"`
	TierID  uuid.UUID `json:"tierId" validate:"required"`
	Qty     int       `json:"qty" validate:"min=1,max=20"`
}

type ConfirmRequest struct {
	TransactionID uuid.UUID `json:"transactionId" validate:"required"`
}

// CheckoutResponse is returned by every checkout. TicketID is only set for tickets.
type CheckoutResponse struct {
	TicketID      *uuid.UUID `json:"ticketId,omitempty"`
	OrderID       uuid.UUID  `json:"orderId"`
	TransactionID uuid.UUID  `json:"transactionId"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	Message       string     `json:"message"`
}

type ConfirmResponse struct {
	OK      bool `json:"ok"`
	Already bool `json:"already,omitempty"`
}

type ticketQRPayload struct {
	Code     string    `json:"code"`
	TicketID uuid.UUID `json:"ticketId"`
}
