package orders

import (
	"encoding/json"
	"fmt"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Metadata is the order type specific payload. Exactly one variant exists per
// order type and it is only ever serialized by the repository.
type Metadata interface {
	OrderType() enums.OrderType
}

// MembershipMetadata is read back by confirmation to extend the member window.
type MembershipMetadata struct {
	Months       int   `json:"months"`
	MonthlyPrice int64 `json:"monthlyPrice"`
}

func (MembershipMetadata) OrderType() enums.OrderType { return enums.OrderTypeMembership }

// TicketMetadata links a TICKETS order to the reserved ticket.
type TicketMetadata struct {
	TicketID uuid.UUID `json:"ticketId"`
	EventID  uuid.UUID `json:"eventId"`
	TierID   uuid.UUID `json:"tierId"`
	Qty      int       `json:"qty"`
}

func (TicketMetadata) OrderType() enums.OrderType { return enums.OrderTypeTickets }

type ShopMetadata struct{}

func (ShopMetadata) OrderType() enums.OrderType { return enums.OrderTypeShop }

// DefaultMetadata returns the zero variant for the order type.
func DefaultMetadata(orderType enums.OrderType) Metadata {
	switch orderType {
	case enums.OrderTypeMembership:
		return MembershipMetadata{Months: 1}
	case enums.OrderTypeTickets:
		return TicketMetadata{}
	default:
		return ShopMetadata{}
	}
}

// EncodeMetadata serializes a variant for the orders.metadata column.
func EncodeMetadata(meta Metadata) (datatypes.JSON, error) {
	if meta == nil {
		return nil, fmt.Errorf("order metadata required")
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode order metadata: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// DecodeMetadata never fails: unreadable payloads yield DefaultMetadata.
func DecodeMetadata(orderType enums.OrderType, raw datatypes.JSON) Metadata {
	switch orderType {
	case enums.OrderTypeMembership:
		var m MembershipMetadata
		if len(raw) == 0 || json.Unmarshal(raw, &m) != nil || m.Months < 1 {
			m.Months = 1
		}
		return m
	case enums.OrderTypeTickets:
		var m TicketMetadata
		if len(raw) == 0 || json.Unmarshal(raw, &m) != nil {
			return TicketMetadata{}
		}
		return m
	default:
		return ShopMetadata{}
	}
}
