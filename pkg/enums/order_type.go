package enums

import "fmt"

// OrderType classifies what an order pays for.
type OrderType string

const (
	OrderTypeMembership OrderType = "MEMBERSHIP"
	OrderTypeShop       OrderType = "SHOP"
	OrderTypeTickets    OrderType = "TICKETS"
)

var validOrderTypes = []OrderType{
	OrderTypeMembership,
	OrderTypeShop,
	OrderTypeTickets,
}

// String implements fmt.Stringer.
func (o OrderType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderType.
func (o OrderType) IsValid() bool {
	for _, candidate := range validOrderTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderType converts raw input into a OrderType.
func ParseOrderType(value string) (OrderType, error) {
	for _, candidate := range validOrderTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order type %q", value)
}
