package orders

import (
	"testing"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMetadataEncodeDecodeVariants(t *testing.T) {
	t.Parallel()

	raw, err := EncodeMetadata(MembershipMetadata{Months: 3, MonthlyPrice: 500})
	require.NoError(t, err)
	require.JSONEq(t, `{"months":3,"monthlyPrice":500}`, string(raw))
	require.Equal(t, MembershipMetadata{Months: 3, MonthlyPrice: 500}, DecodeMetadata(enums.OrderTypeMembership, raw))

	ticket := TicketMetadata{TicketID: uuid.New(), EventID: uuid.New(), TierID: uuid.New(), Qty: 2}
	raw, err = EncodeMetadata(ticket)
	require.NoError(t, err)
	require.Equal(t, ticket, DecodeMetadata(enums.OrderTypeTickets, raw))

	raw, err = EncodeMetadata(ShopMetadata{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(raw))

	_, err = EncodeMetadata(nil)
	require.Error(t, err)
}

func TestDecodeMetadataFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cases := map[string]datatypes.JSON{
		"empty":     nil,
		"malformed": datatypes.JSON(`{"months":`),
		"zero":      datatypes.JSON(`{"months":0}`),
		"wrongType": datatypes.JSON(`{"months":"two"}`),
	}
	for name, raw := range cases {
		got := DecodeMetadata(enums.OrderTypeMembership, raw)
		require.Equal(t, MembershipMetadata{Months: 1}, got, name)
	}

	require.Equal(t, TicketMetadata{}, DecodeMetadata(enums.OrderTypeTickets, datatypes.JSON(`nope`)))
	require.Equal(t, ShopMetadata{}, DecodeMetadata(enums.OrderTypeShop, datatypes.JSON(`{"x":1}`)))
	require.Equal(t, enums.OrderTypeShop, DefaultMetadata("UNKNOWN").OrderType())
}
