package enums

import "testing"

func TestParseRoundTrips(t *testing.T) {
	t.Parallel()

	for _, v := range validOrderTypes {
		got, err := ParseOrderType(v.String())
		if err != nil || got != v {
			t.Fatalf("order type %q did not round trip: %v", v, err)
		}
	}
	for _, v := range validUserRoles {
		got, err := ParseUserRole(v.String())
		if err != nil || got != v {
			t.Fatalf("user role %q did not round trip: %v", v, err)
		}
	}
	if _, err := ParseTicketStatus("USED"); err == nil {
		t.Fatal("expected unknown ticket status to fail")
	}
	if _, err := ParseOrderType("membership"); err == nil {
		t.Fatal("order types are case sensitive")
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	if !TransactionStatusSuccess.IsValid() || TransactionStatus("FAILED").IsValid() {
		t.Fatal("unexpected transaction status validity")
	}
	if !MembershipStatusNone.IsValid() || !MatchTypeCup.IsValid() || !MediaTypeDoc.IsValid() {
		t.Fatal("expected known values to be valid")
	}
	for _, role := range StaffRoles {
		if role == UserRoleMember {
			t.Fatal("members are not staff")
		}
	}
}
