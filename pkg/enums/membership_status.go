package enums

import "fmt"

// MembershipStatus captures a supporter's club membership state.
type MembershipStatus string

const (
	MembershipStatusNone    MembershipStatus = "NONE"
	MembershipStatusActive  MembershipStatus = "ACTIVE"
	MembershipStatusExpired MembershipStatus = "EXPIRED"
)

var validMembershipStatuses = []MembershipStatus{
	MembershipStatusNone,
	MembershipStatusActive,
	MembershipStatusExpired,
}

// String implements fmt.Stringer.
func (m MembershipStatus) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MembershipStatus.
func (m MembershipStatus) IsValid() bool {
	for _, candidate := range validMembershipStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMembershipStatus converts raw input into a MembershipStatus.
func ParseMembershipStatus(value string) (MembershipStatus, error) {
	for _, candidate := range validMembershipStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid membership status %q", value)
}
