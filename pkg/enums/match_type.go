package enums

import "fmt"

// MatchType classifies a fixture's competition format.
type MatchType string

const (
	MatchTypeLeague   MatchType = "LEAGUE"
	MatchTypeCup      MatchType = "CUP"
	MatchTypeFriendly MatchType = "FRIENDLY"
)

var validMatchTypes = []MatchType{
	MatchTypeLeague,
	MatchTypeCup,
	MatchTypeFriendly,
}

// String implements fmt.Stringer.
func (m MatchType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MatchType.
func (m MatchType) IsValid() bool {
	for _, candidate := range validMatchTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMatchType converts raw input into a MatchType.
func ParseMatchType(value string) (MatchType, error) {
	for _, candidate := range validMatchTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid match type %q", value)
}
