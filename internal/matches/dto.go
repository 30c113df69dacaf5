package matches

import (
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
)

type CreateMatchInput struct {
	Competition string           `json:"competition" validate:"required,min=2"`
	MatchType   *enums.MatchType `json:"matchType,omitempty"`
	Season      *string          `json:"season,omitempty"`
	KickoffAt   time.Time        `json:"kickoffAt" validate:"required"`
	Venue       *string          `json:"venue,omitempty"`
	IsHome      bool             `json:"isHome"`
	Opponent    string           `json:"opponent" validate:"required,min=2"`
	HomeScore   *int             `json:"homeScore,omitempty" validate:"omitempty,min=0"`
	AwayScore   *int             `json:"awayScore,omitempty" validate:"omitempty,min=0"`
	Status      string           `json:"status,omitempty"`
}

type UpdateMatchInput struct {
	Competition *string                         `json:"competition,omitempty" validate:"omitempty,min=2"`
	MatchType   types.Nullable[enums.MatchType] `json:"matchType"`
	Season      types.NullableString            `json:"season"`
	KickoffAt   *time.Time                      `json:"kickoffAt,omitempty"`
	Venue       types.NullableString            `json:"venue"`
	IsHome      *bool                           `json:"isHome,omitempty"`
	Opponent    *string                         `json:"opponent,omitempty" validate:"omitempty,min=2"`
	HomeScore   types.Nullable[int]             `json:"homeScore"`
	AwayScore   types.Nullable[int]             `json:"awayScore"`
	Status      *string                         `json:"status,omitempty" validate:"omitempty,min=1"`
}

func (in UpdateMatchInput) updates() map[string]any {
	out := map[string]any{}
	if in.Competition != nil {
		out["competition"] = *in.Competition
	}
	if in.MatchType.Set {
		out["match_type"] = in.MatchType.Value
	}
	if in.Season.Set {
		out["season"] = in.Season.Value
	}
	if in.KickoffAt != nil {
		out["kickoff_at"] = *in.KickoffAt
	}
	if in.Venue.Set {
		out["venue"] = in.Venue.Value
	}
	if in.IsHome != nil {
		out["is_home"] = *in.IsHome
	}
	if in.Opponent != nil {
		out["opponent"] = *in.Opponent
	}
	if in.HomeScore.Set {
		out["home_score"] = in.HomeScore.Value
	}
	if in.AwayScore.Set {
		out["away_score"] = in.AwayScore.Value
	}
	if in.Status != nil {
		out["status"] = *in.Status
	}
	return out
}
