package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
)

// Match statuses.
const (
	MatchStatusScheduled = "SCHEDULED"
	MatchStatusFullTime  = "FT"
)

// Match is a fixture. Scores are set once the match is played.
type Match struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Competition string           `gorm:"column:competition;not null" json:"competition"`
	MatchType   *enums.MatchType `gorm:"column:match_type;type:text" json:"matchType"`
	Season      *string          `gorm:"column:season;index" json:"season"`
	KickoffAt   time.Time        `gorm:"column:kickoff_at;not null;index" json:"kickoffAt"`
	Venue       *string          `gorm:"column:venue" json:"venue"`
	IsHome      bool             `gorm:"column:is_home;not null" json:"isHome"`
	Opponent    string           `gorm:"column:opponent;not null" json:"opponent"`
	HomeScore   *int             `gorm:"column:home_score" json:"homeScore"`
	AwayScore   *int             `gorm:"column:away_score" json:"awayScore"`
	Status      string           `gorm:"column:status;not null" json:"status"`
	TicketEvent *TicketEvent     `gorm:"foreignKey:MatchID" json:"ticketEvent,omitempty"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (m *Match) BeforeCreate(*gorm.DB) error {
	assignID(&m.ID)
	return nil
}
