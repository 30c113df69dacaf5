package team

import (
	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
	"github.com/google/uuid"
)

const (
	staffGroup = "Staff"
	otherGroup = "Other"
)

type MemberView struct {
	ID          uuid.UUID        `json:"id"`
	Slug        string           `json:"slug"`
	FullName    string           `json:"fullName"`
	JerseyNo    *int             `json:"jerseyNo"`
	Position    *string          `json:"position"`
	Team        string           `json:"team"`
	IsStaff     bool             `json:"isStaff"`
	PortraitURL *string          `json:"portraitUrl"`
	BioHTML     *string          `json:"bioHtml,omitempty"`
	FunFact     *string          `json:"funFact,omitempty"`
	PortraitID  *uuid.UUID       `json:"portraitId,omitempty"`
	Portrait    *media.AssetView `json:"portrait,omitempty"`
}

// Roster is the grouped squad listing. Team and IsStaff echo the filters.
type Roster struct {
	Team    *string                 `json:"team"`
	IsStaff *bool                   `json:"isStaff"`
	Grouped map[string][]MemberView `json:"grouped"`
}

func toView(m models.TeamMember, urls media.URLResolver, detailed bool) MemberView {
	view := MemberView{
		ID:          m.ID,
		Slug:        m.Slug,
		FullName:    m.FullName,
		JerseyNo:    m.JerseyNo,
		Position:    m.Position,
		Team:        m.Team,
		IsStaff:     m.IsStaff,
		PortraitURL: urls.AssetURL(m.Portrait),
	}
	if detailed {
		view.BioHTML = m.BioHTML
		view.FunFact = m.FunFact
		view.PortraitID = m.PortraitID
		view.Portrait = urls.View(m.Portrait)
	}
	return view
}

func groupName(m models.TeamMember) string {
	switch {
	case m.IsStaff:
		return staffGroup
	case m.Position == nil || *m.Position == "":
		return otherGroup
	default:
		return *m.Position
	}
}

type CreateMemberInput struct {
	Slug       string     `json:"slug" validate:"required,min=2"`
	FullName   string     `json:"fullName" validate:"required,min=2"`
	JerseyNo   *int       `json:"jerseyNo,omitempty" validate:"omitempty,min=0,max=99"`
	Position   *string    `json:"position,omitempty"`
	Team       string     `json:"team" validate:"required"`
	BioHTML    *string    `json:"bioHtml,omitempty"`
	FunFact    *string    `json:"funFact,omitempty"`
	IsStaff    bool       `json:"isStaff"`
	PortraitID *uuid.UUID `json:"portraitId,omitempty"`
}

type UpdateMemberInput struct {
	Slug       *string              `json:"slug,omitempty" validate:"omitempty,min=2"`
	FullName   *string              `json:"fullName,omitempty" validate:"omitempty,min=2"`
	JerseyNo   types.Nullable[int]  `json:"jerseyNo"`
	Position   types.NullableString `json:"position"`
	Team       *string              `json:"team,omitempty" validate:"omitempty,min=1"`
	BioHTML    types.NullableString `json:"bioHtml"`
	FunFact    types.NullableString `json:"funFact"`
	IsStaff    *bool                `json:"isStaff,omitempty"`
	PortraitID types.NullableUUID   `json:"portraitId"`
}

func (in UpdateMemberInput) updates() map[string]any {
	out := map[string]any{}
	if in.Slug != nil {
		out["slug"] = *in.Slug
	}
	if in.FullName != nil {
		out["full_name"] = *in.FullName
	}
	if in.JerseyNo.Set {
		out["jersey_no"] = in.JerseyNo.Value
	}
	if in.Position.Set {
		out["position"] = in.Position.Value
	}
	if in.Team != nil {
		out["team"] = *in.Team
	}
	if in.BioHTML.Set {
		out["bio_html"] = in.BioHTML.Value
	}
	if in.FunFact.Set {
		out["fun_fact"] = in.FunFact.Value
	}
	if in.IsStaff != nil {
		out["is_staff"] = *in.IsStaff
	}
	if in.PortraitID.Set {
		out["portrait_id"] = in.PortraitID.Value
	}
	return out
}
