package site

import (
	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
)

const defaultClubName = "Your Club"

var settingsMedia = []string{"HeroMedia", "HeaderLogo", "PartnerLogo", "HomeShopImage", "HomeMembershipImage"}

// SettingsView is the global settings row with every media reference resolved.
type SettingsView struct {
	models.SiteSetting
	HeroURL                *string `json:"heroUrl"`
	HeaderLogoURL          *string `json:"headerLogoUrl"`
	PartnerLogoURL         *string `json:"partnerLogoUrl"`
	HomeShopImageURL       *string `json:"homeShopImageUrl"`
	HomeMembershipImageURL *string `json:"homeMembershipImageUrl"`
}

func toSettingsView(s models.SiteSetting, urls media.URLResolver) SettingsView {
	return SettingsView{
		SiteSetting:            s,
		HeroURL:                urls.AssetURL(s.HeroMedia),
		HeaderLogoURL:          urls.AssetURL(s.HeaderLogo),
		PartnerLogoURL:         urls.AssetURL(s.PartnerLogo),
		HomeShopImageURL:       urls.AssetURL(s.HomeShopImage),
		HomeMembershipImageURL: urls.AssetURL(s.HomeMembershipImage),
	}
}

// SettingsInput is a partial update of the global settings row.
type SettingsInput struct {
	ClubName              *string              `json:"clubName,omitempty" validate:"omitempty,min=2"`
	Tagline               types.NullableString `json:"tagline"`
	FoundedYear           types.Nullable[int]  `json:"foundedYear"`
	Email                 types.NullableString `json:"email"`
	Phone                 types.NullableString `json:"phone"`
	Stadium               types.NullableString `json:"stadium"`
	Address               types.NullableString `json:"address"`
	HeroTitle             types.NullableString `json:"heroTitle"`
	HeroSubtitle          types.NullableString `json:"heroSubtitle"`
	PartnerName           types.NullableString `json:"partnerName"`
	HeroMediaID           types.NullableUUID   `json:"heroMediaId"`
	HeaderLogoID          types.NullableUUID   `json:"headerLogoId"`
	PartnerLogoID         types.NullableUUID   `json:"partnerLogoId"`
	HomeShopImageID       types.NullableUUID   `json:"homeShopImageId"`
	HomeMembershipImageID types.NullableUUID   `json:"homeMembershipImageId"`
}

func (in SettingsInput) apply(s *models.SiteSetting) {
	if in.ClubName != nil {
		s.ClubName = *in.ClubName
	}
	in.Tagline.Apply(&s.Tagline)
	in.FoundedYear.Apply(&s.FoundedYear)
	in.Email.Apply(&s.Email)
	in.Phone.Apply(&s.Phone)
	in.Stadium.Apply(&s.Stadium)
	in.Address.Apply(&s.Address)
	in.HeroTitle.Apply(&s.HeroTitle)
	in.HeroSubtitle.Apply(&s.HeroSubtitle)
	in.PartnerName.Apply(&s.PartnerName)
	in.HeroMediaID.Apply(&s.HeroMediaID)
	in.HeaderLogoID.Apply(&s.HeaderLogoID)
	in.PartnerLogoID.Apply(&s.PartnerLogoID)
	in.HomeShopImageID.Apply(&s.HomeShopImageID)
	in.HomeMembershipImageID.Apply(&s.HomeMembershipImageID)
}
