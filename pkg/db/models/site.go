package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GlobalSettingsID is the primary key of the single site settings row.
const GlobalSettingsID = "global"

// SiteSetting holds club wide copy and imagery shown on the public site.
type SiteSetting struct {
	ID                    string      `gorm:"column:id;primaryKey" json:"id"`
	ClubName              string      `gorm:"column:club_name;not null" json:"clubName"`
	Tagline               *string     `gorm:"column:tagline" json:"tagline"`
	FoundedYear           *int        `gorm:"column:founded_year" json:"foundedYear"`
	Email                 *string     `gorm:"column:email" json:"email"`
	Phone                 *string     `gorm:"column:phone" json:"phone"`
	Stadium               *string     `gorm:"column:stadium" json:"stadium"`
	Address               *string     `gorm:"column:address" json:"address"`
	HeroTitle             *string     `gorm:"column:hero_title" json:"heroTitle"`
	HeroSubtitle          *string     `gorm:"column:hero_subtitle" json:"heroSubtitle"`
	PartnerName           *string     `gorm:"column:partner_name" json:"partnerName"`
	HeroMediaID           *uuid.UUID  `gorm:"column:hero_media_id;type:uuid" json:"heroMediaId"`
	HeroMedia             *MediaAsset `gorm:"foreignKey:HeroMediaID" json:"heroMedia,omitempty"`
	HeaderLogoID          *uuid.UUID  `gorm:"column:header_logo_id;type:uuid" json:"headerLogoId"`
	HeaderLogo            *MediaAsset `gorm:"foreignKey:HeaderLogoID" json:"headerLogo,omitempty"`
	PartnerLogoID         *uuid.UUID  `gorm:"column:partner_logo_id;type:uuid" json:"partnerLogoId"`
	PartnerLogo           *MediaAsset `gorm:"foreignKey:PartnerLogoID" json:"partnerLogo,omitempty"`
	HomeShopImageID       *uuid.UUID  `gorm:"column:home_shop_image_id;type:uuid" json:"homeShopImageId"`
	HomeShopImage         *MediaAsset `gorm:"foreignKey:HomeShopImageID" json:"homeShopImage,omitempty"`
	HomeMembershipImageID *uuid.UUID  `gorm:"column:home_membership_image_id;type:uuid" json:"homeMembershipImageId"`
	HomeMembershipImage   *MediaAsset `gorm:"foreignKey:HomeMembershipImageID" json:"homeMembershipImage,omitempty"`
	UpdatedAt             time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

type FAQ struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Question   string    `gorm:"column:question;not null" json:"question"`
	AnswerHTML string    `gorm:"column:answer_html;not null" json:"answerHtml"`
	Sort       int       `gorm:"column:sort;not null" json:"sort"`
	IsActive   bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (FAQ) TableName() string { return "faqs" }

func (f *FAQ) BeforeCreate(*gorm.DB) error {
	assignID(&f.ID)
	return nil
}

// Highlight is an external match video shown on the home page.
type Highlight struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string      `gorm:"column:title;not null" json:"title"`
	VideoURL    string      `gorm:"column:video_url;not null" json:"videoUrl"`
	DurationSec *int        `gorm:"column:duration_sec" json:"durationSec"`
	PublishedAt *time.Time  `gorm:"column:published_at" json:"publishedAt"`
	ThumbnailID *uuid.UUID  `gorm:"column:thumbnail_id;type:uuid" json:"thumbnailId"`
	Thumbnail   *MediaAsset `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	Sort        int         `gorm:"column:sort;not null" json:"sort"`
	IsActive    bool        `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (h *Highlight) BeforeCreate(*gorm.DB) error {
	assignID(&h.ID)
	return nil
}

type SocialLink struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Platform  string    `gorm:"column:platform;not null" json:"platform"`
	URL       string    `gorm:"column:url;not null" json:"url"`
	Sort      int       `gorm:"column:sort;not null" json:"sort"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (s *SocialLink) BeforeCreate(*gorm.DB) error {
	assignID(&s.ID)
	return nil
}
