package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/config"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/angelmondragon/clubhouse-backend/pkg/security"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Params controls the sample data. Every row is looked up by a natural key first
// so running the seeder twice leaves the database unchanged.
type Params struct {
	AdminEmail    string
	AdminPassword string
	Currency      string
	Password      config.PasswordConfig
	Now           func() time.Time
	Logger        *logger.Logger
}

// Run writes the demo club content in a single transaction.
func Run(ctx context.Context, db txRunner, params Params) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if strings.TrimSpace(params.AdminEmail) == "" || params.AdminPassword == "" {
		return fmt.Errorf("admin credentials are required")
	}
	if params.Currency == "" {
		params.Currency = "KES"
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	hash, err := security.HashPassword(params.AdminPassword, params.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	s := &seeder{params: params, now: params.Now().UTC(), passwordHash: hash}
	if err := db.WithTx(ctx, s.run); err != nil {
		return err
	}
	if params.Logger != nil {
		params.Logger.Info(params.Logger.WithField(ctx, "admin", s.adminEmail()), "seed complete")
	}
	return nil
}

type seeder struct {
	params       Params
	now          time.Time
	passwordHash string
}

func (s *seeder) adminEmail() string {
	return strings.ToLower(strings.TrimSpace(s.params.AdminEmail))
}

func (s *seeder) run(tx *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"settings", s.settings},
		{"admin", s.admin},
		{"sponsors", s.sponsors},
		{"socials", s.socials},
		{"highlights", s.highlights},
		{"news", s.news},
		{"fixtures", s.fixtures},
		{"team", s.team},
		{"shop", s.shop},
		{"faqs", s.faqs},
	}
	for _, step := range steps {
		if err := step.fn(tx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

func firstOrCreate[T any](tx *gorm.DB, row *T, query string, args ...any) error {
	return tx.Where(query, args...).FirstOrCreate(row).Error
}

func (s *seeder) image(tx *gorm.DB, title, path, mime string) (*models.MediaAsset, error) {
	asset := &models.MediaAsset{
		Type:     enums.MediaTypeImage,
		Title:    ptr(title),
		Path:     path,
		MimeType: ptr(mime),
	}
	if err := firstOrCreate(tx, asset, "path = ?", path); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *seeder) settings(tx *gorm.DB) error {
	row := &models.SiteSetting{
		ID:           models.GlobalSettingsID,
		ClubName:     "Your Club Name",
		Tagline:      ptr("The Pride. The Community. The Future."),
		FoundedYear:  ptr(2016),
		Email:        ptr("info@yourclub.com"),
		Phone:        ptr("+254 700 000 000"),
		Stadium:      ptr("Your Stadium"),
		Address:      ptr("Your City, Kenya"),
		PartnerName:  ptr("Official Partner"),
		HeroTitle:    ptr("Club celebrates 10 Years"),
		HeroSubtitle: ptr("A decade of passion, pride and football excellence."),
	}
	return firstOrCreate(tx, row, "id = ?", models.GlobalSettingsID)
}

func (s *seeder) admin(tx *gorm.DB) error {
	until := s.now.AddDate(1, 0, 0)
	row := &models.User{
		Email:           s.adminEmail(),
		PasswordHash:    s.passwordHash,
		Name:            ptr("Club Admin"),
		Role:            enums.UserRoleClubAdmin,
		Membership:      enums.MembershipStatusActive,
		MembershipUntil: &until,
	}
	return firstOrCreate(tx, row, "email = ?", row.Email)
}

func (s *seeder) sponsors(tx *gorm.DB) error {
	logo, err := s.image(tx, "Sponsor Logo", "sponsors/sample-logo.png", "image/png")
	if err != nil {
		return err
	}
	row := &models.Sponsor{
		Name:     "Official Partner",
		Tier:     ptr("Official Partner"),
		LogoID:   &logo.ID,
		Sort:     1,
		IsActive: true,
	}
	return firstOrCreate(tx, row, "name = ?", row.Name)
}

func (s *seeder) socials(tx *gorm.DB) error {
	links := []models.SocialLink{
		{Platform: "Facebook", URL: "https://facebook.com", Sort: 1, IsActive: true},
		{Platform: "Instagram", URL: "https://instagram.com", Sort: 2, IsActive: true},
		{Platform: "X", URL: "https://x.com", Sort: 3, IsActive: true},
		{Platform: "YouTube", URL: "https://youtube.com", Sort: 4, IsActive: true},
	}
	for i := range links {
		if err := firstOrCreate(tx, &links[i], "platform = ?", links[i].Platform); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) highlights(tx *gorm.DB) error {
	thumb, err := s.image(tx, "Highlight Thumb", "highlights/sample-thumb.jpg", "image/jpeg")
	if err != nil {
		return err
	}
	published := s.now.Add(-15 * time.Hour)
	row := &models.Highlight{
		Title:       "Season Highlights: Road to Glory",
		VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		DurationSec: ptr(331),
		PublishedAt: &published,
		ThumbnailID: &thumb.ID,
		Sort:        1,
		IsActive:    true,
	}
	return firstOrCreate(tx, row, "title = ?", row.Title)
}

func (s *seeder) news(tx *gorm.DB) error {
	hero, err := s.image(tx, "News Hero", "news/sample-hero.jpg", "image/jpeg")
	if err != nil {
		return err
	}
	published := s.now
	row := &models.NewsPost{
		Slug:        "welcome-to-our-new-home",
		Title:       "Welcome to our new official website",
		Excerpt:     ptr("News, fixtures, squad, tickets and the members-only shop in one place."),
		ContentHTML: "<p>This is a seeded article. Replace with your real content from the media team.</p>",
		IsFeatured:  true,
		HeroMediaID: &hero.ID,
		PublishedAt: &published,
	}
	return firstOrCreate(tx, row, "slug = ?", row.Slug)
}

func (s *seeder) fixtures(tx *gorm.DB) error {
	league := enums.MatchTypeLeague
	match := &models.Match{
		Competition: "Premier League",
		MatchType:   &league,
		Season:      ptr("2025/26"),
		KickoffAt:   s.now.Add(7 * 24 * time.Hour),
		Venue:       ptr("Your Stadium"),
		IsHome:      true,
		Opponent:    "Rivals FC",
		Status:      models.MatchStatusScheduled,
	}
	if err := firstOrCreate(tx, match, "opponent = ? AND season = ? AND competition = ?", match.Opponent, *match.Season, match.Competition); err != nil {
		return err
	}

	event := &models.TicketEvent{
		MatchID:      match.ID,
		Title:        "Match Tickets",
		Currency:     s.params.Currency,
		SalesOpenAt:  s.now.Add(-24 * time.Hour),
		SalesCloseAt: s.now.Add(6 * 24 * time.Hour),
		IsActive:     true,
	}
	if err := firstOrCreate(tx, event, "match_id = ?", match.ID); err != nil {
		return err
	}

	tiers := []models.TicketTier{
		{EventID: event.ID, Name: "VIP", Price: 1000, Capacity: 200},
		{EventID: event.ID, Name: "Regular", Price: 300, Capacity: 2000},
	}
	for i := range tiers {
		if err := firstOrCreate(tx, &tiers[i], "event_id = ? AND name = ?", event.ID, tiers[i].Name); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) team(tx *gorm.DB) error {
	portrait, err := s.image(tx, "Player Portrait", "team/sample-player.png", "image/png")
	if err != nil {
		return err
	}
	row := &models.TeamMember{
		Slug:       "sample-player",
		FullName:   "Sample Player",
		JerseyNo:   ptr(10),
		Position:   ptr("ST"),
		Team:       "Men's First Team",
		FunFact:    ptr("Loves late winners."),
		BioHTML:    ptr("<p>Short bio.</p>"),
		PortraitID: &portrait.ID,
	}
	return firstOrCreate(tx, row, "slug = ?", row.Slug)
}

func (s *seeder) shop(tx *gorm.DB) error {
	hero, err := s.image(tx, "Home Jersey", "shop/home-jersey.jpg", "image/jpeg")
	if err != nil {
		return err
	}
	row := &models.Product{
		Slug:        "home-jersey",
		Title:       "Home Jersey",
		Description: ptr("<p>Replica jersey.</p>"),
		Category:    ptr("KIT"),
		KitType:     ptr("HOME"),
		Price:       2000,
		Currency:    s.params.Currency,
		HeroMediaID: &hero.ID,
		IsActive:    true,
	}
	return firstOrCreate(tx, row, "slug = ?", row.Slug)
}

func (s *seeder) faqs(tx *gorm.DB) error {
	rows := []models.FAQ{
		{Question: "How do I become a member?", AnswerHTML: "<p>Register an account and purchase membership.</p>", Sort: 1, IsActive: true},
		{Question: "Do I need membership to shop?", AnswerHTML: "<p>Yes, the shop is for members only.</p>", Sort: 2, IsActive: true},
	}
	for i := range rows {
		if err := firstOrCreate(tx, &rows[i], "question = ?", rows[i].Question); err != nil {
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
