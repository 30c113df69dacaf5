package models

// All lists every persisted model in dependency order. Used by SQLite
// automigration and test harnesses; postgres schemas come from goose migrations.
func All() []any {
	return []any{
		&MediaAsset{},
		&User{},
		&Product{},
		&Match{},
		&TicketEvent{},
		&TicketTier{},
		&Ticket{},
		&Order{},
		&OrderItem{},
		&PaymentTransaction{},
		&NewsPost{},
		&TeamMember{},
		&Sponsor{},
		&SiteSetting{},
		&FAQ{},
		&Highlight{},
		&SocialLink{},
	}
}
