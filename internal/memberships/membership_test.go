package memberships

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var t0 = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

func TestIsActive(t *testing.T) {
	t.Parallel()

	future := t0.Add(time.Hour)
	past := t0.Add(-time.Hour)
	cases := []struct {
		name string
		user *models.User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "none", user: &models.User{Membership: enums.MembershipStatusNone}, want: false},
		{name: "active without expiry", user: &models.User{Membership: enums.MembershipStatusActive}, want: true},
		{name: "active future expiry", user: &models.User{Membership: enums.MembershipStatusActive, MembershipUntil: &future}, want: true},
		{name: "active lapsed", user: &models.User{Membership: enums.MembershipStatusActive, MembershipUntil: &past}, want: false},
		{name: "active expiring now", user: &models.User{Membership: enums.MembershipStatusActive, MembershipUntil: &t0}, want: false},
		{name: "expired status", user: &models.User{Membership: enums.MembershipStatusExpired, MembershipUntil: &future}, want: false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsActive(tc.user, t0); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestExtendUntil(t *testing.T) {
	t.Parallel()

	if got := ExtendUntil(nil, t0, 1); !got.Equal(t0.AddDate(0, 1, 0)) {
		t.Fatalf("fresh membership should start now, got %v", got)
	}

	remaining := t0.Add(10 * 24 * time.Hour)
	if got := ExtendUntil(&remaining, t0, 1); !got.Equal(remaining.AddDate(0, 1, 0)) {
		t.Fatalf("extension should stack on unexpired time, got %v", got)
	}

	lapsed := t0.Add(-48 * time.Hour)
	if got := ExtendUntil(&lapsed, t0, 3); !got.Equal(t0.AddDate(0, 3, 0)) {
		t.Fatalf("lapsed membership should restart from now, got %v", got)
	}

	if got := ExtendUntil(nil, t0, 0); !got.Equal(t0.AddDate(0, 1, 0)) {
		t.Fatalf("non-positive months should default to one, got %v", got)
	}
}

func TestCheckerIsActiveUser(t *testing.T) {
	t.Parallel()

	future := t0.Add(time.Hour)
	active := &models.User{ID: uuid.New(), Membership: enums.MembershipStatusActive, MembershipUntil: &future}
	loader := loaderFunc(func(_ context.Context, id uuid.UUID) (*models.User, error) {
		switch id {
		case active.ID:
			return active, nil
		case uuid.Nil:
			return nil, errors.New("boom")
		}
		return nil, gorm.ErrRecordNotFound
	})

	checker, err := NewChecker(loader, func() time.Time { return t0 })
	if err != nil {
		t.Fatalf("new checker: %v", err)
	}

	if ok, err := checker.IsActiveUser(context.Background(), active.ID); err != nil || !ok {
		t.Fatalf("expected active, got %v (%v)", ok, err)
	}
	ok, err := checker.IsActiveUser(context.Background(), uuid.New())
	if ok || !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unknown user unauthorized, got %v (%v)", ok, err)
	}
	if _, err := checker.IsActiveUser(context.Background(), uuid.Nil); err == nil {
		t.Fatal("expected loader error to surface")
	}
}

type loaderFunc func(context.Context, uuid.UUID) (*models.User, error)

func (f loaderFunc) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return f(ctx, id)
}
