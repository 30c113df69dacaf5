// Package memberships evaluates and extends club membership windows.
package memberships

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMonths is used when an order does not record a duration.
const DefaultMonths = 1

// IsActive reports whether the user currently holds a membership: status ACTIVE
// and either no expiry or an expiry after now.
func IsActive(user *models.User, now time.Time) bool {
	if user == nil || user.Membership != enums.MembershipStatusActive {
		return false
	}
	return user.MembershipUntil == nil || user.MembershipUntil.After(now)
}

// ExtendUntil stacks months on top of an unexpired window, otherwise starts
// from now.
func ExtendUntil(current *time.Time, now time.Time, months int) time.Time {
	if months < 1 {
		months = DefaultMonths
	}
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.AddDate(0, months, 0)
}

type userLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Checker loads users and evaluates IsActive against the clock.
type Checker struct {
	users userLoader
	now   func() time.Time
}

func NewChecker(users userLoader, now func() time.Time) (*Checker, error) {
	if users == nil {
		return nil, fmt.Errorf("user loader required")
	}
	if now == nil {
		now = time.Now
	}
	return &Checker{users: users, now: now}, nil
}

// IsActiveUser reports whether userID holds an active membership. A token whose
// user row is gone is rejected as unauthorized.
func (c *Checker) IsActiveUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, pkgerrors.New(pkgerrors.CodeUnauthorized, "Unauthorized")
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return IsActive(user, c.now()), nil
}
