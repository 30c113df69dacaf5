package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID              uuid.UUID              `json:"id"`
	Email           string                 `json:"email"`
	Name            *string                `json:"name"`
	Role            enums.UserRole         `json:"role"`
	Membership      enums.MembershipStatus `json:"membership"`
	MembershipUntil *time.Time             `json:"membershipUntil"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Name         *string
	Role         enums.UserRole
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		Membership:      u.Membership,
		MembershipUntil: u.MembershipUntil,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = enums.UserRoleMember
	}
	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
		Role:         role,
		Membership:   enums.MembershipStatusNone,
	}
}
