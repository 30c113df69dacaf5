package enums

import "fmt"

// UserRole is the platform role carried in access tokens.
type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleClubAdmin  UserRole = "CLUB_ADMIN"
	UserRoleEditor     UserRole = "EDITOR"
	UserRoleMember     UserRole = "MEMBER"
)

var validUserRoles = []UserRole{
	UserRoleSuperAdmin,
	UserRoleClubAdmin,
	UserRoleEditor,
	UserRoleMember,
}

// String implements fmt.Stringer.
func (u UserRole) String() string {
	return string(u)
}

// IsValid reports whether the value is a known UserRole.
func (u UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}

// StaffRoles may use the admin surface.
var StaffRoles = []UserRole{UserRoleSuperAdmin, UserRoleClubAdmin, UserRoleEditor}
