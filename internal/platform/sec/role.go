// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "Admin"

	// Can manage catalog content (titles, seasons, episodes, links)
	RoleModerator UserRole = "Moderator"

	// Default role for standard registered users
	RoleUser UserRole = "User"

	// Logged-in account with read-only personal state (watch lists)
	RoleGuest UserRole = "Guest"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsValid reports whether the role is one of the closed enumeration values.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleModerator:
		return 30
	case RoleUser:
		return 20
	case RoleGuest:
		return 10
	default:
		return 0
	}
}

// RoleAllowed reports whether the caller's role is a member of the route's
// allowed-role set. It is a pure function so route policies can be tested
// without any HTTP machinery.
func RoleAllowed(callerRole UserRole, allowedRoles []UserRole) bool {
	for _, allowed := range allowedRoles {
		if callerRole == allowed {
			return true
		}
	}
	return false
}
