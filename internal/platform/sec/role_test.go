// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moviebunkers/api/internal/platform/sec"
)

/*
TestUserRole_AtLeast verifies the role hierarchy ordering.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name    string
		caller  sec.UserRole
		minimum sec.UserRole
		allowed bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_user", sec.RoleAdmin, sec.RoleUser, true},
		{"moderator_meets_user", sec.RoleModerator, sec.RoleUser, true},
		{"moderator_below_admin", sec.RoleModerator, sec.RoleAdmin, false},
		{"user_below_moderator", sec.RoleUser, sec.RoleModerator, false},
		{"guest_below_user", sec.RoleGuest, sec.RoleUser, false},
		{"guest_meets_guest", sec.RoleGuest, sec.RoleGuest, true},
		{"unknown_below_everything", sec.UserRole("SuperUser"), sec.RoleGuest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.caller.AtLeast(tt.minimum))
		})
	}
}

/*
TestUserRole_IsValid verifies the closed role enumeration.
*/
func TestUserRole_IsValid(t *testing.T) {
	for _, role := range []sec.UserRole{sec.RoleAdmin, sec.RoleModerator, sec.RoleUser, sec.RoleGuest} {
		assert.True(t, role.IsValid(), string(role))
	}

	assert.False(t, sec.UserRole("").IsValid())
	assert.False(t, sec.UserRole("admin").IsValid(), "roles are case-sensitive")
	assert.False(t, sec.UserRole("Owner").IsValid())
}

/*
TestRoleAllowed verifies explicit allow-set membership.
*/
func TestRoleAllowed(t *testing.T) {
	allowed := []sec.UserRole{sec.RoleAdmin, sec.RoleModerator}

	assert.True(t, sec.RoleAllowed(sec.RoleAdmin, allowed))
	assert.True(t, sec.RoleAllowed(sec.RoleModerator, allowed))
	assert.False(t, sec.RoleAllowed(sec.RoleUser, allowed))
	assert.False(t, sec.RoleAllowed(sec.RoleUser, nil))
}
