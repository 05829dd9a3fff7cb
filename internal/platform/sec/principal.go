// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package sec

// Principal is the resolved identity attached to an authenticated request.
//
// It is the output of the per-request account lookup, NOT of the token
// alone: the middleware resolves the token subject against the user store
// on every request, so Role here is always current.
type Principal struct {
	UserID   string
	UserName string
	Email    string
	Role     UserRole
}
