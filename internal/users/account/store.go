// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package account

import "context"

// # Repository Contracts

// Repository defines the persistence contract for user accounts.
type Repository interface {
	/*
		Create inserts a new account row.

		Parameters:
		  - context: context.Context
		  - user: *User (ID, hash and timestamps already populated)

		Returns:
		  - error: apperr.Conflict on duplicate userName/email, storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID retrieves an account by its unique ID.

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUserName retrieves an account by its exact userName.

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByUserName(context context.Context, userName string) (*User, error)

	/*
		FindByEmail retrieves an account by case-folded email.
		The caller must fold the email before calling.

		Returns:
		  - *User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, foldedEmail string) (*User, error)

	/*
		List returns accounts ordered by creation time, newest first.

		Returns:
		  - []*User: One page of accounts
		  - int: Total account count (pre-pagination)
		  - error: Storage failures
	*/
	List(context context.Context, limit, offset int) ([]*User, int, error)

	/*
		Update persists the mutable fields (role, status, password hash)
		of an existing account.

		Returns:
		  - error: apperr.NotFound if the account vanished, storage failures
	*/
	Update(context context.Context, user *User) error
}
