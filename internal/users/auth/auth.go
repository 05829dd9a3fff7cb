// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

/*
Package auth implements the authentication surface: login, logout, identity
echo, and the password reset flow.

# Token model

One symmetric-key JWT per login, delivered both in the response body and as
the "auth" cookie. Expiry is the only invalidation path — there are no
refresh tokens and no server-side session rows. Logout clears the cookie;
an already-captured token stays valid until it expires.

# Password reset

One-shot reset tokens live in Redis with a TTL, stored hashed so a cache
dump cannot be replayed. Delivery goes through the [Mailer] interface; the
SMTP implementation is out of scope and development uses [LogMailer].
*/
package auth

import (
	"context"
	"time"
)

// ResetTokenTTL is how long a password reset token stays redeemable.
const ResetTokenTTL = 30 * time.Minute

// resetTokenBytes is the entropy of a reset token before encoding.
const resetTokenBytes = 32

// # Collaborator Contracts

// ResetTokenRepository stores one-shot password reset tokens.
//
// Implementations receive the token already hashed; the plaintext only ever
// travels in the reset email.
type ResetTokenRepository interface {
	/*
		Save stores tokenHash → userID with the given TTL, replacing any
		previous token for a different hash.

		Returns:
		  - error: Storage failures
	*/
	Save(context context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Consume atomically fetches and deletes the userID for a token hash,
		guaranteeing single use.

		Returns:
		  - string: The owning userID
		  - error: apperr.NotFound for unknown/expired tokens, storage failures
	*/
	Consume(context context.Context, tokenHash string) (string, error)
}

// Mailer delivers transactional mail. Template rendering and SMTP transport
// live behind this boundary.
type Mailer interface {
	/*
		SendPasswordReset delivers the reset token to the account's address.

		Returns:
		  - error: Delivery failures
	*/
	SendPasswordReset(context context.Context, email, userName, resetToken string) error
}
