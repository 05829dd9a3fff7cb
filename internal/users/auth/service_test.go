// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebunkers/api/internal/platform/apperr"
	"github.com/moviebunkers/api/internal/platform/sec"
	"github.com/moviebunkers/api/internal/users/account"
	"github.com/moviebunkers/api/internal/users/auth"
)

// fakeAccountRepository backs a real account.Service for auth tests.
type fakeAccountRepository struct {
	byUserName map[string]*account.User
	byEmail    map[string]*account.User
	byID       map[string]*account.User
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		byUserName: map[string]*account.User{},
		byEmail:    map[string]*account.User{},
		byID:       map[string]*account.User{},
	}
}

func (r *fakeAccountRepository) add(user *account.User) {
	r.byUserName[user.UserName] = user
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
}

func (r *fakeAccountRepository) Create(_ context.Context, user *account.User) error {
	r.add(user)
	return nil
}

func (r *fakeAccountRepository) FindByID(_ context.Context, id string) (*account.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeAccountRepository) FindByUserName(_ context.Context, userName string) (*account.User, error) {
	if user, ok := r.byUserName[userName]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeAccountRepository) FindByEmail(_ context.Context, foldedEmail string) (*account.User, error) {
	if user, ok := r.byEmail[foldedEmail]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeAccountRepository) List(_ context.Context, limit, offset int) ([]*account.User, int, error) {
	return nil, 0, nil
}

func (r *fakeAccountRepository) Update(_ context.Context, user *account.User) error {
	r.add(user)
	return nil
}

// fakeResetTokens is an in-memory one-shot token store.
type fakeResetTokens struct {
	saved map[string]string // tokenHash → userID
}

func (s *fakeResetTokens) Save(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	s.saved[tokenHash] = userID
	return nil
}

func (s *fakeResetTokens) Consume(_ context.Context, tokenHash string) (string, error) {
	userID, ok := s.saved[tokenHash]
	if !ok {
		return "", apperr.NotFound("Reset token")
	}
	delete(s.saved, tokenHash)
	return userID, nil
}

// recordingMailer captures outbound reset mail.
type recordingMailer struct {
	to     string
	tokens []string
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, email, _, resetToken string) error {
	m.to = email
	m.tokens = append(m.tokens, resetToken)
	return nil
}

type fixture struct {
	service *auth.Service
	repo    *fakeAccountRepository
	reset   *fakeResetTokens
	mailer  *recordingMailer
	tokens  *sec.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := sec.NewTokenService("test-secret", "moviebunkers", time.Hour)
	require.NoError(t, err)

	repo := newFakeAccountRepository()
	reset := &fakeResetTokens{saved: map[string]string{}}
	mailer := &recordingMailer{}
	accounts := account.NewService(repo, logger)

	return &fixture{
		service: auth.NewService(accounts, tokens, reset, mailer, logger),
		repo:    repo,
		reset:   reset,
		mailer:  mailer,
		tokens:  tokens,
	}
}

// seedUser registers an active account with a known password.
func (f *fixture) seedUser(t *testing.T, userName, password string, status account.Status) *account.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &account.User{
		ID:           "id-" + userName,
		UserName:     userName,
		Email:        userName + "@example.com",
		PasswordHash: hash,
		Role:         sec.RoleUser,
		Status:       status,
	}
	f.repo.add(user)
	return user
}

/*
TestLogin_Success verifies credential checks and that the issued token
carries the userName subject.
*/
func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "s3cret-pass", account.StatusActive)

	result, err := f.service.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "alice", result.User.UserName)

	claims, err := f.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserName())
}

/*
TestLogin_EmailIdentifier verifies that an email identifier resolves the
same account, case-insensitively.
*/
func TestLogin_EmailIdentifier(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "s3cret-pass", account.StatusActive)

	result, err := f.service.Login(context.Background(), "ALICE@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.UserName)
}

/*
TestLogin_Failures verifies that unknown accounts and wrong passwords are
indistinguishable, while deactivation is reported distinctly.
*/
func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		reason     string
	}{
		{"unknown_account", "ghost", "whatever", "bad_credentials"},
		{"wrong_password", "alice", "wrong-pass", "bad_credentials"},
		{"deactivated_account", "mallory", "s3cret-pass", "account_inactive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seedUser(t, "alice", "s3cret-pass", account.StatusActive)
			f.seedUser(t, "mallory", "s3cret-pass", account.StatusInactive)

			_, err := f.service.Login(context.Background(), tt.identifier, tt.password)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeUnauthorized, ae.Code)
			assert.Equal(t, tt.reason, ae.Reason)
		})
	}
}

/*
TestForgotPassword verifies token issuance for known accounts and silence
for unknown identifiers.
*/
func TestForgotPassword(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "s3cret-pass", account.StatusActive)

	require.NoError(t, f.service.ForgotPassword(context.Background(), "alice"))

	require.Len(t, f.mailer.tokens, 1)
	assert.Equal(t, "alice@example.com", f.mailer.to)

	// The store holds the hash, never the plaintext token from the mail.
	mailedToken := f.mailer.tokens[0]
	_, plainStored := f.reset.saved[mailedToken]
	assert.False(t, plainStored)
	_, hashStored := f.reset.saved[sec.HashToken(mailedToken)]
	assert.True(t, hashStored)
}

/*
TestForgotPassword_UnknownIdentifier verifies the anti-enumeration policy:
same outcome, no mail, no token.
*/
func TestForgotPassword_UnknownIdentifier(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.ForgotPassword(context.Background(), "ghost@example.com"))

	assert.Empty(t, f.mailer.tokens)
	assert.Empty(t, f.reset.saved)
}

/*
TestResetPassword verifies the one-shot redemption flow end to end.
*/
func TestResetPassword(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "old-pass", account.StatusActive)

	require.NoError(t, f.service.ForgotPassword(context.Background(), "alice"))
	mailedToken := f.mailer.tokens[0]

	require.NoError(t, f.service.ResetPassword(context.Background(), mailedToken, "new-pass"))

	// New password works, old one does not
	_, err := f.service.Login(context.Background(), "alice", "new-pass")
	assert.NoError(t, err)
	_, err = f.service.Login(context.Background(), "alice", "old-pass")
	assert.Error(t, err)

	// One-shot: a second redemption fails
	err = f.service.ResetPassword(context.Background(), mailedToken, "another-pass")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "reset_token_invalid", ae.Reason)
}

/*
TestResetPassword_UnknownToken verifies rejection of tokens that were never
issued.
*/
func TestResetPassword_UnknownToken(t *testing.T) {
	f := newFixture(t)

	err := f.service.ResetPassword(context.Background(), "made-up-token", "new-pass")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeUnauthorized, ae.Code)
	assert.Equal(t, "reset_token_invalid", ae.Reason)
}
