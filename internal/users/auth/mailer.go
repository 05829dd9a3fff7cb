// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package auth

import (
	"context"
	"log/slog"
)

// LogMailer is the development [Mailer]: it logs instead of delivering.
// The reset token is logged so a developer can complete the flow locally.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (mailer *LogMailer) SendPasswordReset(context context.Context, email, userName, resetToken string) error {
	mailer.logger.Info("mail_password_reset",
		slog.String("to", email),
		slog.String("user_name", userName),
		slog.String("reset_token", resetToken),
	)
	return nil
}
