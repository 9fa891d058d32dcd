package client

import (
	"context"
	"time"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/utils"
	"go.uber.org/zap"
)

// FetchByToken restores a session from stored credentials. Both results are
// nil when either credential is absent or the token is already expired —
// that is a fresh anonymous session, not an error, and no network call is
// made.
func FetchByToken(ctx context.Context, a *api.Client, token, username string) (*User, error) {
	if token == "" || username == "" {
		return nil, nil
	}

	if exp, ok := utils.PeekExpiry(token); ok && time.Now().After(exp) {
		zap.L().Debug("stored token expired, skipping session restore",
			zap.String("username", username),
			zap.String("token", utils.TokenHash(token)))
		return nil, nil
	}

	record, err := a.GetUser(ctx, token, username)
	if err != nil {
		return nil, err
	}

	zap.L().Info("session restored", zap.String("username", record.Username))
	return userFromRecord(a, record, token), nil
}
