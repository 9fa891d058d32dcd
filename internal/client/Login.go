package client

import (
	"context"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/validators"
	"go.uber.org/zap"
)

// Login exchanges credentials for a session token. The response already
// carries favorites and own stories, so the returned User is fully populated.
func Login(ctx context.Context, a *api.Client, username, password string) (*User, error) {
	req := validators.LoginUserRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, token, err := a.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	zap.L().Info("user logged in", zap.String("username", record.Username))
	return userFromRecord(a, record, token), nil
}
