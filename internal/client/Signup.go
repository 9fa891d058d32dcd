package client

import (
	"context"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/validators"
	"go.uber.org/zap"
)

func Signup(ctx context.Context, a *api.Client, username, password, name string) (*User, error) {
	req := validators.SignupUserRequest{Username: username, Password: password, Name: name}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, token, err := a.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}

	zap.L().Info("user registered", zap.String("username", record.Username))
	return userFromRecord(a, record, token), nil
}
