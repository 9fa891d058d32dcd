package client

import (
	"context"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/validators"
	"go.uber.org/zap"
)

// UpdateProfile PATCHes the account. Only the name comes back in the
// response; a password change takes effect server-side without any local
// state to update.
func (u *User) UpdateProfile(ctx context.Context, patch validators.UpdateProfileRequest) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	record, err := u.api.UpdateUser(ctx, u.Token, u.Username, api.UserPatchPayload{
		Name:     patch.Name,
		Password: patch.Password,
	})
	if err != nil {
		return err
	}

	u.Name = record.Name
	u.UpdatedAt = record.UpdatedAt

	zap.L().Info("profile updated", zap.String("username", u.Username))
	return nil
}

// DeleteAccount removes the account on the server. Clearing the session file
// and in-memory state is the caller's job.
func (u *User) DeleteAccount(ctx context.Context) error {
	if err := u.api.DeleteUser(ctx, u.Token, u.Username); err != nil {
		return err
	}

	zap.L().Info("account deleted", zap.String("username", u.Username))
	return nil
}
