package client

import "context"

// RefreshDetails refetches the user's own record and overwrites the
// refreshable fields in place. Favorite toggles call this rather than
// mutating locally — one extra round trip buys a state that can't drift
// from the server's.
func (u *User) RefreshDetails(ctx context.Context) error {
	record, err := u.api.GetUser(ctx, u.Token, u.Username)
	if err != nil {
		return err
	}

	u.applyRecord(record)
	return nil
}
