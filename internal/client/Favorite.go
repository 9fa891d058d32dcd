package client

import (
	"context"

	"go.uber.org/zap"
)

func (u *User) AddFavorite(ctx context.Context, storyID string) error {
	if err := u.api.AddFavorite(ctx, u.Token, u.Username, storyID); err != nil {
		return err
	}

	zap.L().Info("favorite added",
		zap.String("story_id", storyID),
		zap.String("username", u.Username))
	return u.RefreshDetails(ctx)
}

func (u *User) RemoveFavorite(ctx context.Context, storyID string) error {
	if err := u.api.RemoveFavorite(ctx, u.Token, u.Username, storyID); err != nil {
		return err
	}

	zap.L().Info("favorite removed",
		zap.String("story_id", storyID),
		zap.String("username", u.Username))
	return u.RefreshDetails(ctx)
}

// ToggleFavorite picks add or remove based on current membership.
func (u *User) ToggleFavorite(ctx context.Context, storyID string) error {
	if u.IsFavorite(storyID) {
		return u.RemoveFavorite(ctx, storyID)
	}
	return u.AddFavorite(ctx, storyID)
}
