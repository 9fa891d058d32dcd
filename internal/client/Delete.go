package client

import (
	"context"

	"go.uber.org/zap"
)

// Remove deletes a story by id and filters it out of both the feed and the
// user's own stories. The in-memory lists are only touched after the API
// confirms the delete.
func (l *StoryList) Remove(ctx context.Context, u *User, storyID string) error {
	if err := l.api.DeleteStory(ctx, u.Token, storyID); err != nil {
		return err
	}

	l.Stories = filterOut(l.Stories, storyID)
	u.OwnStories = filterOut(u.OwnStories, storyID)

	zap.L().Info("story removed",
		zap.String("story_id", storyID),
		zap.String("username", u.Username))
	return nil
}
