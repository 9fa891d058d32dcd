package client

import (
	"context"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/validators"
	"go.uber.org/zap"
)

// Add submits a new story and prepends it to both the feed and the user's
// own stories, so the freshly posted link shows up first in either view.
func (l *StoryList) Add(ctx context.Context, u *User, draft validators.SubmitStoryRequest) (*Story, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	record, err := l.api.CreateStory(ctx, u.Token, api.StoryPayload{
		Author:   draft.Author,
		Title:    draft.Title,
		URL:      draft.URL,
		Username: u.Username,
	})
	if err != nil {
		return nil, err
	}

	story := storyFromRecord(record)
	l.Stories = append([]Story{story}, l.Stories...)
	u.OwnStories = append([]Story{story}, u.OwnStories...)

	zap.L().Info("story submitted",
		zap.String("story_id", story.StoryID),
		zap.String("username", u.Username))
	return &story, nil
}
