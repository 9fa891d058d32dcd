package client

import (
	"context"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/validators"
)

// Update patches this story on the server and overwrites author/title/url
// and UpdatedAt from the response. Identity fields stay untouched.
func (s *Story) Update(ctx context.Context, u *User, patch validators.UpdateStoryRequest) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	record, err := u.api.UpdateStory(ctx, u.Token, s.StoryID, api.StoryPatchPayload{
		Author: patch.Author,
		Title:  patch.Title,
		URL:    patch.URL,
	})
	if err != nil {
		return err
	}

	s.Author = record.Author
	s.Title = record.Title
	s.URL = record.URL
	s.UpdatedAt = record.UpdatedAt
	return nil
}
