package client

import (
	"context"

	"github.com/dortanez/hack-or-snooze/internal/api"
)

// FetchAll downloads the whole feed. No pagination — the API caps the list
// server-side.
func FetchAll(ctx context.Context, a *api.Client) (*StoryList, error) {
	records, err := a.ListStories(ctx)
	if err != nil {
		return nil, err
	}

	return &StoryList{
		api:     a,
		Stories: storiesFromRecords(records),
	}, nil
}
