// Package client is the typed data layer over the remote story API: the
// Story/User/StoryList trio plus one file per operation.
package client

import (
	"time"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/utils"
)

// Story is one submitted link. StoryID is the identity used for every
// membership test (feed, favorites, own stories).
type Story struct {
	StoryID   string
	Author    string
	Title     string
	URL       string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func storyFromRecord(r api.StoryRecord) Story {
	return Story{
		StoryID:   r.StoryID,
		Author:    r.Author,
		Title:     r.Title,
		URL:       r.URL,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func storiesFromRecords(records []api.StoryRecord) []Story {
	stories := make([]Story, 0, len(records))
	for _, r := range records {
		stories = append(stories, storyFromRecord(r))
	}
	return stories
}

// Host returns the display host of the story's URL ("example.com").
func (s Story) Host() string {
	return utils.GetHostName(s.URL)
}
