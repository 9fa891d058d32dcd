package client

import "github.com/dortanez/hack-or-snooze/internal/api"

// StoryList is the global feed, newest first as returned by the server.
type StoryList struct {
	api     *api.Client
	Stories []Story
}

// Clone returns an independent copy with its own Stories slice.
func (l *StoryList) Clone() *StoryList {
	if l == nil {
		return nil
	}
	return &StoryList{api: l.api, Stories: append([]Story(nil), l.Stories...)}
}

// filterOut removes every story with the given id. Absent ids are a no-op.
func filterOut(stories []Story, storyID string) []Story {
	kept := stories[:0]
	for _, s := range stories {
		if s.StoryID != storyID {
			kept = append(kept, s)
		}
	}
	return kept
}
