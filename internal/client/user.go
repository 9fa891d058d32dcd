package client

import (
	"time"

	"github.com/dortanez/hack-or-snooze/internal/api"
)

// User is the signed-in account. Favorites and OwnStories are snapshot
// copies refreshed on login / RefreshDetails / favorite toggles — not live
// references into a StoryList.
type User struct {
	api *api.Client

	Username  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Token 只存在内存里；落盘由 session 包负责
	Token string

	Favorites  []Story
	OwnStories []Story
}

func userFromRecord(a *api.Client, rec api.UserRecord, token string) *User {
	u := &User{api: a, Token: token}
	u.applyRecord(rec)
	return u
}

// applyRecord overwrites the refreshable fields from an API record.
func (u *User) applyRecord(rec api.UserRecord) {
	u.Username = rec.Username
	u.Name = rec.Name
	u.CreatedAt = rec.CreatedAt
	u.UpdatedAt = rec.UpdatedAt
	u.Favorites = storiesFromRecords(rec.Favorites)
	u.OwnStories = storiesFromRecords(rec.Stories)
}

// Clone returns an independent copy: the slice fields are copied, so
// mutating the clone never touches the original.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Favorites = append([]Story(nil), u.Favorites...)
	c.OwnStories = append([]Story(nil), u.OwnStories...)
	return &c
}

func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

func (u *User) OwnsStory(storyID string) bool {
	for _, s := range u.OwnStories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}
