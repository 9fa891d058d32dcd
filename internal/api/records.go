package api

import (
	"fmt"
	"time"
)

// StoryRecord 远端 API 返回的原始 story 结构
type StoryRecord struct {
	StoryID   string    `json:"storyId"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r StoryRecord) validate() error {
	if r.StoryID == "" {
		return fmt.Errorf("%w: story record missing storyId", ErrMalformedResponse)
	}
	if r.Username == "" {
		return fmt.Errorf("%w: story record missing username", ErrMalformedResponse)
	}
	return nil
}

// UserRecord 远端 API 返回的原始 user 结构
type UserRecord struct {
	Username  string        `json:"username"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Favorites []StoryRecord `json:"favorites"`
	Stories   []StoryRecord `json:"stories"`
}

func (r UserRecord) validate() error {
	if r.Username == "" {
		return fmt.Errorf("%w: user record missing username", ErrMalformedResponse)
	}
	for _, s := range r.Favorites {
		if err := s.validate(); err != nil {
			return err
		}
	}
	for _, s := range r.Stories {
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

type storiesEnvelope struct {
	Stories []StoryRecord `json:"stories"`
}

type storyEnvelope struct {
	Story StoryRecord `json:"story"`
}

type userEnvelope struct {
	User UserRecord `json:"user"`
}

type authEnvelope struct {
	User  UserRecord `json:"user"`
	Token string     `json:"token"`
}
