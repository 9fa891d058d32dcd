package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// StoryPayload is the story half of a POST /stories body.
type StoryPayload struct {
	Author   string `json:"author"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

// StoryPatchPayload carries only the fields being changed.
type StoryPatchPayload struct {
	Author *string `json:"author,omitempty"`
	Title  *string `json:"title,omitempty"`
	URL    *string `json:"url,omitempty"`
}

type UserPatchPayload struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

type tokenBody struct {
	Token string `json:"token"`
}

// ListStories GET /stories，服务端保证最新的排在最前
func (c *Client) ListStories(ctx context.Context) ([]StoryRecord, error) {
	var env storiesEnvelope
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &env); err != nil {
		return nil, err
	}
	for _, s := range env.Stories {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return env.Stories, nil
}

func (c *Client) CreateStory(ctx context.Context, token string, story StoryPayload) (StoryRecord, error) {
	body := struct {
		Token string       `json:"token"`
		Story StoryPayload `json:"story"`
	}{Token: token, Story: story}

	var env storyEnvelope
	if err := c.do(ctx, http.MethodPost, "/stories", nil, body, &env); err != nil {
		return StoryRecord{}, err
	}
	return env.Story, env.Story.validate()
}

func (c *Client) UpdateStory(ctx context.Context, token, storyID string, patch StoryPatchPayload) (StoryRecord, error) {
	body := struct {
		Token string            `json:"token"`
		Story StoryPatchPayload `json:"story"`
	}{Token: token, Story: patch}

	var env storyEnvelope
	if err := c.do(ctx, http.MethodPatch, "/stories/"+url.PathEscape(storyID), nil, body, &env); err != nil {
		return StoryRecord{}, err
	}
	return env.Story, env.Story.validate()
}

func (c *Client) DeleteStory(ctx context.Context, token, storyID string) error {
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), nil, tokenBody{Token: token}, nil)
}

func (c *Client) Signup(ctx context.Context, username, password, name string) (UserRecord, string, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Password = password
	body.User.Name = name

	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/signup", nil, body, &env); err != nil {
		return UserRecord{}, "", err
	}
	if env.Token == "" {
		return UserRecord{}, "", fmt.Errorf("%w: signup response missing token", ErrMalformedResponse)
	}
	return env.User, env.Token, env.User.validate()
}

func (c *Client) Login(ctx context.Context, username, password string) (UserRecord, string, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Password = password

	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &env); err != nil {
		return UserRecord{}, "", err
	}
	if env.Token == "" {
		return UserRecord{}, "", fmt.Errorf("%w: login response missing token", ErrMalformedResponse)
	}
	return env.User, env.Token, env.User.validate()
}

// GetUser 用 query 里的 token 鉴权（和其它接口不同，GET 没有 body）
func (c *Client) GetUser(ctx context.Context, token, username string) (UserRecord, error) {
	query := url.Values{"token": []string{token}}

	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), query, nil, &env); err != nil {
		return UserRecord{}, err
	}
	return env.User, env.User.validate()
}

func (c *Client) UpdateUser(ctx context.Context, token, username string, patch UserPatchPayload) (UserRecord, error) {
	body := struct {
		Token string           `json:"token"`
		User  UserPatchPayload `json:"user"`
	}{Token: token, User: patch}

	var env userEnvelope
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(username), nil, body, &env); err != nil {
		return UserRecord{}, err
	}
	return env.User, env.User.validate()
}

func (c *Client) DeleteUser(ctx context.Context, token, username string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(username), nil, tokenBody{Token: token}, nil)
}

func (c *Client) AddFavorite(ctx context.Context, token, username, storyID string) error {
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodPost, path, nil, tokenBody{Token: token}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodDelete, path, nil, tokenBody{Token: token}, nil)
}
