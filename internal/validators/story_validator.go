package validators

import (
	"errors"
	"strings"

	"github.com/dortanez/hack-or-snooze/internal/utils"
)

type SubmitStoryRequest struct {
	Author string `json:"author" binding:"required"`
	Title  string `json:"title" binding:"required"`
	URL    string `json:"url" binding:"required"`
}

type UpdateStoryRequest struct {
	Author *string `json:"author,omitempty"`
	Title  *string `json:"title,omitempty"`
	URL    *string `json:"url,omitempty"`
}

func (r SubmitStoryRequest) Validate() error {
	if strings.TrimSpace(r.Author) == "" {
		return errors.New("author is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if utils.GetHostName(r.URL) == "" {
		return errors.New("url is not a valid link")
	}
	return nil
}

func (r UpdateStoryRequest) Validate() error {
	if r.Author == nil && r.Title == nil && r.URL == nil {
		return errors.New("nothing to update")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if r.URL != nil && utils.GetHostName(*r.URL) == "" {
		return errors.New("url is not a valid link")
	}
	return nil
}
