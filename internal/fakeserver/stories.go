package fakeserver

import (
	"net/http"
	"time"

	"github.com/dortanez/hack-or-snooze/internal/validators"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) listStories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stories := []gin.H{}
	for _, st := range s.stories {
		stories = append(stories, s.storyJSON(st))
	}
	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (s *Server) createStory(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
		Story struct {
			Author   string `json:"author" binding:"required"`
			Title    string `json:"title" binding:"required"`
			URL      string `json:"url" binding:"required"`
			Username string `json:"username"`
		} `json:"story" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid story")
		return
	}

	username, ok := s.verifyToken(req.Token)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	story := &storedStory{
		StoryID:   uuid.NewString(),
		Author:    req.Story.Author,
		Title:     req.Story.Title,
		URL:       req.Story.URL,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// 新的排最前，和真实服务一致
	s.stories = append([]*storedStory{story}, s.stories...)

	c.JSON(http.StatusCreated, gin.H{"story": s.storyJSON(story)})
}

func (s *Server) updateStory(c *gin.Context) {
	var req struct {
		Token string                        `json:"token" binding:"required"`
		Story validators.UpdateStoryRequest `json:"story" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid story")
		return
	}

	username, ok := s.verifyToken(req.Token)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	story := s.findStory(c.Param("id"))
	if story == nil {
		fail(c, http.StatusNotFound, "story not found")
		return
	}
	if story.Username != username {
		fail(c, http.StatusForbidden, "not your story")
		return
	}

	if req.Story.Author != nil {
		story.Author = *req.Story.Author
	}
	if req.Story.Title != nil {
		story.Title = *req.Story.Title
	}
	if req.Story.URL != nil {
		story.URL = *req.Story.URL
	}
	story.UpdatedAt = time.Now()

	c.JSON(http.StatusOK, gin.H{"story": s.storyJSON(story)})
}

func (s *Server) deleteStory(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	username, ok := s.verifyToken(req.Token)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	story := s.findStory(id)
	if story == nil {
		fail(c, http.StatusNotFound, "story not found")
		return
	}
	if story.Username != username {
		fail(c, http.StatusForbidden, "not your story")
		return
	}

	kept := s.stories[:0]
	for _, st := range s.stories {
		if st.StoryID != id {
			kept = append(kept, st)
		}
	}
	s.stories = kept

	// 收藏里也要清掉，免得悬空引用
	for _, u := range s.users {
		u.Favorites = removeID(u.Favorites, id)
	}

	c.JSON(http.StatusOK, gin.H{"story": s.storyJSON(story), "message": "Story deleted"})
}

func removeID(ids []string, id string) []string {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
