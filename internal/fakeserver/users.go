package fakeserver

import (
	"net/http"
	"time"

	"github.com/dortanez/hack-or-snooze/internal/validators"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) getUser(c *gin.Context) {
	username, ok := s.verifyToken(c.Query("token"))
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token")
		return
	}
	if username != c.Param("username") {
		fail(c, http.StatusForbidden, "token does not match user")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": s.userJSON(user)})
}

func (s *Server) updateUser(c *gin.Context) {
	var req struct {
		Token string                          `json:"token" binding:"required"`
		User  validators.UpdateProfileRequest `json:"user" binding:"required"`
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
	if username != c.Param("username") {
		fail(c, http.StatusForbidden, "token does not match user")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		fail(c, http.StatusNotFound, "user not found")
		return
	}

	if req.User.Name != nil {
		user.Name = *req.User.Name
	}
	if req.User.Password != nil {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(*req.User.Password), bcrypt.MinCost)
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now()

	c.JSON(http.StatusOK, gin.H{"user": s.userJSON(user)})
}

func (s *Server) deleteUser(c *gin.Context) {
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
	if username != c.Param("username") {
		fail(c, http.StatusForbidden, "token does not match user")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; !exists {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	delete(s.users, username)

	// 该用户发的 story 一并删除
	kept := s.stories[:0]
	removed := []string{}
	for _, st := range s.stories {
		if st.Username == username {
			removed = append(removed, st.StoryID)
			continue
		}
		kept = append(kept, st)
	}
	s.stories = kept
	for _, u := range s.users {
		for _, id := range removed {
			u.Favorites = removeID(u.Favorites, id)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (s *Server) addFavorite(c *gin.Context) {
	username, storyID, ok := s.favoriteAuth(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	if s.findStory(storyID) == nil {
		fail(c, http.StatusNotFound, "story not found")
		return
	}

	already := false
	for _, id := range user.Favorites {
		if id == storyID {
			already = true
			break
		}
	}
	if !already {
		user.Favorites = append(user.Favorites, storyID)
	}

	c.JSON(http.StatusOK, gin.H{"user": s.userJSON(user), "message": "Favorite Added!"})
}

func (s *Server) removeFavorite(c *gin.Context) {
	username, storyID, ok := s.favoriteAuth(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	if s.findStory(storyID) == nil {
		fail(c, http.StatusNotFound, "story not found")
		return
	}

	user.Favorites = removeID(user.Favorites, storyID)

	c.JSON(http.StatusOK, gin.H{"user": s.userJSON(user), "message": "Favorite Removed!"})
}

// favoriteAuth does the shared token checks of the favorites routes and
// writes the error response itself when returning ok=false. The user lookup
// happens in the handler under s.mu, so the pointer never outlives the lock.
func (s *Server) favoriteAuth(c *gin.Context) (string, string, bool) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return "", "", false
	}

	username, ok := s.verifyToken(req.Token)
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid token")
		return "", "", false
	}
	if username != c.Param("username") {
		fail(c, http.StatusForbidden, "token does not match user")
		return "", "", false
	}

	return username, c.Param("storyId"), true
}
