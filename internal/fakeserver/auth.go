package fakeserver

import (
	"net/http"
	"time"

	"github.com/dortanez/hack-or-snooze/internal/validators"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) signup(c *gin.Context) {
	var req struct {
		User validators.SignupUserRequest `json:"user" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.User.Username]; exists {
		fail(c, http.StatusConflict, "username already exists")
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.MinCost)
	now := time.Now()
	user := &storedUser{
		Username:     req.User.Username,
		Name:         req.User.Name,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.Username] = user

	token, err := s.generateToken(user.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": s.userJSON(user), "token": token})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		User validators.LoginUserRequest `json:"user" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[req.User.Username]
	if !exists {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.User.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": s.userJSON(user), "token": token})
}
