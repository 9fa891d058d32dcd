// Package fakeserver is an in-memory stand-in for the hosted story API,
// implementing the same routes and body shapes so the client can be tested
// without the network. It keeps no durable state.
package fakeserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type storedUser struct {
	Username     string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Favorites    []string // story ids, oldest first
}

type storedStory struct {
	StoryID   string
	Author    string
	Title     string
	URL       string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Server struct {
	mu       sync.Mutex
	users    map[string]*storedUser
	stories  []*storedStory // newest first
	secret   []byte
	tokenTTL time.Duration
}

func New() *Server {
	return &Server{
		users:    make(map[string]*storedUser),
		secret:   []byte("fakeserver_secret_not_for_production"),
		tokenTTL: 24 * time.Hour,
	}
}

// Router builds the gin engine with all routes of the remote API.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/signup", s.signup)
	r.POST("/login", s.login)

	r.GET("/stories", s.listStories)
	r.POST("/stories", s.createStory)
	r.PATCH("/stories/:id", s.updateStory)
	r.DELETE("/stories/:id", s.deleteStory)

	r.GET("/users/:username", s.getUser)
	r.PATCH("/users/:username", s.updateUser)
	r.DELETE("/users/:username", s.deleteUser)
	r.POST("/users/:username/favorites/:storyId", s.addFavorite)
	r.DELETE("/users/:username/favorites/:storyId", s.removeFavorite)

	return r
}

func (s *Server) generateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// verifyToken returns the username baked into a valid token.
func (s *Server) verifyToken(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	username, ok := claims["username"].(string)
	return username, ok && username != ""
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{
		"status":  status,
		"title":   http.StatusText(status),
		"message": message,
	}})
}

func (s *Server) storyJSON(st *storedStory) gin.H {
	return gin.H{
		"storyId":   st.StoryID,
		"author":    st.Author,
		"title":     st.Title,
		"url":       st.URL,
		"username":  st.Username,
		"createdAt": st.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt": st.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// userJSON resolves favorite ids and own stories. Callers hold s.mu.
func (s *Server) userJSON(u *storedUser) gin.H {
	favorites := []gin.H{}
	for _, id := range u.Favorites {
		if st := s.findStory(id); st != nil {
			favorites = append(favorites, s.storyJSON(st))
		}
	}

	own := []gin.H{}
	for _, st := range s.stories {
		if st.Username == u.Username {
			own = append(own, s.storyJSON(st))
		}
	}

	return gin.H{
		"username":  u.Username,
		"name":      u.Name,
		"createdAt": u.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt": u.UpdatedAt.UTC().Format(time.RFC3339),
		"favorites": favorites,
		"stories":   own,
	}
}

func (s *Server) findStory(storyID string) *storedStory {
	for _, st := range s.stories {
		if st.StoryID == storyID {
			return st
		}
	}
	return nil
}
