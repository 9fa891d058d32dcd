package fakeserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupToken(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/signup",
		`{"user":{"username":"`+username+`","password":"secret123","name":"Tester"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestTokenRoundTrip(t *testing.T) {
	s := New()
	token, err := s.generateToken("alice")
	require.NoError(t, err)

	username, ok := s.verifyToken(token)
	require.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestTamperedTokenRejected(t *testing.T) {
	s := New()
	token, err := s.generateToken("alice")
	require.NoError(t, err)

	_, ok := s.verifyToken(token + "x")
	assert.False(t, ok)
	_, ok = s.verifyToken("garbage")
	assert.False(t, ok)
}

func TestCreateStoryRequiresValidToken(t *testing.T) {
	router := New().Router()
	w := doJSON(t, router, http.MethodPost, "/stories",
		`{"token":"bogus","story":{"author":"A","title":"T","url":"http://x.com"}}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuplicateSignupConflicts(t *testing.T) {
	router := New().Router()
	signupToken(t, router, "alice")

	w := doJSON(t, router, http.MethodPost, "/signup",
		`{"user":{"username":"alice","password":"other456","name":"Clone"}}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestForeignTokenOnFavoritesRoute(t *testing.T) {
	router := New().Router()
	signupToken(t, router, "alice")
	bobToken := signupToken(t, router, "bobby")

	// bob 的 token 动不了 alice 的收藏
	w := doJSON(t, router, http.MethodPost, "/users/alice/favorites/some-id",
		`{"token":"`+bobToken+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFavoriteUnknownStory(t *testing.T) {
	router := New().Router()
	token := signupToken(t, router, "alice")

	w := doJSON(t, router, http.MethodPost, "/users/alice/favorites/no-such-story",
		`{"token":"`+token+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteAfterAccountDeletion(t *testing.T) {
	router := New().Router()
	aliceToken := signupToken(t, router, "alice")
	bobToken := signupToken(t, router, "bobby")

	w := doJSON(t, router, http.MethodPost, "/stories",
		`{"token":"`+bobToken+`","story":{"author":"B","title":"T","url":"http://x.com"}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Story struct {
			StoryID string `json:"storyId"`
		} `json:"story"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodDelete, "/users/alice",
		`{"token":"`+aliceToken+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// the token still verifies, but the account is gone
	w = doJSON(t, router, http.MethodPost, "/users/alice/favorites/"+created.Story.StoryID,
		`{"token":"`+aliceToken+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorEnvelopeShape(t *testing.T) {
	router := New().Router()
	w := doJSON(t, router, http.MethodPost, "/login",
		`{"user":{"username":"ghost","password":"whatever1"}}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Error struct {
			Status  int    `json:"status"`
			Title   string `json:"title"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusUnauthorized, resp.Error.Status)
	assert.Equal(t, "Unauthorized", resp.Error.Title)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestDeleteStoryPrunesFavorites(t *testing.T) {
	router := New().Router()
	aliceToken := signupToken(t, router, "alice")
	bobToken := signupToken(t, router, "bobby")

	w := doJSON(t, router, http.MethodPost, "/stories",
		`{"token":"`+aliceToken+`","story":{"author":"A","title":"T","url":"http://x.com"}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Story struct {
			StoryID string `json:"storyId"`
		} `json:"story"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/users/bobby/favorites/"+created.Story.StoryID,
		`{"token":"`+bobToken+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/stories/"+created.Story.StoryID,
		`{"token":"`+aliceToken+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// bob 的 user 详情里不能再出现这条 story
	w = doJSON(t, router, http.MethodGet, "/users/bobby?token="+bobToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		User struct {
			Favorites []json.RawMessage `json:"favorites"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Empty(t, profile.User.Favorites)
}
