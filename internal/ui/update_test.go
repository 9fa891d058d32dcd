package ui

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/client"
	"github.com/dortanez/hack-or-snooze/internal/fakeserver"
	"github.com/dortanez/hack-or-snooze/internal/validators"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(s))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func loggedInModel() Model {
	m := New(nil, nil)
	m.user = &client.User{Username: "alice", Name: "Alice"}
	m.list = &client.StoryList{Stories: []client.Story{
		{StoryID: "s1", Title: "one", Username: "alice", URL: "http://one.example.com"},
		{StoryID: "s2", Title: "two", Username: "bobby", URL: "http://two.example.com"},
		{StoryID: "s3", Title: "three", Username: "bobby", URL: "http://three.example.com"},
	}}
	return m
}

func TestAnonymousSectionGating(t *testing.T) {
	m := New(nil, nil)

	for _, key := range []string{"2", "3", "4", "5"} {
		next, _ := press(t, m, key)
		assert.Equal(t, SectionFeed, next.section, "key %q must not leave the feed", key)
		assert.Contains(t, next.status, "log in first")
	}
}

func TestSectionSwitchingWhenLoggedIn(t *testing.T) {
	m := loggedInModel()

	cases := []struct {
		key  string
		want Section
	}{
		{"2", SectionSubmit},
		{"3", SectionFavorites},
		{"4", SectionOwnStories},
		{"5", SectionProfile},
		{"1", SectionFeed},
	}
	for _, tc := range cases {
		var cmd tea.Cmd
		m, cmd = press(t, m, tc.key)
		assert.Equal(t, tc.want, m.section)
		assert.Nil(t, cmd)
	}
}

func TestSwitchSectionResetsPageState(t *testing.T) {
	m := loggedInModel()
	m.cursor = 2
	m.err = errors.New("stale")
	m.status = "stale"

	m.switchSection(SectionSubmit)
	assert.Zero(t, m.cursor)
	assert.NoError(t, m.err)
	assert.Empty(t, m.status)
	assert.Len(t, m.inputs, submitInputCount)
}

func TestLoginKeyOpensAuthSection(t *testing.T) {
	m := New(nil, nil)
	m, _ = press(t, m, "l")

	assert.Equal(t, SectionAuth, m.section)
	assert.Len(t, m.inputs, authInputCount)
	assert.Zero(t, m.focusIndex)
}

func TestCursorStaysInBounds(t *testing.T) {
	m := loggedInModel()

	m, _ = press(t, m, "k")
	assert.Zero(t, m.cursor, "k at the top stays put")

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, "j")
	}
	assert.Equal(t, 2, m.cursor, "j at the bottom stays put")
}

func TestOptimisticStarFlip(t *testing.T) {
	m := loggedInModel()
	m.cursor = 1 // s2

	assert.False(t, m.starred("s2"))

	m, cmd := press(t, m, "f")
	require.NotNil(t, cmd, "a toggle command must be issued")
	assert.True(t, m.loading)
	assert.True(t, m.starred("s2"), "the star flips before the server answers")
	assert.False(t, m.user.IsFavorite("s2"), "the snapshot itself is untouched")

	// the refetch confirms with a fresh snapshot; the flip is dropped
	refreshed := m.user.Clone()
	refreshed.Favorites = []client.Story{{StoryID: "s2", Title: "two"}}
	updated, _ := m.Update(favoriteToggledMsg{storyID: "s2", user: refreshed})
	m = updated.(Model)
	assert.False(t, m.loading)
	assert.Empty(t, m.pendingFavs)
	assert.True(t, m.user.IsFavorite("s2"), "the snapshot from the message is applied")
}

func TestFavoriteRequiresLogin(t *testing.T) {
	m := New(nil, nil)
	m.list = &client.StoryList{Stories: []client.Story{{StoryID: "s1"}}}

	m, cmd := press(t, m, "f")
	assert.Nil(t, cmd)
	assert.Contains(t, m.status, "log in")
}

func TestErrMsgDropsPendingFlips(t *testing.T) {
	m := loggedInModel()
	m.pendingFavs["s2"] = true
	m.loading = true

	updated, _ := m.Update(errMsg{errors.New("toggle failed")})
	m = updated.(Model)

	assert.False(t, m.loading)
	assert.Error(t, m.err)
	assert.Empty(t, m.pendingFavs, "a lying star must not survive a failed toggle")
	assert.False(t, m.starred("s2"))
}

func TestDeleteRequiresOwnership(t *testing.T) {
	m := loggedInModel()
	m.cursor = 1 // bobby's story

	m, cmd := press(t, m, "d")
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Contains(t, m.status, "your own stories")
}

func TestDeleteOwnStoryIssuesCommand(t *testing.T) {
	m := loggedInModel()
	m.cursor = 0 // alice's story

	m, cmd := press(t, m, "d")
	assert.NotNil(t, cmd)
	assert.True(t, m.loading)
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	m := loggedInModel()
	m.loading = true

	next, cmd := press(t, m, "2")
	assert.Equal(t, SectionFeed, next.section)
	assert.Nil(t, cmd)

	// ctrl+c always works
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestEnterShowsStoryURL(t *testing.T) {
	m := loggedInModel()
	m.cursor = 2

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, "http://three.example.com", m.status)
}

func TestVisibleStoriesPerSection(t *testing.T) {
	m := loggedInModel()
	fav := client.Story{StoryID: "s2", Title: "two"}
	own := client.Story{StoryID: "s1", Title: "one"}
	m.user.Favorites = []client.Story{fav}
	m.user.OwnStories = []client.Story{own}

	m.section = SectionFeed
	assert.Len(t, m.visibleStories(), 3)

	m.section = SectionFavorites
	require.Len(t, m.visibleStories(), 1)
	assert.Equal(t, "s2", m.visibleStories()[0].StoryID)

	m.section = SectionOwnStories
	require.Len(t, m.visibleStories(), 1)
	assert.Equal(t, "s1", m.visibleStories()[0].StoryID)

	m.section = SectionSubmit
	assert.Nil(t, m.visibleStories())
}

func TestAuthSuccessReturnsToFeed(t *testing.T) {
	m := New(nil, nil)
	m.switchSection(SectionAuth)
	m.loading = true

	updated, _ := m.Update(authSuccessMsg{user: &client.User{Username: "alice"}})
	m = updated.(Model)

	assert.Equal(t, SectionFeed, m.section)
	assert.False(t, m.loading)
	assert.Contains(t, m.status, "alice")
}

func TestLoggedOutClearsUser(t *testing.T) {
	m := loggedInModel()
	m.section = SectionProfile

	updated, _ := m.Update(loggedOutMsg{})
	m = updated.(Model)

	assert.Nil(t, m.user)
	assert.Equal(t, SectionFeed, m.section)
}

func TestStoryRemovedClampsCursor(t *testing.T) {
	m := loggedInModel()
	m.cursor = 2

	shrunk := m.list.Clone()
	shrunk.Stories = shrunk.Stories[:1]
	updated, _ := m.Update(storyRemovedMsg{storyID: "s3", list: shrunk, user: m.user.Clone()})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
	assert.Len(t, m.list.Stories, 1, "the shrunk snapshot replaces the feed")
}

// Commands must never mutate the model's own user/list; they work on clones
// taken up front and hand the result back in the message.
func TestCommandsOperateOnClones(t *testing.T) {
	m := loggedInModel()
	before := m.user
	beforeList := m.list

	m, cmd := press(t, m, "f") // cursor 0, story s1
	require.NotNil(t, cmd)
	assert.Same(t, before, m.user, "the model still holds its original user")
	assert.Empty(t, before.Favorites, "the original snapshot is untouched")
	assert.Same(t, beforeList, m.list)
}

// Running a toggle command end to end writes only the clone it was handed;
// the user held by the model stays readable throughout.
func TestToggleCommandWritesOnlyItsClone(t *testing.T) {
	ts := httptest.NewServer(fakeserver.New().Router())
	t.Cleanup(ts.Close)
	a := api.New(ts.URL, 5*time.Second)
	ctx := context.Background()

	alice, err := client.Signup(ctx, a, "alice", "secret123", "Alice")
	require.NoError(t, err)
	list, err := client.FetchAll(ctx, a)
	require.NoError(t, err)
	story, err := list.Add(ctx, alice, validators.SubmitStoryRequest{
		Author: "A", Title: "T", URL: "http://x.com",
	})
	require.NoError(t, err)

	m := New(a, nil)
	m.user = alice
	m.list = list

	msg := m.toggleFavoriteCmd(story.StoryID)()
	toggled, ok := msg.(favoriteToggledMsg)
	require.True(t, ok, "unexpected message: %#v", msg)

	assert.False(t, alice.IsFavorite(story.StoryID), "the command never writes the model's user")
	assert.True(t, toggled.user.IsFavorite(story.StoryID), "the fresh snapshot carries the toggle")

	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.True(t, m.user.IsFavorite(story.StoryID))
}
