package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dortanez/hack-or-snooze/internal/client"
	"github.com/dortanez/hack-or-snooze/internal/session"
	"github.com/dortanez/hack-or-snooze/internal/validators"
)

// Messages carry fresh snapshots back to Update; commands never touch the
// model's own user/list, so the render loop can keep reading them while a
// command is in flight.
type storiesLoadedMsg struct{ list *client.StoryList }
type sessionRestoredMsg struct{ user *client.User }
type authSuccessMsg struct{ user *client.User }

type storyAddedMsg struct {
	story *client.Story
	list  *client.StoryList
	user  *client.User
}

type storyRemovedMsg struct {
	storyID string
	list    *client.StoryList
	user    *client.User
}

type favoriteToggledMsg struct {
	storyID string
	user    *client.User
}

type profileUpdatedMsg struct{ user *client.User }
type accountDeletedMsg struct{}
type loggedOutMsg struct{}
type errMsg struct{ err error }

func (m Model) fetchStoriesCmd() tea.Cmd {
	a := m.api
	return func() tea.Msg {
		list, err := client.FetchAll(context.Background(), a)
		if err != nil {
			return errMsg{err}
		}
		return storiesLoadedMsg{list}
	}
}

// restoreSessionCmd reads the session file and tries FetchByToken. Absent or
// expired credentials come back as a nil user, which is simply the anonymous
// state.
func (m Model) restoreSessionCmd() tea.Cmd {
	a, store := m.api, m.store
	return func() tea.Msg {
		s, err := store.Load()
		if err != nil {
			return errMsg{err}
		}
		user, err := client.FetchByToken(context.Background(), a, s.Token, s.Username)
		if err != nil {
			return errMsg{err}
		}
		return sessionRestoredMsg{user}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	a, store := m.api, m.store
	return func() tea.Msg {
		user, err := client.Login(context.Background(), a, username, password)
		if err != nil {
			return errMsg{err}
		}
		if err := store.Save(session.Session{Token: user.Token, Username: user.Username}); err != nil {
			return errMsg{err}
		}
		return authSuccessMsg{user}
	}
}

func (m Model) signupCmd(username, password, name string) tea.Cmd {
	a, store := m.api, m.store
	return func() tea.Msg {
		user, err := client.Signup(context.Background(), a, username, password, name)
		if err != nil {
			return errMsg{err}
		}
		if err := store.Save(session.Session{Token: user.Token, Username: user.Username}); err != nil {
			return errMsg{err}
		}
		return authSuccessMsg{user}
	}
}

// The mutating commands clone the user/list on the main goroutine, mutate
// only the clone off-thread, and hand the clone back in the message.
func (m Model) submitStoryCmd(draft validators.SubmitStoryRequest) tea.Cmd {
	list, user := m.list.Clone(), m.user.Clone()
	return func() tea.Msg {
		story, err := list.Add(context.Background(), user, draft)
		if err != nil {
			return errMsg{err}
		}
		return storyAddedMsg{story: story, list: list, user: user}
	}
}

func (m Model) removeStoryCmd(storyID string) tea.Cmd {
	list, user := m.list.Clone(), m.user.Clone()
	return func() tea.Msg {
		if err := list.Remove(context.Background(), user, storyID); err != nil {
			return errMsg{err}
		}
		return storyRemovedMsg{storyID: storyID, list: list, user: user}
	}
}

func (m Model) toggleFavoriteCmd(storyID string) tea.Cmd {
	user := m.user.Clone()
	return func() tea.Msg {
		if err := user.ToggleFavorite(context.Background(), storyID); err != nil {
			return errMsg{err}
		}
		return favoriteToggledMsg{storyID: storyID, user: user}
	}
}

func (m Model) updateProfileCmd(patch validators.UpdateProfileRequest) tea.Cmd {
	user := m.user.Clone()
	return func() tea.Msg {
		if err := user.UpdateProfile(context.Background(), patch); err != nil {
			return errMsg{err}
		}
		return profileUpdatedMsg{user: user}
	}
}

func (m Model) deleteAccountCmd() tea.Cmd {
	user, store := m.user, m.store
	return func() tea.Msg {
		if err := user.DeleteAccount(context.Background()); err != nil {
			return errMsg{err}
		}
		if err := store.Clear(); err != nil {
			return errMsg{err}
		}
		return accountDeletedMsg{}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if err := store.Clear(); err != nil {
			return errMsg{err}
		}
		return loggedOutMsg{}
	}
}
