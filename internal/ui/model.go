// Package ui is the terminal controller: a single-page state machine over
// named sections, exactly one main section visible at a time (the auth
// section shows the login and signup forms together).
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dortanez/hack-or-snooze/internal/api"
	"github.com/dortanez/hack-or-snooze/internal/client"
	"github.com/dortanez/hack-or-snooze/internal/session"
)

// Section is the currently visible page.
type Section int

const (
	SectionFeed Section = iota
	SectionSubmit
	SectionFavorites
	SectionOwnStories
	SectionProfile
	SectionAuth
)

func (s Section) String() string {
	names := []string{"feed", "submit", "favorites", "my stories", "profile", "login/signup"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// input slots of the auth section (login + signup forms co-resident)
const (
	authLoginUser = iota
	authLoginPass
	authSignupName
	authSignupUser
	authSignupPass
	authInputCount
)

// input slots of the submit form
const (
	submitAuthor = iota
	submitTitle
	submitURL
	submitInputCount
)

// input slots of the profile form
const (
	profileName = iota
	profilePassword
	profileInputCount
)

type Model struct {
	api   *api.Client
	store *session.Store

	section Section
	user    *client.User
	list    *client.StoryList

	cursor  int
	loading bool
	status  string
	err     error

	// optimistic star flips, reconciled away on the next refresh
	pendingFavs map[string]bool

	inputs     []textinput.Model
	focusIndex int

	width  int
	height int
}

func New(a *api.Client, store *session.Store) Model {
	m := Model{
		api:         a,
		store:       store,
		section:     SectionFeed,
		pendingFavs: make(map[string]bool),
	}
	m.setupInputs()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStoriesCmd(), m.restoreSessionCmd(), textinput.Blink)
}

// setupInputs rebuilds the form inputs for the current section.
func (m *Model) setupInputs() {
	m.focusIndex = 0

	switch m.section {
	case SectionAuth:
		m.inputs = make([]textinput.Model, authInputCount)
		placeholders := []string{"username", "password", "name", "username", "password"}
		for i := range m.inputs {
			in := textinput.New()
			in.Placeholder = placeholders[i]
			in.CharLimit = 64
			if i == authLoginPass || i == authSignupPass {
				in.EchoMode = textinput.EchoPassword
			}
			m.inputs[i] = in
		}
	case SectionSubmit:
		m.inputs = make([]textinput.Model, submitInputCount)
		placeholders := []string{"author", "title", "url"}
		for i := range m.inputs {
			in := textinput.New()
			in.Placeholder = placeholders[i]
			in.CharLimit = 256
			m.inputs[i] = in
		}
	case SectionProfile:
		m.inputs = make([]textinput.Model, profileInputCount)
		m.inputs[profileName] = textinput.New()
		m.inputs[profileName].Placeholder = "new name"
		m.inputs[profileName].CharLimit = 55
		m.inputs[profilePassword] = textinput.New()
		m.inputs[profilePassword].Placeholder = "new password (optional)"
		m.inputs[profilePassword].EchoMode = textinput.EchoPassword
		if m.user != nil {
			m.inputs[profileName].SetValue(m.user.Name)
		}
	default:
		m.inputs = nil
	}

	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

// switchSection changes the visible page and resets per-page state.
func (m *Model) switchSection(s Section) {
	m.section = s
	m.cursor = 0
	m.err = nil
	m.status = ""
	m.setupInputs()
}

// visibleStories returns the list rendered by the current section.
func (m Model) visibleStories() []client.Story {
	switch m.section {
	case SectionFavorites:
		if m.user != nil {
			return m.user.Favorites
		}
	case SectionOwnStories:
		if m.user != nil {
			return m.user.OwnStories
		}
	case SectionFeed:
		if m.list != nil {
			return m.list.Stories
		}
	}
	return nil
}

// starred reports how the star icon should render right now: the user's
// favorites snapshot with any optimistic flip applied on top.
func (m Model) starred(storyID string) bool {
	if m.user == nil {
		return false
	}
	if flipped, ok := m.pendingFavs[storyID]; ok {
		return flipped
	}
	return m.user.IsFavorite(storyID)
}
