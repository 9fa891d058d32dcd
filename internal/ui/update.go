package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dortanez/hack-or-snooze/internal/validators"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storiesLoadedMsg:
		m.loading = false
		m.list = msg.list
		return m, nil

	case sessionRestoredMsg:
		m.loading = false
		if msg.user != nil {
			m.user = msg.user
			m.status = "welcome back, " + m.user.Username
		}
		return m, nil

	case authSuccessMsg:
		m.loading = false
		m.user = msg.user
		m.switchSection(SectionFeed)
		m.status = "logged in as " + m.user.Username
		return m, nil

	case storyAddedMsg:
		m.loading = false
		m.list = msg.list
		m.user = msg.user
		m.switchSection(SectionFeed)
		m.status = "story posted: " + msg.story.Title
		return m, nil

	case storyRemovedMsg:
		m.loading = false
		m.list = msg.list
		m.user = msg.user
		if max := len(m.visibleStories()); m.cursor >= max && max > 0 {
			m.cursor = max - 1
		}
		m.status = "story deleted"
		return m, nil

	case favoriteToggledMsg:
		m.loading = false
		m.user = msg.user
		// server state has been refetched; drop the optimistic flip
		delete(m.pendingFavs, msg.storyID)
		return m, nil

	case profileUpdatedMsg:
		m.loading = false
		m.user = msg.user
		m.status = "profile saved"
		return m, nil

	case accountDeletedMsg:
		m.loading = false
		m.user = nil
		m.switchSection(SectionFeed)
		m.status = "account deleted"
		return m, nil

	case loggedOutMsg:
		m.loading = false
		m.user = nil
		m.switchSection(SectionFeed)
		m.status = "logged out"
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		// a failed toggle must not leave a lying star behind
		m.pendingFavs = make(map[string]bool)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	if m.inForm() {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) inForm() bool {
	return m.section == SectionAuth || m.section == SectionSubmit || m.section == SectionProfile
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stories := m.visibleStories()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "1":
		m.switchSection(SectionFeed)
	case "2":
		if m.requireLogin() {
			m.switchSection(SectionSubmit)
		}
	case "3":
		if m.requireLogin() {
			m.switchSection(SectionFavorites)
		}
	case "4":
		if m.requireLogin() {
			m.switchSection(SectionOwnStories)
		}
	case "5":
		if m.requireLogin() {
			m.switchSection(SectionProfile)
		}
	case "l":
		if m.user == nil {
			m.switchSection(SectionAuth)
		} else {
			m.loading = true
			return m, m.logoutCmd()
		}

	case "j", "down":
		if m.cursor < len(stories)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "enter":
		if m.cursor < len(stories) {
			m.status = stories[m.cursor].URL
		}

	case "f":
		if m.user == nil {
			m.status = "log in to favorite stories"
			break
		}
		if m.cursor < len(stories) {
			id := stories[m.cursor].StoryID
			// flip the star right away; the refresh reconciles it
			m.pendingFavs[id] = !m.starred(id)
			m.loading = true
			return m, m.toggleFavoriteCmd(id)
		}

	case "d":
		if m.user == nil || m.cursor >= len(stories) {
			break
		}
		id := stories[m.cursor].StoryID
		if !m.user.OwnsStory(id) {
			m.status = "you can only delete your own stories"
			break
		}
		m.loading = true
		return m, m.removeStoryCmd(id)

	case "r":
		m.loading = true
		return m, m.fetchStoriesCmd()
	}

	return m, nil
}

// requireLogin gates the logged-in sections; it nudges toward the auth page
// instead of switching.
func (m *Model) requireLogin() bool {
	if m.user == nil {
		m.status = "log in first (press l)"
		return false
	}
	return true
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.switchSection(SectionFeed)
		return m, nil

	case "tab", "shift+tab", "up", "down":
		dir := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			dir = -1
		}
		m.focusIndex = (m.focusIndex + dir + len(m.inputs)) % len(m.inputs)
		cmds := make([]tea.Cmd, 0, len(m.inputs))
		for i := range m.inputs {
			if i == m.focusIndex {
				cmds = append(cmds, m.inputs[i].Focus())
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)

	case "enter":
		return m.submitForm()

	case "ctrl+d":
		if m.section == SectionProfile && m.user != nil {
			m.loading = true
			return m, m.deleteAccountCmd()
		}
	}

	return m.updateInputs(msg)
}

// submitForm dispatches the enter key of whichever form is visible.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.section {
	case SectionAuth:
		if m.focusIndex <= authLoginPass {
			req := validators.LoginUserRequest{
				Username: strings.TrimSpace(m.inputs[authLoginUser].Value()),
				Password: m.inputs[authLoginPass].Value(),
			}
			if err := req.Validate(); err != nil {
				m.err = err
				return m, nil
			}
			m.loading = true
			return m, m.loginCmd(req.Username, req.Password)
		}
		req := validators.SignupUserRequest{
			Username: strings.TrimSpace(m.inputs[authSignupUser].Value()),
			Password: m.inputs[authSignupPass].Value(),
			Name:     strings.TrimSpace(m.inputs[authSignupName].Value()),
		}
		if err := req.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.loading = true
		return m, m.signupCmd(req.Username, req.Password, req.Name)

	case SectionSubmit:
		if m.user == nil || m.list == nil {
			return m, nil
		}
		draft := validators.SubmitStoryRequest{
			Author: strings.TrimSpace(m.inputs[submitAuthor].Value()),
			Title:  strings.TrimSpace(m.inputs[submitTitle].Value()),
			URL:    strings.TrimSpace(m.inputs[submitURL].Value()),
		}
		if err := draft.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.loading = true
		return m, m.submitStoryCmd(draft)

	case SectionProfile:
		if m.user == nil {
			return m, nil
		}
		patch := validators.UpdateProfileRequest{}
		if name := strings.TrimSpace(m.inputs[profileName].Value()); name != "" && name != m.user.Name {
			patch.Name = &name
		}
		if pass := m.inputs[profilePassword].Value(); pass != "" {
			patch.Password = &pass
		}
		if patch.Name == nil && patch.Password == nil {
			m.status = "nothing to save"
			return m, nil
		}
		if err := patch.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.loading = true
		return m, m.updateProfileCmd(patch)
	}

	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}
