package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewNav())
	b.WriteString("\n\n")

	switch m.section {
	case SectionFeed, SectionFavorites, SectionOwnStories:
		b.WriteString(m.viewStories())
	case SectionSubmit:
		b.WriteString(m.viewSubmit())
	case SectionProfile:
		b.WriteString(m.viewProfile())
	case SectionAuth:
		b.WriteString(m.viewAuth())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	return b.String()
}

func (m Model) viewNav() string {
	sections := []Section{SectionFeed, SectionSubmit, SectionFavorites, SectionOwnStories, SectionProfile}
	parts := make([]string, 0, len(sections)+1)
	for i, s := range sections {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == m.section {
			parts = append(parts, navActiveStyle.Render(label))
		} else {
			parts = append(parts, navStyle.Render(label))
		}
	}

	account := "l login"
	if m.user != nil {
		account = "l logout (" + m.user.Username + ")"
	}
	if m.section == SectionAuth {
		parts = append(parts, navActiveStyle.Render(account))
	} else {
		parts = append(parts, navStyle.Render(account))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewStories() string {
	stories := m.visibleStories()
	if len(stories) == 0 {
		if m.loading {
			return helpStyle.Render("loading...")
		}
		return helpStyle.Render("no stories here yet")
	}

	var b strings.Builder
	for i, s := range stories {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		star := "  "
		if m.starred(s.StoryID) {
			star = starStyle.Render("★ ")
		}

		host := s.Host()
		if host != "" {
			host = hostStyle.Render(" (" + host + ")")
		}

		b.WriteString(cursor + star + titleStyle.Render(s.Title) + host + "\n")
		b.WriteString("      " + bylineStyle.Render("by "+s.Author+" | posted by "+s.Username) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("j/k move · enter show url · f favorite · d delete own · r reload · q quit"))
	return b.String()
}

func (m Model) viewSubmit() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("submit a story") + "\n\n")
	labels := []string{"author", "title", "url"}
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-7s %s\n", labels[i], in.View()))
	}
	b.WriteString("\n" + helpStyle.Render("enter submit · tab next field · esc back"))
	return formBoxStyle.Render(b.String())
}

func (m Model) viewProfile() string {
	if m.user == nil {
		return helpStyle.Render("not logged in")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("profile: "+m.user.Username) + "\n\n")
	b.WriteString(fmt.Sprintf("name       %s\n", m.user.Name))
	b.WriteString(fmt.Sprintf("joined     %s\n", m.user.CreatedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("favorites  %d\n", len(m.user.Favorites)))
	b.WriteString(fmt.Sprintf("stories    %d\n\n", len(m.user.OwnStories)))

	b.WriteString("name     " + m.inputs[profileName].View() + "\n")
	b.WriteString("password " + m.inputs[profilePassword].View() + "\n")
	b.WriteString("\n" + helpStyle.Render("enter save · ctrl+d delete account · esc back"))
	return formBoxStyle.Render(b.String())
}

func (m Model) viewAuth() string {
	var login strings.Builder
	login.WriteString(titleStyle.Render("log in") + "\n\n")
	login.WriteString("username " + m.inputs[authLoginUser].View() + "\n")
	login.WriteString("password " + m.inputs[authLoginPass].View() + "\n")

	var signup strings.Builder
	signup.WriteString(titleStyle.Render("sign up") + "\n\n")
	signup.WriteString("name     " + m.inputs[authSignupName].View() + "\n")
	signup.WriteString("username " + m.inputs[authSignupUser].View() + "\n")
	signup.WriteString("password " + m.inputs[authSignupPass].View() + "\n")

	forms := lipgloss.JoinHorizontal(lipgloss.Top,
		formBoxStyle.Render(login.String()),
		" ",
		formBoxStyle.Render(signup.String()),
	)
	return forms + "\n" + helpStyle.Render("enter submit focused form · tab next field · esc back")
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	if m.loading {
		return statusStyle.Render("working...")
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}
