package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/flow"
)

func (a *App) handleSplashKey(m tea.KeyMsg) tea.Cmd {
	if key.Matches(m, a.keys.Confirm) {
		return a.goTo(flow.ScreenSignup)
	}
	return nil
}

func (a *App) viewSplash() string {
	w := a.innerWidth()
	lines := []string{
		"",
		center(w, "🐾"),
		center(w, brandStyle.Render("TacoStay")),
		center(w, accentStyle.Render("EASE OF MIND, ALWAYS")),
		"",
		a.wrapCenter(softStyle, "India's trust-first pet boarding platform. Because your furry family deserves verified love."),
		"",
		center(w, button("🐕 Get Started", true, true)),
		"",
		center(w, mutedStyle.Render("Available in Mumbai & Bangalore")),
	}
	return strings.Join(lines, "\n")
}
