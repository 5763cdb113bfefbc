package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

type pulseState struct {
	rev flow.Revealer
	gen int
}

// enterPulse starts a fresh reveal. Each visit gets its own generation so
// ticks scheduled by an earlier visit die on arrival.
func (a *App) enterPulse() tea.Cmd {
	a.pulseGen++
	a.pulse = pulseState{rev: flow.NewRevealer(len(a.opts.Catalog.Events)), gen: a.pulseGen}
	return a.schedulePulse()
}

func (a *App) schedulePulse() tea.Cmd {
	if a.pulse.rev.Done() {
		return nil
	}
	gen := a.pulse.gen
	return tea.Tick(a.opts.PulseInterval, func(time.Time) tea.Msg {
		return pulseTickMsg{gen: gen}
	})
}

func (a *App) handlePulseTick(m pulseTickMsg) tea.Cmd {
	if a.ctrl.Screen() != flow.ScreenPulse || m.gen != a.pulse.gen {
		return nil
	}
	if !a.pulse.rev.Advance() {
		return nil
	}
	return a.schedulePulse()
}

func (a *App) handlePulseKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Confirm):
		if !a.pulse.rev.Done() {
			return nil
		}
		return a.goTo(flow.ScreenRating)
	}
	return nil
}

func (a *App) viewPulse(s *catalog.Sitter) string {
	w := a.innerWidth()
	p := a.pulse
	lines := []string{
		spread(w, s.Photo+" "+titleStyle.Render(s.Name), successStyle.Render("Active")),
		"   " + softStyle.Render("Caring for Taco 🐕 • Day 1 of 3"),
		"",
	}
	events := a.opts.Catalog.Events
	for _, e := range events[:p.rev.Visible()] {
		head := accentStyle.Render(e.Time)
		if e.HasGPS {
			head = spread(w-3, head, badgeStyle.Render("📍 GPS Tracked"))
		}
		lines = append(lines, e.Emoji+" "+head)
		lines = append(lines, indentLines(wrapWidth(titleStyle, e.Text, w-3), "│  "))
		if e.HasGPS {
			lines = append(lines, "│  "+softStyle.Render("🏃 "+e.Distance+"   ⏱️ "+e.Duration))
		}
		if e.HasPhoto {
			lines = append(lines, "│  "+mutedStyle.Render("📸 Photo attached"))
		}
		lines = append(lines, "│")
	}
	if p.rev.Done() {
		lines = append(lines, "", button("Enter End OTP & Close Stay", true, true))
	} else {
		lines = append(lines, center(w, accentStyle.Render("● Live updates incoming...")))
	}
	return strings.Join(lines, "\n")
}
