package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

type orientationState struct {
	checks flow.Checklist
	cursor int
}

func newOrientationState() orientationState {
	return orientationState{checks: flow.NewChecklist()}
}

func (a *App) handleOrientationKey(m tea.KeyMsg) tea.Cmd {
	o := &a.orient
	sections := flow.Handbook()
	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Up, a.keys.Prev):
		o.cursor = (o.cursor - 1 + len(sections)) % len(sections)
	case key.Matches(m, a.keys.Down, a.keys.Next):
		o.cursor = (o.cursor + 1) % len(sections)
	case key.Matches(m, a.keys.Toggle):
		o.checks.Toggle(sections[o.cursor].Key)
	case key.Matches(m, a.keys.Confirm):
		if !o.checks.Ready() {
			return nil
		}
		return a.goTo(flow.ScreenPulse)
	}
	return nil
}

func (a *App) viewOrientation(s *catalog.Sitter) string {
	o := a.orient
	w := a.innerWidth()
	lines := []string{
		center(w, "📋"),
		center(w, titleStyle.Render("Pet Handbook")),
		center(w, softStyle.Render("Taco's care instructions for "+s.FirstName())),
		"",
	}
	for i, sec := range flow.Handbook() {
		box := "☐"
		if o.checks.Checked(sec.Key) {
			box = successStyle.Render("☑")
		}
		title := titleStyle.Render(sec.Title)
		marker := "  "
		if i == o.cursor {
			marker = focusStyle.Render("▸ ")
			title = focusStyle.Render(sec.Title)
		}
		lines = append(lines, marker+box+" "+sec.Emoji+" "+title)
		for _, item := range sec.Items {
			lines = append(lines, indentLines(wrapWidth(softStyle, "• "+item, w-4), "    "))
		}
		lines = append(lines, "")
	}

	ready := o.checks.Ready()
	if ready {
		lines = append(lines,
			center(w, "🤝"),
			center(w, successStyle.Render("Digital Handshake Ready!")),
			a.wrapCenter(softStyle, s.FirstName()+" has acknowledged all care notes. Both parties are aligned."),
		)
	} else {
		lines = append(lines,
			center(w, "✍️"),
			center(w, titleStyle.Render("The Digital Handshake")),
			a.wrapCenter(softStyle, "The sitter must acknowledge each section above before the stay begins."),
		)
	}
	label := "Complete all checks to continue"
	if ready {
		label = "Start the Stay — View Pulse 🐾"
	}
	lines = append(lines, "", button(label, ready, false))
	return strings.Join(lines, "\n")
}
