package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tacostay/internal/flow"
)

// innerWidth is the usable text width inside the phone frame.
func (a *App) innerWidth() int {
	return max(10, a.opts.FrameWidth-frameStyle.GetHorizontalFrameSize())
}

// renderFrame draws the phone: optional header, body clipped to the frame
// width, and the key help below it.
func (a *App) renderFrame(title string, back bool, right string, body string) string {
	w := a.innerWidth()
	var lines []string
	if title != "" {
		head := headerStyle.Render(title)
		if back {
			head = backStyle.Render("←") + " " + head
		}
		if right != "" {
			gap := w - ansi.StringWidth(head) - ansi.StringWidth(right)
			head += strings.Repeat(" ", max(1, gap)) + right
		}
		lines = append(lines, head, ruleStyle.Render(strings.Repeat("─", w)))
	}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, ansi.Truncate(l, w, "…"))
	}

	avail := a.bodyHeight()
	if a.ctrl.Screen() == flow.ScreenPulse {
		lines = clipTail(lines, avail)
	} else {
		lines = clipHead(lines, avail)
	}

	phone := frameStyle.Width(w + frameStyle.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
	footer := a.renderFooter()
	out := lipgloss.JoinVertical(lipgloss.Center, phone, footer)
	if a.width == 0 || a.height == 0 {
		return out
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, out,
		lipgloss.WithWhitespaceBackground(colorBackdrop))
}

// bodyHeight is how many lines fit inside the frame; 0 means unbounded.
func (a *App) bodyHeight() int {
	if a.height == 0 {
		return 0
	}
	// border + footer + status
	return max(5, a.height-frameStyle.GetVerticalFrameSize()-2)
}

func (a *App) renderFooter() string {
	line := a.help.ShortHelpView(a.bindings())
	if a.status != "" {
		line = statusErrStyle.Render(a.status) + "\n" + line
	}
	return ansi.Truncate(line, max(a.opts.FrameWidth, a.width), "")
}

func clipHead(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

// clipTail keeps the newest lines when the body overflows.
func clipTail(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[len(lines)-height:]
}

// button renders an action, dimmed when disabled.
func button(label string, enabled bool, warm bool) string {
	switch {
	case !enabled:
		return disabledButton.Render(label)
	case warm:
		return warmButton.Render(label)
	default:
		return primaryButton.Render(label)
	}
}

// field renders a labelled form row, marking the focused one.
func field(label, value string, focused bool) string {
	marker := "  "
	l := labelStyle.Render(strings.ToUpper(label))
	if focused {
		marker = focusStyle.Render("▸ ")
		l = focusStyle.Render(strings.ToUpper(label))
	}
	return marker + l + "\n" + indentLines(value, "  ")
}

// choice renders a row of options with the selected one highlighted.
func choice(options []string, selected int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			parts[i] = chipOnStyle.Render(o)
		} else {
			parts[i] = chipStyle.Render(o)
		}
	}
	return strings.Join(parts, " ")
}

func center(w int, s string) string {
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, s)
}

// stars renders a five-star bar for rating r, filled up to floor(r).
func stars(r float64) string {
	full := int(r)
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= full {
			b.WriteString(goldStyle.Render("★"))
		} else {
			b.WriteString(ruleStyle.Render("★"))
		}
	}
	return b.String()
}

// wrap soft-wraps text to the frame width.
func (a *App) wrap(style lipgloss.Style, text string) string {
	return style.Width(a.innerWidth()).Render(text)
}

func (a *App) wrapCenter(style lipgloss.Style, text string) string {
	return style.Width(a.innerWidth()).Align(lipgloss.Center).Render(text)
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}

// spread places left and right at opposite edges of a w-wide line.
func spread(w int, left, right string) string {
	gap := w - ansi.StringWidth(left) - ansi.StringWidth(right)
	return left + strings.Repeat(" ", max(1, gap)) + right
}

func wrapWidth(style lipgloss.Style, text string, w int) string {
	return style.Width(max(1, w)).Render(text)
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
