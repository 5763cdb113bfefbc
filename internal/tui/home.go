package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

type homeState struct {
	search textinput.Model
	filter catalog.TierFilter
	cursor int
}

func newHomeState() homeState {
	h := homeState{
		search: newInput("Search by area, sitter name...", 40),
		filter: catalog.FilterAll,
	}
	h.search.Focus()
	return h
}

// visibleSitters is the filtered sitter list, pointers into the loaded catalog.
func (a *App) visibleSitters() []*catalog.Sitter {
	return catalog.Browse(a.opts.Catalog.Sitters, a.home.filter, a.home.search.Value())
}

func (h *homeState) cycleFilter(delta int) {
	n := len(catalog.TierFilters)
	idx := 0
	for i, f := range catalog.TierFilters {
		if f == h.filter {
			idx = i
		}
	}
	h.filter = catalog.TierFilters[((idx+delta)%n+n)%n]
	h.cursor = 0
}

func (a *App) handleHomeKey(m tea.KeyMsg) tea.Cmd {
	h := &a.home
	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Filter):
		h.cycleFilter(1)
		return nil
	case key.Matches(m, a.keys.Prev):
		h.cycleFilter(-1)
		return nil
	case key.Matches(m, a.keys.Up):
		h.cursor = max(0, h.cursor-1)
		return nil
	case key.Matches(m, a.keys.Down):
		h.cursor = min(len(a.visibleSitters())-1, h.cursor+1)
		h.cursor = max(0, h.cursor)
		return nil
	case key.Matches(m, a.keys.Confirm):
		list := a.visibleSitters()
		if h.cursor >= len(list) {
			return nil
		}
		if err := a.ctrl.SelectSitterAndAdvance(list[h.cursor], flow.ScreenSitterDetail); err != nil {
			return nil
		}
		return a.enter(flow.ScreenSitterDetail)
	}

	var cmd tea.Cmd
	h.search, cmd = h.search.Update(m)
	if n := len(a.visibleSitters()); h.cursor >= n {
		h.cursor = max(0, n-1)
	}
	return cmd
}

func (a *App) viewHome() string {
	h := a.home
	w := a.innerWidth()
	list := a.visibleSitters()

	chips := make([]string, len(catalog.TierFilters))
	selected := 0
	for i, f := range catalog.TierFilters {
		chips[i] = f.Label()
		if f == h.filter {
			selected = i
		}
	}

	count := titleStyle.Render(fmt.Sprintf("%d verified sitters near Powai", len(list)))
	sorted := mutedStyle.Render("Sorted by distance")
	lines := []string{
		softStyle.Render("Welcome back 👋"),
		"🔍 " + h.search.View(),
		choice(chips, selected),
		"",
		count,
		sorted,
		"",
	}
	if len(list) == 0 {
		lines = append(lines, mutedStyle.Render("No sitters match your search."))
	}
	for i, s := range list {
		lines = append(lines, a.sitterCard(s, i == h.cursor, w))
	}
	return strings.Join(lines, "\n")
}

func (a *App) sitterCard(s *catalog.Sitter, focused bool, w int) string {
	name := titleStyle.Render(s.Name) + " " + s.Badge
	meta := fmt.Sprintf("%s %.1f %s", stars(s.Rating), s.Rating, mutedStyle.Render(fmt.Sprintf("(%d) • %s", s.Reviews, s.Distance)))
	tags := s.Tags
	if len(tags) > 2 {
		tags = tags[:2]
	}
	price := priceStyle.Render(a.money(s.NightlyPrice)) + mutedStyle.Render("/night")
	body := strings.Join([]string{
		s.Photo + " " + name,
		meta,
		softStyle.Render(s.Bio),
		accentStyle.Render(strings.Join(tags, " · ")),
		price,
	}, "\n")

	style := cardStyle
	switch {
	case focused:
		style = cardOnStyle
	case s.IsElite():
		style = cardStyle.BorderForeground(colorGold)
	}
	cw := w - style.GetHorizontalFrameSize()
	return style.Width(cw + style.GetHorizontalPadding()).MaxHeight(7).Render(truncateLines(body, cw))
}
