package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

func (a *App) handleSitterKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Confirm):
		return a.goTo(flow.ScreenBooking)
	}
	return nil
}

func trustBadges(s *catalog.Sitter) []string {
	var out []string
	if s.BGVVerified {
		out = append(out, "✅ BGV Verified")
	}
	if s.VideoIntro {
		out = append(out, "📹 Video Intro")
	}
	if s.Social.LinkedIn {
		out = append(out, "🔗 LinkedIn")
	}
	if s.Social.Facebook {
		out = append(out, "👤 Facebook")
	}
	return out
}

func (a *App) viewSitter(s *catalog.Sitter) string {
	w := a.innerWidth()
	tier := accentStyle
	if s.IsElite() {
		tier = goldStyle.Bold(true)
	}
	lines := []string{
		center(w, s.Photo),
		center(w, titleStyle.Render(s.Name)),
		center(w, tier.Render(fmt.Sprintf("%s %s Sitter", s.Badge, s.Tier))),
		"",
		a.wrapCenter(badgeStyle, strings.Join(trustBadges(s), "  ")),
		"",
		center(w, fmt.Sprintf("⭐ %s   🏠 %s   💜 %s",
			priceStyle.Render(fmt.Sprintf("%.1f", s.Rating)),
			priceStyle.Render(fmt.Sprintf("%d", s.CompletedGigs)),
			priceStyle.Render(fmt.Sprintf("%d%%", s.EmpathyScore)))),
		center(w, mutedStyle.Render("Rating      Gigs      Empathy")),
		"",
		accentStyle.Render("About"),
		a.wrap(softStyle, s.Bio),
		"",
		a.wrap(accentStyle, strings.Join(s.Tags, " · ")),
		"",
		center(w, "▶️ "+accentStyle.Render("Watch Video Introduction")),
		center(w, softStyle.Render("30-second vibe check from "+s.FirstName())),
		"",
		button(fmt.Sprintf("Book %s — %s/night", s.FirstName(), a.money(s.NightlyPrice)), true, false),
	}
	return strings.Join(lines, "\n")
}
