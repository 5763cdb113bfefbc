package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/booking"
	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

func (a *App) handleConfirmKey(m tea.KeyMsg) tea.Cmd {
	if key.Matches(m, a.keys.Confirm) {
		return a.goTo(flow.ScreenOrientation)
	}
	return nil
}

func (a *App) viewConfirm(s *catalog.Sitter) string {
	w := a.innerWidth()
	rows := [][2]string{
		{"Sitter", s.Name},
		{"Dates", booking.CheckIn + " — " + booking.CheckOut},
		{"Pet", "Taco 🐕"},
	}
	lines := []string{
		"",
		center(w, "✅"),
		center(w, titleStyle.Render("Booking Confirmed!")),
		a.wrapCenter(softStyle, "Your payment is secured in TacoStay Escrow Vault. "+s.FirstName()+" has been notified."),
		"",
	}
	for _, r := range rows {
		lines = append(lines, spread(w, softStyle.Render(r[0]), titleStyle.Render(r[1])))
	}
	lines = append(lines, spread(w, softStyle.Render("Status"), badgeStyle.Render("Escrow Locked 🔒")))
	lines = append(lines,
		"",
		center(w, softStyle.Render("📋 Next step")),
		a.wrapCenter(accentStyle, "Complete the Pet Handbook & Orientation"),
		"",
		button("Complete Handbook & Orientation →", true, false),
	)
	return strings.Join(lines, "\n")
}
