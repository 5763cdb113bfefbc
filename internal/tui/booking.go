package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/booking"
	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

type bookingState struct {
	sel    booking.Selection
	paying bool
}

func newBookingState() bookingState {
	return bookingState{sel: booking.DefaultSelection()}
}

func (b *bookingState) cycleTier(delta int) {
	tiers := booking.Tiers()
	idx := 0
	for i, t := range tiers {
		if t.ID == b.sel.Tier {
			idx = i
		}
	}
	n := len(tiers)
	b.sel.Tier = tiers[((idx+delta)%n+n)%n].ID
}

func (a *App) handleBookingKey(m tea.KeyMsg) tea.Cmd {
	b := &a.booking
	if b.paying {
		return nil
	}
	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Up, a.keys.Prev):
		b.cycleTier(-1)
	case key.Matches(m, a.keys.Down, a.keys.Next):
		b.cycleTier(1)
	case key.Matches(m, a.keys.Toggle):
		b.sel.AddOn = !b.sel.AddOn
	case key.Matches(m, a.keys.Confirm):
		return a.pay()
	}
	return nil
}

// pay parks the total in escrow; the confirm screen opens once the hold lands.
func (a *App) pay() tea.Cmd {
	sitter := a.ctrl.Sitter()
	if sitter == nil {
		return nil
	}
	a.booking.paying = true
	q := booking.Quote(a.booking.sel)
	return a.escrow.hold(sitter.ID, q.Total)
}

func (a *App) handleEscrowHeld(m escrowHeldMsg) tea.Cmd {
	if a.ctrl.Screen() != flow.ScreenBooking || !a.booking.paying {
		a.opts.Log.Warn("escrow hold arrived off the booking screen", zap.String("ref", m.hold.Reference))
		return nil
	}
	a.booking.paying = false
	if m.err != nil {
		a.opts.Log.Error("escrow hold failed", zap.Error(m.err))
		a.status = "Payment failed: " + m.err.Error()
		return nil
	}
	h := m.hold
	a.hold = &h
	return a.goTo(flow.ScreenBookingConfirm)
}

func (a *App) viewBooking(s *catalog.Sitter) string {
	b := a.booking
	w := a.innerWidth()
	q := booking.Quote(b.sel)

	lines := []string{
		s.Photo + " " + titleStyle.Render(s.Name),
		softStyle.Render(fmt.Sprintf("%s %s • %s", s.Badge, s.Tier, s.Distance)),
		"",
		labelStyle.Render("SELECT SERVICE TIER"),
	}
	for _, t := range booking.Tiers() {
		mark := "○"
		name := titleStyle.Render(t.Name)
		if t.ID == b.sel.Tier {
			mark = focusStyle.Render("●")
			name = focusStyle.Render(t.Name)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", mark, t.Emoji, name), "    "+softStyle.Render(t.Desc))
	}

	if q.ShowsDates() {
		lines = append(lines, "",
			labelStyle.Render("CHECK-IN")+"        "+labelStyle.Render("CHECK-OUT"),
			priceStyle.Render(booking.CheckIn)+"  →  "+priceStyle.Render(booking.CheckOut),
			mutedStyle.Render(booking.CheckInDay+"      "+booking.CheckOutDay),
		)
	}

	box := "☐"
	careName := titleStyle.Render("Active Care Package")
	if b.sel.AddOn {
		box = warmStyle.Render("☑")
		careName = warnStyle.Render("Active Care Package")
	}
	lines = append(lines, "",
		box+" 🏷️ "+careName,
		"    "+softStyle.Render("Extra daily walk + JioTag GPS tracker"),
		"    "+warmStyle.Render(fmt.Sprintf("+%s for %d nights", a.money(booking.AddOnPrice()), booking.Nights)),
		"",
		accentStyle.Render("Price Breakdown"),
	)
	for _, l := range q.Lines() {
		lines = append(lines, spread(w, softStyle.Render(l.Label), titleStyle.Render(a.money(l.Amount))))
	}
	lines = append(lines,
		ruleStyle.Render(strings.Repeat("─", w)),
		spread(w, accentStyle.Render("Total"), priceStyle.Render(a.money(q.Total))),
	)
	if q.IncludesInsurance() {
		lines = append(lines, "", a.wrapCenter(successStyle, "✅ Includes "+a.money(25000)+" medical insurance for your pet"))
	}
	label := fmt.Sprintf("Pay %s → Escrow Vault 🔒", a.money(q.Total))
	if b.paying {
		label = "Securing payment…"
	}
	lines = append(lines, "", button(label, !b.paying, true))
	return strings.Join(lines, "\n")
}
