package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

const (
	ratingFocusStars = iota
	ratingFocusReview
	ratingFocusFavorite
	ratingFields
)

type ratingState struct {
	form   flow.RatingForm
	focus  int
	review textarea.Model
}

func newRatingState(width int) ratingState {
	ta := textarea.New()
	ta.Placeholder = "Tell other pawrents about your experience..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 500
	ta.SetWidth(max(10, width-2))
	ta.SetHeight(3)
	// enter submits the review
	ta.KeyMap.InsertNewline.SetEnabled(false)
	_ = ta.Cursor.SetMode(cursor.CursorStatic)
	return ratingState{review: ta}
}

func (r *ratingState) setFocus(i int) {
	r.focus = (i + ratingFields) % ratingFields
	if r.focus == ratingFocusReview {
		r.review.Focus()
	} else {
		r.review.Blur()
	}
}

func (a *App) handleRatingKey(m tea.KeyMsg) tea.Cmd {
	r := &a.rating
	if r.form.Submitted {
		if key.Matches(m, a.keys.Confirm) {
			return a.goTo(flow.ScreenHome)
		}
		return nil
	}

	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Next):
		r.setFocus(r.focus + 1)
		return nil
	case key.Matches(m, a.keys.Prev):
		r.setFocus(r.focus - 1)
		return nil
	case key.Matches(m, a.keys.Confirm):
		return a.submitReview()
	}

	if r.focus != ratingFocusReview && key.Matches(m, a.keys.Stars) {
		n, _ := strconv.Atoi(m.String())
		r.form.SetStars(n)
		return nil
	}

	switch r.focus {
	case ratingFocusStars:
		switch {
		case key.Matches(m, a.keys.Left):
			r.form.SetStars(r.form.Stars - 1)
		case key.Matches(m, a.keys.Right):
			r.form.SetStars(r.form.Stars + 1)
		}
	case ratingFocusFavorite:
		if key.Matches(m, a.keys.Toggle) {
			r.form.ToggleFavorite()
		}
	case ratingFocusReview:
		var cmd tea.Cmd
		r.review, cmd = r.review.Update(m)
		r.form.Review = r.review.Value()
		return cmd
	}
	return nil
}

// submitReview closes the stay and releases the escrow hold, if any.
func (a *App) submitReview() tea.Cmd {
	r := &a.rating
	if !r.form.Submit() {
		return nil
	}
	r.review.Blur()
	sitter := a.ctrl.Sitter()
	a.opts.Log.Info("review submitted",
		zap.Int("sitter_id", sitter.ID),
		zap.Int("stars", r.form.Stars),
		zap.Bool("favorite", r.form.Favorite))
	if a.hold == nil {
		return nil
	}
	return a.escrow.release(a.hold.Reference)
}

func (a *App) handleEscrowReleased(m escrowReleasedMsg) {
	if m.err != nil {
		a.opts.Log.Error("escrow release failed", zap.String("ref", m.ref), zap.Error(m.err))
		a.status = "Release failed: " + m.err.Error()
		return
	}
	if a.hold != nil && a.hold.Reference == m.ref {
		a.hold = nil
	}
}

func (a *App) viewRating(s *catalog.Sitter) string {
	r := a.rating
	w := a.innerWidth()

	var bar strings.Builder
	for i := 1; i <= flow.MaxStars; i++ {
		if i <= r.form.Stars {
			bar.WriteString(goldStyle.Render("★ "))
		} else {
			bar.WriteString(ruleStyle.Render("☆ "))
		}
	}
	fav := softStyle.Render("🤍 Add " + s.FirstName() + " to favorites?")
	if r.form.Favorite {
		fav = warnStyle.Render("💛 " + s.FirstName() + " is a favorite!")
	}

	lines := []string{
		center(w, s.Photo),
		a.wrapCenter(titleStyle, "How was your stay with "+s.FirstName()+"?"),
		center(w, softStyle.Render("Your feedback helps other pawrents")),
		"",
		field("Rating", strings.TrimSpace(bar.String()), r.focus == ratingFocusStars),
		field("Review", r.review.View(), r.focus == ratingFocusReview),
		field("Favorite", fav, r.focus == ratingFocusFavorite),
		"",
		button("Submit Review & Release Payment", r.form.CanSubmit(), false),
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewThanks(s *catalog.Sitter) string {
	w := a.innerWidth()
	lines := []string{
		"",
		center(w, "🎉"),
		center(w, titleStyle.Render("Thank you!")),
		a.wrapCenter(softStyle, "Your review helps build trust in the TacoStay community."),
		"",
	}
	if a.rating.form.Favorite {
		lines = append(lines, center(w, warnStyle.Render("💛 "+s.FirstName()+" added to favorites")), "")
	}
	lines = append(lines,
		spread(w, softStyle.Render("Payment released to sitter"), badgeStyle.Render("✅ Complete")),
		"",
		button("Back to Home 🏠", true, false),
	)
	return strings.Join(lines, "\n")
}
