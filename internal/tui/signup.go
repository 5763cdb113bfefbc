package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/flow"
)

const (
	signupFocusName = iota
	signupFocusPhone
	signupFocusCity
	signupFields
)

type signupState struct {
	form  flow.SignupForm
	focus int
	name  textinput.Model
	phone textinput.Model
	otp   textinput.Model
}

// newInput builds a prompt-less text input with a steady cursor.
func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	_ = in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

func newSignupState() signupState {
	s := signupState{
		form:  flow.NewSignupForm(),
		name:  newInput("e.g. Rohan", 40),
		phone: newInput("+91 98765 43210", 20),
		otp:   newInput("● ● ● ●", flow.OTPLength),
	}
	s.setFocus(signupFocusName)
	return s
}

func (s *signupState) setFocus(i int) {
	s.focus = (i + signupFields) % signupFields
	s.name.Blur()
	s.phone.Blur()
	s.otp.Blur()
	switch s.focus {
	case signupFocusName:
		s.name.Focus()
	case signupFocusPhone:
		s.phone.Focus()
	}
}

func (a *App) handleSignupKey(m tea.KeyMsg) tea.Cmd {
	s := &a.signup
	if key.Matches(m, a.keys.Back) {
		return a.back()
	}

	if s.form.Step == flow.StepAwaitingOTP {
		switch {
		case key.Matches(m, a.keys.Change):
			s.form.ChangeNumber()
			s.setFocus(signupFocusName)
			return nil
		case key.Matches(m, a.keys.Confirm):
			if !s.form.Verify(a.opts.Verifier) {
				return nil
			}
			return a.goTo(flow.ScreenPetProfile)
		}
		var cmd tea.Cmd
		s.otp, cmd = s.otp.Update(m)
		s.form.SetOTP(s.otp.Value())
		return cmd
	}

	switch {
	case key.Matches(m, a.keys.Next, a.keys.Down):
		s.setFocus(s.focus + 1)
		return nil
	case key.Matches(m, a.keys.Prev, a.keys.Up):
		s.setFocus(s.focus - 1)
		return nil
	case key.Matches(m, a.keys.Confirm):
		if s.form.RequestOTP() {
			s.name.Blur()
			s.phone.Blur()
			s.otp.Focus()
		}
		return nil
	case s.focus == signupFocusCity:
		if key.Matches(m, a.keys.Left, a.keys.Right, a.keys.Toggle) {
			s.form.ToggleCity()
		}
		return nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case signupFocusName:
		s.name, cmd = s.name.Update(m)
		s.form.Name = s.name.Value()
	case signupFocusPhone:
		s.phone, cmd = s.phone.Update(m)
		s.form.Phone = s.phone.Value()
	}
	return cmd
}

func (a *App) viewSignup() string {
	s := a.signup
	w := a.innerWidth()
	lines := []string{
		center(w, "👋"),
		center(w, titleStyle.Render("Welcome, Pawrent!")),
		center(w, softStyle.Render("Let's set up your account in 30 seconds")),
		"",
	}

	if s.form.Step == flow.StepAwaitingOTP {
		phone := s.form.Phone
		if strings.TrimSpace(phone) == "" {
			phone = "+91 98765 43210"
		}
		lines = append(lines,
			a.wrapCenter(softStyle, "We sent a 4-digit code to "+titleStyle.Render(phone)),
			"",
			field("Enter OTP", "🔐 "+s.otp.View(), true),
			"",
			button("Verify & Continue 🐾", s.form.CanVerify(), false),
			"",
			accentStyle.Render("← Change number"),
		)
		return strings.Join(lines, "\n")
	}

	city := 0
	if s.form.City == flow.Cities[1] {
		city = 1
	}
	lines = append(lines,
		field("Your Name", "👤 "+s.name.View(), s.focus == signupFocusName),
		field("Phone Number", "📱 "+s.phone.View(), s.focus == signupFocusPhone),
		field("City", choice([]string{"🏙️ " + flow.Cities[0], "🌳 " + flow.Cities[1]}, city), s.focus == signupFocusCity),
		"",
		button("Send OTP →", s.form.CanRequestOTP(), false),
		"",
		center(w, mutedStyle.Render("── OR ──")),
		mutedStyle.Render("🔵 Continue with Google"),
		mutedStyle.Render("🔷 Continue with Facebook"),
	)
	return strings.Join(lines, "\n")
}
