// Package tui is the terminal front end: one bubbletea model that renders the
// current screen inside a fixed-width phone frame and routes keys to it.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
	"github.com/jask/tacostay/internal/money"
	"github.com/jask/tacostay/internal/service"
)

// Options wires the app's collaborators and presentation settings. Zero
// values fall back to the built-in catalog, local mocks and default layout.
type Options struct {
	Catalog       catalog.Catalog
	Vault         service.EscrowVault
	Verifier      flow.OTPVerifier
	Currency      string
	PulseInterval time.Duration
	FrameWidth    int
	Log           *zap.Logger
}

const defaultFrameWidth = 46

// App ties together views.
type App struct {
	opts   Options
	ctrl   *flow.Controller
	keys   keyMap
	help   help.Model
	width  int
	height int
	status string

	// per-screen state, rebuilt every time the screen is entered
	signup  signupState
	pet     petState
	home    homeState
	booking bookingState
	orient  orientationState
	pulse   pulseState
	rating  ratingState

	escrow   escrowCmds
	hold     *service.Hold
	pulseGen int
}

func New(ctx context.Context, opts Options) *App {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if len(opts.Catalog.Sitters) == 0 {
		opts.Catalog = catalog.Catalog{Sitters: catalog.BuiltinSitters(), Events: catalog.BuiltinPulseEvents()}
	}
	if opts.Vault == nil {
		opts.Vault = service.NewLocalVault(opts.Log)
	}
	if opts.Verifier == nil {
		opts.Verifier = service.LengthVerifier{}
	}
	if opts.Currency == "" {
		opts.Currency = money.DefaultSymbol
	}
	if opts.PulseInterval <= 0 {
		opts.PulseInterval = flow.PulseInterval
	}
	if opts.FrameWidth <= 0 {
		opts.FrameWidth = defaultFrameWidth
	}
	return &App{
		opts:   opts,
		ctrl:   flow.NewController(flow.DefaultGraph(), opts.Log),
		keys:   defaultKeys(),
		help:   help.New(),
		escrow: newEscrowCmds(ctx, opts.Vault),
	}
}

// Screen reports the active screen.
func (a *App) Screen() flow.Screen { return a.ctrl.Screen() }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		a.status = ""
		return a, a.handleKey(m)
	case pulseTickMsg:
		return a, a.handlePulseTick(m)
	case escrowHeldMsg:
		return a, a.handleEscrowHeld(m)
	case escrowReleasedMsg:
		a.handleEscrowReleased(m)
		return a, nil
	case errMsg:
		a.opts.Log.Warn("ui error", zap.Error(m.err))
		a.status = m.err.Error()
	case statusMsg:
		a.status = string(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch a.ctrl.Screen() {
	case flow.ScreenSplash:
		return a.handleSplashKey(m)
	case flow.ScreenSignup:
		return a.handleSignupKey(m)
	case flow.ScreenPetProfile:
		return a.handlePetKey(m)
	case flow.ScreenHome:
		return a.handleHomeKey(m)
	case flow.ScreenSitterDetail:
		return a.handleSitterKey(m)
	case flow.ScreenBooking:
		return a.handleBookingKey(m)
	case flow.ScreenBookingConfirm:
		return a.handleConfirmKey(m)
	case flow.ScreenOrientation:
		return a.handleOrientationKey(m)
	case flow.ScreenPulse:
		return a.handlePulseKey(m)
	case flow.ScreenRating:
		return a.handleRatingKey(m)
	}
	return nil
}

// goTo follows an edge and resets the target screen. Refused transitions are
// no-ops; the controller logs why.
func (a *App) goTo(to flow.Screen) tea.Cmd {
	if err := a.ctrl.GoTo(to); err != nil {
		return nil
	}
	return a.enter(to)
}

func (a *App) back() tea.Cmd {
	if err := a.ctrl.Back(); err != nil {
		return nil
	}
	return a.enter(a.ctrl.Screen())
}

func (a *App) enter(s flow.Screen) tea.Cmd {
	switch s {
	case flow.ScreenSignup:
		a.signup = newSignupState()
	case flow.ScreenPetProfile:
		a.pet = newPetState()
	case flow.ScreenHome:
		a.home = newHomeState()
	case flow.ScreenBooking:
		a.booking = newBookingState()
	case flow.ScreenOrientation:
		a.orient = newOrientationState()
	case flow.ScreenPulse:
		return a.enterPulse()
	case flow.ScreenRating:
		a.rating = newRatingState(a.innerWidth())
	}
	return nil
}

func (a *App) money(amount int64) string {
	return money.Format(a.opts.Currency, amount)
}

func (a *App) View() string {
	sitter := a.ctrl.Sitter()
	s := a.ctrl.Screen()
	if s.RequiresSitter() && sitter == nil {
		// unreachable through the controller
		return a.renderFrame(s.Title(), false, "", mutedStyle.Render("No sitter selected"))
	}
	back := a.ctrl.Graph().HasBack(s)
	switch s {
	case flow.ScreenSplash:
		return a.renderFrame("", false, "", a.viewSplash())
	case flow.ScreenSignup:
		return a.renderFrame(s.Title(), back, "", a.viewSignup())
	case flow.ScreenPetProfile:
		return a.renderFrame(s.Title(), back, "", a.viewPet())
	case flow.ScreenHome:
		return a.renderFrame(s.Title(), back, "🐾", a.viewHome())
	case flow.ScreenSitterDetail:
		return a.renderFrame(s.Title(), back, "", a.viewSitter(sitter))
	case flow.ScreenBooking:
		return a.renderFrame(s.Title(), back, "", a.viewBooking(sitter))
	case flow.ScreenBookingConfirm:
		return a.renderFrame("", false, "", a.viewConfirm(sitter))
	case flow.ScreenOrientation:
		return a.renderFrame(s.Title(), back, "", a.viewOrientation(sitter))
	case flow.ScreenPulse:
		return a.renderFrame(s.Title(), back, badgeStyle.Render("🟢 LIVE"), a.viewPulse(sitter))
	case flow.ScreenRating:
		if a.rating.form.Submitted {
			return a.renderFrame("", false, "", a.viewThanks(sitter))
		}
		return a.renderFrame(s.Title(), back, "", a.viewRating(sitter))
	}
	return ""
}

// bindings are the keys shown in the footer for the active screen.
func (a *App) bindings() []key.Binding {
	k := a.keys
	var out []key.Binding
	switch a.ctrl.Screen() {
	case flow.ScreenSplash:
		out = []key.Binding{withHelp(k.Confirm, "get started")}
	case flow.ScreenSignup:
		if a.signup.form.Step == flow.StepAwaitingOTP {
			out = []key.Binding{withHelp(k.Confirm, "verify"), k.Change, k.Back}
		} else {
			out = []key.Binding{k.Next, withHelp(k.Toggle, "city"), withHelp(k.Confirm, "send OTP"), k.Back}
		}
	case flow.ScreenPetProfile:
		out = []key.Binding{k.Next, withHelp(k.Left, "choose"), withHelp(k.Confirm, "save"), k.Back}
	case flow.ScreenHome:
		out = []key.Binding{withHelp(k.Down, "select"), k.Filter, withHelp(k.Confirm, "view sitter"), k.Back}
	case flow.ScreenSitterDetail:
		out = []key.Binding{withHelp(k.Confirm, "book"), k.Back}
	case flow.ScreenBooking:
		out = []key.Binding{withHelp(k.Down, "tier"), withHelp(k.Toggle, "active care"), withHelp(k.Confirm, "pay"), k.Back}
	case flow.ScreenBookingConfirm:
		out = []key.Binding{withHelp(k.Confirm, "orientation")}
	case flow.ScreenOrientation:
		out = []key.Binding{withHelp(k.Down, "section"), withHelp(k.Toggle, "acknowledge"), withHelp(k.Confirm, "start stay"), k.Back}
	case flow.ScreenPulse:
		if a.pulse.rev.Done() {
			out = append(out, withHelp(k.Confirm, "close stay"))
		}
		out = append(out, k.Back)
	case flow.ScreenRating:
		if a.rating.form.Submitted {
			out = []key.Binding{withHelp(k.Confirm, "home")}
		} else {
			out = []key.Binding{k.Next, k.Stars, withHelp(k.Toggle, "favorite"), withHelp(k.Confirm, "submit")}
		}
	}
	return append(out, k.Quit)
}
