// Package flow holds the app's view-state machines: the navigation controller
// and the per-screen form state. Nothing here renders or knows about the
// terminal.
package flow

// Screen identifies the visible view.
type Screen string

const (
	ScreenSplash         Screen = "splash"
	ScreenSignup         Screen = "signup"
	ScreenPetProfile     Screen = "pet_profile"
	ScreenHome           Screen = "home"
	ScreenSitterDetail   Screen = "sitter_detail"
	ScreenBooking        Screen = "booking"
	ScreenBookingConfirm Screen = "booking_confirm"
	ScreenOrientation    Screen = "orientation"
	ScreenPulse          Screen = "pulse"
	ScreenRating         Screen = "rating"
)

// Screens lists every screen in forward order.
var Screens = []Screen{
	ScreenSplash, ScreenSignup, ScreenPetProfile, ScreenHome, ScreenSitterDetail,
	ScreenBooking, ScreenBookingConfirm, ScreenOrientation, ScreenPulse, ScreenRating,
}

// RequiresSitter reports whether s can only be shown with a selected sitter.
func (s Screen) RequiresSitter() bool {
	switch s {
	case ScreenSitterDetail, ScreenBooking, ScreenBookingConfirm, ScreenOrientation, ScreenPulse, ScreenRating:
		return true
	}
	return false
}

// Title is the header text shown for screens that have one.
func (s Screen) Title() string {
	switch s {
	case ScreenSignup:
		return "Create Account"
	case ScreenPetProfile:
		return "Pet Profile"
	case ScreenHome:
		return "Find a Sitter"
	case ScreenSitterDetail:
		return "Sitter Profile"
	case ScreenBooking:
		return "Book a Stay"
	case ScreenBookingConfirm:
		return "Booking Confirmed"
	case ScreenOrientation:
		return "Orientation & Handbook"
	case ScreenPulse:
		return "The Pulse"
	case ScreenRating:
		return "Rate Your Stay"
	default:
		return "TacoStay"
	}
}

// Edges are the static transitions out of one screen.
type Edges struct {
	Next Screen
	Back Screen
}

// Graph is the adjacency list of allowed transitions. An empty Back means the
// screen has no back action.
type Graph map[Screen]Edges

// DefaultGraph is the app's navigation graph:
//
//	Splash → Signup → PetProfile → Home ⇄ SitterDetail → Booking →
//	BookingConfirm → Orientation → Pulse → Rating → Home
func DefaultGraph() Graph {
	return Graph{
		ScreenSplash:         {Next: ScreenSignup},
		ScreenSignup:         {Next: ScreenPetProfile, Back: ScreenSplash},
		ScreenPetProfile:     {Next: ScreenHome, Back: ScreenSignup},
		ScreenHome:           {Next: ScreenSitterDetail, Back: ScreenPetProfile},
		ScreenSitterDetail:   {Next: ScreenBooking, Back: ScreenHome},
		ScreenBooking:        {Next: ScreenBookingConfirm, Back: ScreenSitterDetail},
		ScreenBookingConfirm: {Next: ScreenOrientation},
		ScreenOrientation:    {Next: ScreenPulse, Back: ScreenBookingConfirm},
		ScreenPulse:          {Next: ScreenRating, Back: ScreenOrientation},
		ScreenRating:         {Next: ScreenHome},
	}
}

// Allows reports whether from → to is an edge.
func (g Graph) Allows(from, to Screen) bool {
	e, ok := g[from]
	if !ok || to == "" {
		return false
	}
	return e.Next == to || e.Back == to
}

// HasBack reports whether s has a back edge.
func (g Graph) HasBack(s Screen) bool {
	return g[s].Back != ""
}
