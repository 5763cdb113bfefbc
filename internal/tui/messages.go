package tui

import "github.com/jask/tacostay/internal/service"

type errMsg struct{ err error }

type statusMsg string

// pulseTickMsg reveals the next pulse event. gen ties the tick to one visit
// of the pulse screen.
type pulseTickMsg struct{ gen int }

type escrowHeldMsg struct {
	hold service.Hold
	err  error
}

type escrowReleasedMsg struct {
	ref string
	err error
}
