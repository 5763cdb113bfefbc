package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/service"
)

// escrowCmds builds the async vault calls. The program context is captured
// here when the app is built, so vault calls are cancelled with the program.
type escrowCmds struct {
	hold    func(sitterID int, amount int64) tea.Cmd
	release func(ref string) tea.Cmd
}

func newEscrowCmds(ctx context.Context, vault service.EscrowVault) escrowCmds {
	return escrowCmds{
		hold: func(sitterID int, amount int64) tea.Cmd {
			return func() tea.Msg {
				h, err := vault.Hold(ctx, sitterID, amount)
				return escrowHeldMsg{hold: h, err: err}
			}
		},
		release: func(ref string) tea.Cmd {
			return func() tea.Msg {
				return escrowReleasedMsg{ref: ref, err: vault.Release(ctx, ref)}
			}
		},
	}
}
