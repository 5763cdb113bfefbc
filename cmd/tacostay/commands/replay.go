package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/flow"
)

var replayInterval time.Duration

func replayCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Stream the live pulse timeline to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeFn, err := loadCatalog(cmd.Context(), st)
			if err != nil {
				return err
			}
			defer closeFn()

			interval := replayInterval
			if interval <= 0 {
				interval = st.cfg.UI.PulseInterval
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shown, err := replay(ctx, cmd.OutOrStdout(), c.Events, interval)
			st.log.Info("replay finished", zap.Int("shown", shown), zap.Int("total", len(c.Events)))
			return err
		},
	}
	cmd.Flags().DurationVar(&replayInterval, "interval", 0, "delay between events (default ui.pulse_interval)")
	return cmd
}

// replay prints events the way the pulse screen reveals them and returns how
// many were shown. Cancelling ctx stops early without error.
func replay(ctx context.Context, w io.Writer, events []catalog.PulseEvent, interval time.Duration) (int, error) {
	rev := flow.NewRevealer(len(events))
	shown := 0
	flush := func() error {
		for ; shown < rev.Visible(); shown++ {
			if err := writeEvent(w, events[shown]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := flush(); err != nil {
		return shown, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !rev.Done() {
		select {
		case <-ctx.Done():
			fmt.Fprintln(w, "(stopped)")
			return shown, nil
		case <-ticker.C:
			rev.Advance()
			if err := flush(); err != nil {
				return shown, err
			}
		}
	}
	_, err := fmt.Fprintln(w, "Stay complete. Enter the end OTP in the app to close it.")
	return shown, err
}

func writeEvent(w io.Writer, e catalog.PulseEvent) error {
	extra := ""
	if e.HasGPS {
		extra += " [gps]"
	}
	if e.HasPhoto {
		extra += " [photo]"
	}
	_, err := fmt.Fprintf(w, "%-9s %s %s%s\n", e.Time, e.Emoji, e.Text, extra)
	return err
}
