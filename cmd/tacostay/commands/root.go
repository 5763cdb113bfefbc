package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/config"
	"github.com/jask/tacostay/internal/logging"
	"github.com/jask/tacostay/internal/service"
	"github.com/jask/tacostay/internal/tui"
)

// skipConfigLoad marks commands that must run even when the config file is
// unreadable. They see config.Default() and a no-op logger.
const skipConfigLoad = "tacostay/skip-config-load"

// state is shared by every subcommand of one invocation.
type state struct {
	cfgPath string
	cfg     config.Config
	log     *zap.Logger
}

func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree. Each call gets its own state.
func NewRootCmd() *cobra.Command {
	st := &state{log: zap.NewNop()}
	root := &cobra.Command{
		Use:          "tacostay",
		Short:        "Trust-first pet boarding, in your terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := cmd.Annotations[skipConfigLoad]; ok {
				st.cfg = config.Default()
				return nil
			}
			cfg, err := config.Load(st.cfgPath)
			if err != nil {
				return err
			}
			st.cfg = cfg
			log, err := logging.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			st.log = log.With(zap.String("cmd", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = st.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), st)
		},
	}
	root.PersistentFlags().StringVar(&st.cfgPath, "config", "", "config file (default $TACOSTAY_CONFIG or ~/.config/tacostay/config.toml)")

	root.AddCommand(catalogCmd(st), quoteCmd(st), replayCmd(st), configCmd(st))
	return root
}

func runApp(ctx context.Context, st *state) error {
	cat, closeFn, err := loadCatalog(ctx, st)
	if err != nil {
		return err
	}
	defer closeFn()

	st.log.Info("starting app",
		zap.String("catalog_source", st.cfg.Catalog.Source),
		zap.Int("sitters", len(cat.Sitters)))

	app := tui.New(ctx, tui.Options{
		Catalog:       cat,
		Vault:         service.NewLocalVault(st.log),
		Verifier:      service.LengthVerifier{},
		Currency:      st.cfg.UI.CurrencySymbol,
		PulseInterval: st.cfg.UI.PulseInterval,
		FrameWidth:    st.cfg.UI.FrameWidth,
		Log:           st.log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}
