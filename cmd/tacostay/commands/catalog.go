package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/tacostay/internal/catalog"
	"github.com/jask/tacostay/internal/config"
	"github.com/jask/tacostay/internal/money"
	"github.com/jask/tacostay/internal/service"
)

var (
	catalogTier   string
	catalogSearch string
)

func catalogCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List sitters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeFn, err := loadCatalog(cmd.Context(), st)
			if err != nil {
				return err
			}
			defer closeFn()
			list := catalog.Browse(c.Sitters, catalog.ParseTierFilter(catalogTier), catalogSearch)
			return writeSitterTable(cmd.OutOrStdout(), list, st.cfg.UI.CurrencySymbol)
		},
	}
	cmd.Flags().StringVar(&catalogTier, "tier", "all", "tier filter: all, elite or classic")
	cmd.Flags().StringVar(&catalogSearch, "search", "", "search by name or tag")
	cmd.AddCommand(reseedCmd(st), exportCmd(st))
	return cmd
}

func writeSitterTable(w io.Writer, list []*catalog.Sitter, symbol string) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No sitters match.")
		return err
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "TIER", "RATING", "DISTANCE", "PER NIGHT")
	for _, s := range list {
		t.Row(
			strconv.Itoa(s.ID),
			s.Name,
			string(s.Tier),
			fmt.Sprintf("%.1f (%d)", s.Rating, s.Reviews),
			s.Distance,
			money.Format(symbol, s.NightlyPrice),
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

var reseedFrom string

func reseedCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reseed",
		Short: "Replace the sqlite catalog with the built-in one (or --from a YAML file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var src catalog.Source = catalog.Builtin{}
			if reseedFrom != "" {
				src = catalog.YAMLFile{Path: reseedFrom}
			}
			c, err := catalog.Load(ctx, src)
			if err != nil {
				return err
			}
			db, err := openDB(ctx, st)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := &service.MaintenanceService{DB: db, Log: st.log}
			if err := svc.Reseed(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reseeded %s with %d sitters and %d pulse events.\n",
				st.cfg.Database.Path, len(c.Sitters), len(c.Events))
			return nil
		},
	}
	cmd.Flags().StringVar(&reseedFrom, "from", "", "YAML catalog to load instead of the built-in one")
	return cmd
}

var exportOut string

func exportCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeFn, err := loadCatalog(cmd.Context(), st)
			if err != nil {
				return err
			}
			defer closeFn()

			if exportOut == "" {
				return catalog.WriteYAML(cmd.OutOrStdout(), c)
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			if err := catalog.WriteYAML(f, c); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			st.log.Info("catalog exported", zap.String("path", exportOut), zap.String("source", st.cfg.Catalog.Source))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sitters to %s\n", len(c.Sitters), exportOut)
			if st.cfg.Catalog.Source == config.SourceBuiltin {
				fmt.Fprintf(cmd.OutOrStdout(), "Set catalog.source = %q and catalog.path to use it.\n", config.SourceYAML)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	return cmd
}
