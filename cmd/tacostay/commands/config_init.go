package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/tacostay/internal/config"
)

var initForce bool

func configCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(configInitCmd(st))
	return cmd
}

func configInitCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with default values",
		Annotations: map[string]string{skipConfigLoad: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(st.cfgPath)
			if !initForce {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			written, err := config.Save(path, config.Default())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	}
	cmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	return cmd
}
