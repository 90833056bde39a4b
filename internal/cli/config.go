package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"railbook/internal/config"
)

func configCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the railbook config file",
	}
	c.AddCommand(configShowCmd(a))
	c.AddCommand(configInitCmd())
	return c
}

func configShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print where the config was loaded from and its effective values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			from := a.cfgFrom
			if from == "" {
				from = "defaults"
			}
			fmt.Fprintf(out, "source: %s\n", from)
			fmt.Fprintf(out, "%s\n", a.cfg.Summary())
			fmt.Fprintln(out, "search paths:")
			for _, p := range config.SearchPaths() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		// an unreadable existing config must not block writing a fresh one
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists, use --force to overwrite", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "target file (default: XDG config dir, then ./railbook.yaml)")
	c.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return c
}
