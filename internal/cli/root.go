// Package cli implements the railbook command line.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X railbook/internal/cli.Version=..."
var Version = "dev"

func Execute() {
	// .env is optional
	_ = godotenv.Load()

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "railbook",
		Short:        "Railbook - train ticket booking graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $RAILBOOK_CONFIG, ./railbook.yaml, XDG or /etc)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print repository metrics after the command")

	cmd.AddCommand(demoCmd(a))
	cmd.AddCommand(convertCmd(a))
	cmd.AddCommand(configCmd(a))
	cmd.AddCommand(versionCmd())
	return cmd
}
