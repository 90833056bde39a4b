package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"railbook/internal/codec"
)

func convertCmd(a *app) *cobra.Command {
	var format string
	var sqlitePath string
	var output string

	c := &cobra.Command{
		Use:   "convert <snapshot>",
		Short: "Import a snapshot file under fresh ids and export it again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := codec.ForPath(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open snapshot: %w", err)
			}
			defer f.Close()

			snap, err := in.Parse(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			result, err := a.catalog.Import(snap)
			if err != nil {
				return err
			}
			for entity, n := range result.Created {
				a.logger.Debug("imported entities", "entity", entity, "count", n)
			}
			if result.Dropped > 0 {
				a.logger.Warn("dropped unknown references", "count", result.Dropped)
			}

			w := cmd.OutOrStdout()
			if output != "" {
				if format == "" {
					format = strings.TrimPrefix(filepath.Ext(output), ".")
				}
				out, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer out.Close()
				w = out
			}

			return a.export(cmd.Context(), w, format, sqlitePath)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "", "output format: json or yaml (default from config or output extension)")
	c.Flags().StringVar(&sqlitePath, "sqlite", "", "also write the snapshot into this SQLite archive")
	c.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return c
}
