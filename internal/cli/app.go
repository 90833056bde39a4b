package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"railbook/internal/codec"
	"railbook/internal/config"
	"railbook/internal/dto"
	"railbook/internal/logger"
	"railbook/internal/metrics"
	"railbook/internal/repository"
	"railbook/internal/repository/sqlite"
	"railbook/internal/service"
)

// app is the state shared by the subcommands of one invocation
type app struct {
	configPath string
	debug      bool
	metrics    bool

	cfg      *config.Config
	cfgFrom  string
	logger   *slog.Logger
	recorder *metrics.Recorder
	catalog  *service.Catalog
}

func (a *app) init(stderr io.Writer) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}
	if a.metrics {
		cfg.Metrics.Enabled = true
	}

	l, err := logger.Setup(stderr, logger.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	if path != "" {
		l.Debug("config loaded", "path", path, "summary", cfg.Summary())
	}

	a.cfg = cfg
	a.cfgFrom = path
	a.logger = l
	a.recorder = metrics.NewRecorder()

	registry := repository.NewRegistry(
		repository.WithLogger(l),
		repository.WithObserver(a.recorder),
	)
	a.catalog = service.NewCatalog(registry,
		service.WithLogger(l),
		service.WithPasswordCost(cfg.Security.PasswordCost),
	)
	return nil
}

func (a *app) finish(stderr io.Writer) error {
	if a.cfg == nil || !a.cfg.Metrics.Enabled {
		return nil
	}
	return a.recorder.WriteSummary(stderr)
}

// export writes the catalog snapshot to w and, when sqlitePath is set,
// into the archive at sqlitePath
func (a *app) export(ctx context.Context, w io.Writer, format, sqlitePath string) error {
	if format == "" {
		format = a.cfg.Export.Format
	}
	if sqlitePath == "" {
		sqlitePath = a.cfg.Export.SQLitePath
	}

	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}

	snap := a.catalog.Snapshot()
	if err := c.Export(snap, w); err != nil {
		return fmt.Errorf("export %s: %w", c.Format(), err)
	}
	a.logger.Info("exported snapshot", "format", c.Format(), "entities", snap.Len())

	if sqlitePath == "" {
		return nil
	}
	return a.archive(ctx, snap, sqlitePath)
}

func (a *app) archive(ctx context.Context, snap *dto.Snapshot, path string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Export.Timeout))
	defer cancel()

	archive, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := archive.Write(ctx, snap); err != nil {
		return err
	}

	routes, err := archive.Routes(ctx)
	if err != nil {
		return err
	}
	for _, r := range routes {
		a.logger.Info("archived route", "from", r.From, "to", r.To, "tickets", r.Tickets, "revenue", r.Revenue)
	}
	a.logger.Info("archived snapshot", "path", path)
	return nil
}
