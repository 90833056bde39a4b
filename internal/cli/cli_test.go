package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"railbook/internal/codec"
	"railbook/internal/config"
	"railbook/internal/dto"
	"railbook/internal/repository/sqlite"
)

// writeConfig stores a fast-hashing config in a temp dir and clears env overrides
func writeConfig(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvLogLevel, config.EnvLogFormat, config.EnvExportFormat, config.EnvSQLitePath} {
		t.Setenv(key, "")
	}

	cfg := config.DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Security.PasswordCost = bcrypt.MinCost

	path := filepath.Join(t.TempDir(), "railbook.yaml")
	require.NoError(t, cfg.Save(path))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func parse(t *testing.T, format, data string) *dto.Snapshot {
	t.Helper()
	c, err := codec.ForFormat(format)
	require.NoError(t, err)
	snap, err := c.Parse(bytes.NewBufferString(data))
	require.NoError(t, err)
	return snap
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "railbook dev\n", out)
}

func TestDemo(t *testing.T) {
	cfgPath := writeConfig(t)

	out, logs, err := run(t, "demo", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)

	snap := parse(t, "json", out)
	assert.Len(t, snap.Stations, 3)
	assert.Len(t, snap.Trains, 2)
	assert.Len(t, snap.Economies, 2)
	assert.Len(t, snap.AgeGroups, 2)
	assert.Len(t, snap.Discounts, 2)
	assert.Len(t, snap.Users, 2)
	require.Len(t, snap.Tickets, 3)

	for _, u := range snap.Users {
		_, err := bcrypt.Cost([]byte(u.Password))
		assert.NoError(t, err, "password of %s is not a bcrypt hash", u.Email)
		assert.NotZero(t, u.TicketID)
	}
	for _, tk := range snap.Tickets {
		assert.NotEmpty(t, tk.Reference)
		require.NotNil(t, tk.StartStation)
		require.NotNil(t, tk.EndStation)
	}
	assert.Len(t, snap.Tickets[1].Discounts, 2)

	assert.Contains(t, logs, "booked ticket")
	assert.Contains(t, logs, `"quoted":738`)
	assert.Contains(t, logs, `"quoted":345`)
}

func TestDemoDefaultsToConfigFormat(t *testing.T) {
	cfgPath := writeConfig(t)

	out, _, err := run(t, "demo", "--config", cfgPath)
	require.NoError(t, err)

	snap := parse(t, "yaml", out)
	assert.Len(t, snap.Tickets, 3)
}

func TestDemoMetrics(t *testing.T) {
	cfgPath := writeConfig(t)

	_, logs, err := run(t, "demo", "--config", cfgPath, "--metrics")
	require.NoError(t, err)

	assert.Contains(t, logs, `railbook_repository_entities{entity="ticket"} 3`)
	assert.Contains(t, logs, `railbook_repository_operations_total{entity="ticket",op="save"} 3`)
	assert.Contains(t, logs, `railbook_repository_operations_total{entity="station",op="save"} 3`)
}

func TestDemoSQLite(t *testing.T) {
	cfgPath := writeConfig(t)
	dbPath := filepath.Join(t.TempDir(), "railbook.db")

	_, logs, err := run(t, "demo", "--config", cfgPath, "--sqlite", dbPath)
	require.NoError(t, err)
	assert.Contains(t, logs, "archived snapshot")

	archive, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	defer archive.Close()

	counts, err := archive.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, counts["tickets"])
	assert.Equal(t, 3, counts["stations"])
	assert.Equal(t, 3, counts["ticket_discounts"])

	routes, err := archive.Routes(context.Background())
	require.NoError(t, err)
	assert.Len(t, routes, 3)
}

func TestConvert(t *testing.T) {
	cfgPath := writeConfig(t)
	dir := t.TempDir()

	demo, _, err := run(t, "demo", "--config", cfgPath, "--format", "yaml")
	require.NoError(t, err)
	in := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(in, []byte(demo), 0644))

	t.Run("to stdout", func(t *testing.T) {
		out, _, err := run(t, "convert", in, "--config", cfgPath, "--format", "json")
		require.NoError(t, err)

		original := parse(t, "yaml", demo)
		converted := parse(t, "json", out)
		require.Len(t, converted.Tickets, len(original.Tickets))
		for i := range original.Tickets {
			assert.Equal(t, original.Tickets[i].Reference, converted.Tickets[i].Reference)
			assert.Equal(t, original.Tickets[i].Price, converted.Tickets[i].Price)
			assert.Equal(t, original.Tickets[i].StartStation.Name, converted.Tickets[i].StartStation.Name)
		}
		assert.Equal(t, original.Users[0].Password, converted.Users[0].Password)
	})

	t.Run("to file", func(t *testing.T) {
		outPath := filepath.Join(dir, "out.json")
		out, _, err := run(t, "convert", in, "--config", cfgPath, "-o", outPath)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Len(t, parse(t, "json", string(data)).Tickets, 3)
	})
}

func TestConvertErrors(t *testing.T) {
	cfgPath := writeConfig(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		data string
	}{
		{name: "unknown extension", file: "demo.txt", data: "{}"},
		{name: "missing file", file: "missing.yaml"},
		{name: "unsupported version", file: "old.json", data: `{"version": "0"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if tt.data != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))
			}
			_, _, err := run(t, "convert", path, "--config", cfgPath)
			assert.Error(t, err)
		})
	}
}

func TestMissingConfig(t *testing.T) {
	_, _, err := run(t, "demo", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	writeConfig(t)
	t.Setenv(config.EnvConfigPath, "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	target := filepath.Join(dir, "railbook", "config.yaml")

	out, _, err := run(t, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+target+"\n", out)

	_, _, err = run(t, "config", "init")
	assert.Error(t, err)

	_, _, err = run(t, "config", "init", "--force")
	assert.NoError(t, err)

	cfg, _, err := config.LoadFromPath(target)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Export, cfg.Export)

	out, _, err = run(t, "config", "show", "--config", target)
	require.NoError(t, err)
	assert.Contains(t, out, "source: "+target)
	assert.Contains(t, out, "Log: info/text, Export: yaml")
	assert.Contains(t, out, filepath.Join(dir, "railbook", "config.yaml"))
}
