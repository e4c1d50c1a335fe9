package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/handler/filehandler"
	"github.com/philipp01105/sblog/handler/multihandler"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`{
		// lenient syntax
		name: "Checkout",
		path: "Logs/checkout.txt",
		level: "warning",
	}`))
	require.NoError(t, err)

	assert.Equal(t, Config{Name: "Checkout", Path: "Logs/checkout.txt", Level: "warning"}, cfg)
}

func TestParse_UnknownLevel(t *testing.T) {
	_, err := Parse([]byte(`{name: "x", level: "loud"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownLevel))
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{name: `))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "Logs", "app.txt")
	cfgPath := filepath.Join(dir, "sblog.json5")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{name: "App", path: "`+filepath.ToSlash(logPath)+`", level: "INFO"}`), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	log, err := cfg.Build()
	require.NoError(t, err)

	level, ok := log.Level()
	require.True(t, ok)
	assert.Equal(t, core.Info, level)
	assert.Equal(t, "App", log.Name())

	require.NoError(t, log.Fine("dropped"))
	require.NoError(t, log.Severe("kept"))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SEVERE - App(")
	assert.NotContains(t, string(data), "dropped")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json5"))
	assert.Error(t, err)
}

func TestBuild_Defaults(t *testing.T) {
	log, err := Config{Name: "Default"}.Build()
	require.NoError(t, err)

	fh, ok := log.Handler().(*filehandler.FileHandler)
	require.True(t, ok)
	assert.Equal(t, filehandler.DefaultPath, fh.Path())

	level, ok := log.Level()
	require.True(t, ok)
	assert.Equal(t, core.All, level)
}

func TestBuild_Console(t *testing.T) {
	log, err := Config{Name: "Both", Path: filepath.Join(t.TempDir(), "out.txt"), Console: true}.Build()
	require.NoError(t, err)

	multi, ok := log.Handler().(*multihandler.MultiHandler)
	require.True(t, ok)
	assert.Len(t, multi.Handlers(), 2)
}

func TestBuild_InvalidLevel(t *testing.T) {
	_, err := Config{Level: "loud"}.Build()
	assert.ErrorIs(t, err, core.ErrUnknownLevel)
}
