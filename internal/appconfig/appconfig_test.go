package appconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/internal/appconfig"
	"github.com/0xalexb/hjarta-config/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	require.NoError(t, err)

	err = os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestSchema_Default(t *testing.T) {
	t.Parallel()

	assert.Equal(t, appconfig.Config{
		Title: "Amethyst game",
		En:    appconfig.Option1,
		Display: appconfig.DisplayConfig{
			Brightness: 1.0,
			Fullscreen: false,
			Size:       [2]uint16{1024, 768},
		},
		Logging: logging.LoggerConfig{
			Level:   "info",
			Format:  logging.FormatJSON,
			File:    "",
			MaxSize: 10_000_000,
		},
		Inner:      appconfig.InnerConfig{InnerInner: appconfig.InnerInnerConfig{Field: 58123}},
		InnerInner: appconfig.InnerInnerConfig{Field: 58123},
	}, appconfig.Schema.Default())
}

func TestLoad_DisplayFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "title: X\ndisplay: extern\n")
	writeFile(t, dir, "display/config.yml", "brightness: 0.5\n")

	cfg, err := appconfig.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "X", cfg.Title)
	assert.InDelta(t, 0.5, cfg.Display.Brightness, 0.0001)
	assert.False(t, cfg.Display.Fullscreen)
	assert.Equal(t, [2]uint16{1024, 768}, cfg.Display.Size)
}

func TestLoad_EmptyDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "")

	cfg, err := appconfig.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, appconfig.Schema.Default(), cfg)
}

func TestLoad_OversizedArrayFallsBack(t *testing.T) {
	t.Parallel()

	report := &config.Report{}

	cfg, err := appconfig.NewLoader(config.WithReport(report)).
		LoadBytes([]byte("display:\n  size: [1, 2, 3]\n  fullscreen: true\n"), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, [2]uint16{1024, 768}, cfg.Display.Size)
	assert.True(t, cfg.Display.Fullscreen)
	require.Len(t, report.Problems(), 1)
	assert.Equal(t, "display.size", report.Problems()[0].Path)
}

func TestLoad_FullTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
title: Full
en: Option3
display:
  brightness: 0.8
  fullscreen: true
  size: [1920, 1080]
logging: extern
inner: extern
inner_inner:
  field: 1
`)
	writeFile(t, dir, "logging.yaml", "level: debug\nformat: text\nfile: game.log\nmax_size: 1 MiB\n")
	writeFile(t, dir, "inner/config.yaml", "inner_inner: extern\n")
	writeFile(t, dir, "inner/inner_inner.yml", "field: 2\n")

	report := &config.Report{}

	cfg, err := appconfig.NewLoader(config.WithReport(report)).Load(path)
	require.NoError(t, err)

	assert.Equal(t, appconfig.Config{
		Title: "Full",
		En:    appconfig.Option3,
		Display: appconfig.DisplayConfig{
			Brightness: 0.8,
			Fullscreen: true,
			Size:       [2]uint16{1920, 1080},
		},
		Logging: logging.LoggerConfig{
			Level:   "debug",
			Format:  logging.FormatText,
			File:    "game.log",
			MaxSize: 1 << 20,
		},
		Inner:      appconfig.InnerConfig{InnerInner: appconfig.InnerInnerConfig{Field: 2}},
		InnerInner: appconfig.InnerInnerConfig{Field: 1},
	}, cfg)
	assert.Empty(t, report.Issues())
}

func TestLoad_WrongValuesDefaultIndependently(t *testing.T) {
	t.Parallel()

	report := &config.Report{}

	cfg, err := appconfig.NewLoader(config.WithReport(report)).LoadBytes([]byte(`
title: [not, a, string]
en: Option4
display:
  brightness: bright
inner_inner:
  field: 5
`), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Amethyst game", cfg.Title)
	assert.Equal(t, appconfig.Option1, cfg.En)
	assert.InDelta(t, 1.0, cfg.Display.Brightness, 0.0001)
	assert.Equal(t, uint64(5), cfg.InnerInner.Field)

	paths := make([]string, 0, len(report.Problems()))
	for _, problem := range report.Problems() {
		paths = append(paths, problem.Path)
	}

	assert.Equal(t, []string{"title", "en", "display.brightness"}, paths)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	loader := appconfig.NewLoader()

	value := appconfig.Schema.Default()
	value.Title = "Saved"
	value.En = appconfig.Option2
	value.Logging.File = "saved.log"

	path := filepath.Join(t.TempDir(), "config.yml")

	err := loader.Write(path, value)
	require.NoError(t, err)

	loaded, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, value, loaded)
}

func TestVariant_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Option2", appconfig.Option2.String())
	assert.Equal(t, "Variant(9)", appconfig.Variant(9).String())
}
