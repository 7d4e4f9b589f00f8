//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_MatchesReferenceContent(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 15*time.Second, cfg.Timer.Countdown)
	assert.Equal(t, 600*time.Millisecond, cfg.Timer.ReleaseWindow)

	require.Len(t, cfg.Items, 7)
	lines := make([]int, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		lines = append(lines, it.DetailLines)
	}
	assert.Equal(t, []int{1, 2, 1, 3, 1, 4, 1}, lines)

	require.Len(t, cfg.Legend, 26)
	assert.Equal(t, LegendConfig{Label: "Quit", Category: "q"}, cfg.Legend[0])
	assert.Equal(t, LegendConfig{Label: "Event3", Category: "CRITICAL"}, cfg.Legend[2])
	assert.Equal(t, LegendConfig{Label: "Event26", Category: "INFO"}, cfg.Legend[25])
}

func TestLoad_MissingDefaultPathUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	path := writeFile(t, `
timer:
  release_window: 300ms
items:
  - label: Alpha
    detail_lines: 0
  - label: Alpha
    detail_lines: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Timer.Countdown)
	assert.Equal(t, 300*time.Millisecond, cfg.Timer.ReleaseWindow)
	assert.Equal(t, []ItemConfig{{Label: "Alpha"}, {Label: "Alpha", DetailLines: 2}}, cfg.Items)
	assert.Equal(t, Default().Legend, cfg.Legend)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"window not a tick multiple", "timer:\n  release_window: 605ms\n"},
		{"countdown below one tick", "timer:\n  countdown: 0s\n"},
		{"empty item label", "items:\n  - label: \"\"\n"},
		{"too many detail lines", "items:\n  - label: a\n    detail_lines: 9\n"},
		{"category too wide", "legend:\n  - label: a\n    category: VERYLONGCAT\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.body))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeFile(t, "timer: [unterminated\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteDefault_RoundTripsAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := WriteDefault(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &generic))
	assert.Contains(t, generic, "timer")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = WriteDefault(path, false)
	require.ErrorIs(t, err, ErrConfigExists)

	_, err = WriteDefault(path, true)
	require.NoError(t, err)
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandTilde("~/.config/holdclock/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "holdclock", "config.yaml"), got)

	got, err = ExpandTilde("/etc/holdclock.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/holdclock.yaml", got)
}
