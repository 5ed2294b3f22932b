package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	t.Setenv(EnvDataDirectory, t.TempDir())

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7878", s.RadarrURL)
	assert.Equal(t, "/movies", s.RadarrRootFolder)
	assert.Equal(t, 8888, s.BoxarrPort)
	assert.Equal(t, 8889, s.BoxarrAPIPort)
	assert.Equal(t, MonitorMovieOnly, s.RadarrMonitorOption)
	assert.Equal(t, AvailabilityAnnounced, s.RadarrMinimumAvailability)
	assert.Equal(t, ThemeLight, s.BoxarrUITheme)
	assert.Equal(t, "boxarr", s.BoxarrFeaturesAutoTagText)
	assert.Equal(t, "", s.SourceFile())
}

func TestLoadFirstExistingFileWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDirectory, dir)

	writeFile(t, dir, "local.yaml", "boxarr:\n  port: 9100\n")
	writeFile(t, dir, "config.yaml", "boxarr:\n  port: 9200\n  host: 10.0.0.1\n")

	s, err := Load()
	require.NoError(t, err)

	// local.yaml is applied; config.yaml is never consulted, so the
	// host keeps its default even though the second file sets it
	assert.Equal(t, 9100, s.BoxarrPort)
	assert.Equal(t, "0.0.0.0", s.BoxarrHost)
	assert.True(t, strings.HasSuffix(s.SourceFile(), "local.yaml"))
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv(EnvDataDirectory, t.TempDir())
	t.Setenv("BOXARR_PORT", "9999")
	t.Setenv("RADARR_MONITOR_OPTION", "none")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, s.BoxarrPort)
	assert.Equal(t, MonitorNone, s.RadarrMonitorOption)
}

func TestLoadAPIKeyEnvFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDirectory, dir)
	t.Setenv(EnvRadarrAPIKey, "from-env")

	writeFile(t, dir, "local.yaml", "radarr:\n  url: http://radarr:7878\n")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.RadarrAPIKey)
}

func TestLoadURLBaseNormalization(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDirectory, dir)

	writeFile(t, dir, "local.yaml", "boxarr:\n  url_base: /boxarr/\n")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "boxarr", s.BoxarrURLBase)
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name:    "api port colliding with web port fails",
			yaml:    "boxarr:\n  api_port: 8888\n",
			wantErr: true,
		},
		{
			name:    "auto tag with embedded space fails",
			yaml:    "boxarr:\n  features:\n    auto_tag_text: my tag\n",
			wantErr: true,
		},
		{
			name:    "auto tag of exactly 20 characters succeeds",
			yaml:    "boxarr:\n  features:\n    auto_tag_text: " + strings.Repeat("a", 20) + "\n",
			wantErr: false,
		},
		{
			name:    "auto tag of 21 characters fails",
			yaml:    "boxarr:\n  features:\n    auto_tag_text: " + strings.Repeat("a", 21) + "\n",
			wantErr: true,
		},
		{
			name:    "cards per row out of range fails",
			yaml:    "boxarr:\n  ui:\n    cards_per_row:\n      mobile: 9\n",
			wantErr: true,
		},
		{
			name:    "history retention below minimum fails",
			yaml:    "boxarr:\n  data:\n    history_retention_days: 1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv(EnvDataDirectory, dir)
			writeFile(t, dir, "local.yaml", tt.yaml)

			_, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDeprecatedEnumValuesFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDirectory, dir)

	writeFile(t, dir, "local.yaml", `
radarr:
  minimum_availability: preDb
boxarr:
  ui:
    theme: purple
`)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, AvailabilityAnnounced, s.RadarrMinimumAvailability)
	assert.Equal(t, ThemeLight, s.BoxarrUITheme)
}

func TestLoadIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDirectory, dir)

	writeFile(t, dir, "local.yaml", `
radarr:
  url: http://radarr:7878
  api_key: abc
  root_folder_config:
    enabled: true
    mappings:
      - genres: [horror]
        root_folder: /h
        priority: 1
boxarr:
  port: 9100
`)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Equal(t, first.ToMap(true), second.ToMap(true))
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("/data")
	assert.Equal(t, []string{
		"/data/local.yaml",
		"/data/config.yaml",
		"config/local.yaml",
		"config/default.yaml",
		"/config/local.yaml",
		"/config/config.yaml",
	}, paths)
}
