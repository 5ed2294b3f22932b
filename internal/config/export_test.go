package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMapMasksAPIKey(t *testing.T) {
	s := Default(DefaultDataDir)
	s.RadarrAPIKey = "supersecret"

	masked := s.ToMap(false)
	assert.Equal(t, "***", masked["radarr_api_key"])

	sensitive := s.ToMap(true)
	assert.Equal(t, "supersecret", sensitive["radarr_api_key"])
}

func TestToMapEmptyAPIKeyStaysEmpty(t *testing.T) {
	s := Default(DefaultDataDir)

	masked := s.ToMap(false)
	assert.Equal(t, "", masked["radarr_api_key"])
}

func TestToMapCarriesRoutingRules(t *testing.T) {
	s := Default(DefaultDataDir)
	s.RadarrRootFolderConfig = RootFolderConfig{
		Enabled: true,
		Mappings: []RootFolderMapping{
			{Genres: []string{"horror"}, RootFolder: "/h", Priority: 1},
		},
	}

	out := s.ToMap(false)
	rfc := out["radarr_root_folder_config"].(map[string]any)
	assert.Equal(t, true, rfc["enabled"])

	mappings := rfc["mappings"].([]map[string]any)
	assert.Len(t, mappings, 1)
	assert.Equal(t, "/h", mappings[0]["root_folder"])
	assert.Equal(t, 1, mappings[0]["priority"])
}

func TestCardsPerRow(t *testing.T) {
	s := Default(DefaultDataDir)
	assert.Equal(t, map[string]int{"mobile": 1, "tablet": 3, "desktop": 5, "4k": 5}, s.CardsPerRow())
}

func TestIsConfigured(t *testing.T) {
	s := Default(DefaultDataDir)
	assert.False(t, s.IsConfigured())

	s.RadarrAPIKey = "abc"
	assert.True(t, s.IsConfigured())
}
