package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxarr/internal/config"
)

func TestNewApplicationServesAPI(t *testing.T) {
	t.Setenv(config.EnvDataDirectory, t.TempDir())

	application, err := NewApplication()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewApplicationMountsURLBase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDataDirectory, dir)

	yaml := "boxarr:\n  url_base: /boxarr/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.yaml"), []byte(yaml), 0o644))

	application, err := NewApplication()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boxarr/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewApplicationRefusesInvalidConfiguration(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDataDirectory, dir)

	yaml := "boxarr:\n  api_port: 8888\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.yaml"), []byte(yaml), 0o644))

	_, err := NewApplication()
	assert.Error(t, err)
}

func TestNewApplicationCreatesDataDirectories(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDataDirectory, dir)

	_, err := NewApplication()
	require.NoError(t, err)

	for _, sub := range []string{"history", "logs", "weekly_pages"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
