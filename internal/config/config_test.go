package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calctools/calcerr"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverlay(t *testing.T) {
	path := writeTemp(t, "transport: http\nhttp_addr: \":9000\"\nlog_level: debug\nlog_json: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeTemp(t, "log_level: warn\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":8475", cfg.HTTPAddr)
}

func TestLoadRejectsBadTransport(t *testing.T) {
	path := writeTemp(t, "transport: carrier-pigeon\n")
	_, err := Load(path)
	assert.True(t, calcerr.IsInvalidParameter(err), "got %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeTemp(t, "transport: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}
