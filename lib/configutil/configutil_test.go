package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host   string `json:"host"`
	Locale string `json:"locale"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.json5")
	err := os.WriteFile(path, []byte(`{host: "https://example.com", locale: "ko_KR"}`), 0o644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.Host)
	require.Equal(t, "ko_KR", cfg.Locale)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.json5")
	err := os.WriteFile(path, []byte(`{host: "https://example.com", locale: "ko_KR"}`), 0o644)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "client.local.json5"),
		[]byte(`{host: "http://localhost:8000"}`),
		0o644,
	)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", cfg.Host)
	require.Equal(t, "ko_KR", cfg.Locale)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "client.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
