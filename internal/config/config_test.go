package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, EncodingHex, cfg.Encoding)
	require.Equal(t, 100, cfg.Trials)
	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(`
LogLevel = "DEBUG"
Encoding = "base64"
Trials = 5000
Workers = 4
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, EncodingBase64, cfg.Encoding)
	require.Equal(t, 5000, cfg.Trials)
	require.Equal(t, 4, cfg.Workers)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load([]byte(`Trials = 7`))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Trials)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, EncodingHex, cfg.Encoding)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `LogLevel = `},
		{"unknown key", `Colour = "blue"`},
		{"bad level", `LogLevel = "loud"`},
		{"bad encoding", `Encoding = "base32"`},
		{"zero trials", `Trials = 0`},
		{"too many trials", `Trials = 2000000`},
		{"negative workers", `Workers = -1`},
		{"wrong type", `Trials = "many"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.body))
			require.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := &Config{LogLevel: "x", Encoding: "y", Trials: 0, Workers: 0}
	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"LogLevel", "Encoding", "Trials", "Workers"} {
		require.Contains(t, err.Error(), field)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kyber768.toml")
	require.NoError(t, os.WriteFile(path, []byte("Workers = 2\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
