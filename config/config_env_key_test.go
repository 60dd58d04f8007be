package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"boothly/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
		"qrcode": map[string]any{
			"baseUrl":              "",
			"errorCorrectionLevel": "M",
		},
		"seed": map[string]any{
			"path": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "SEED_PATH", want: "seed.path"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysPrefixedEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  serviceName: boothly
  log:
    level: info
http:
  port: 8080
  timeouts:
    readTimeout: 10s
qrcode:
  baseUrl: http://localhost:8080
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))
	t.Chdir(dir)

	t.Setenv("BOOTHLY_HTTP_PORT", "9090")
	t.Setenv("BOOTHLY_QRCODE_BASEURL", "https://book.example.com")
	t.Setenv("HTTP_PORT", "1111")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, "https://book.example.com", cfg.QRCode.BaseURL)
	assert.Equal(t, "boothly", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Env.Log.Level)
	assert.Equal(t, constants.EnvDevelop, cfg.Env.Env)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, "http://localhost:8080", cfg.QRCode.BaseURL)
}
