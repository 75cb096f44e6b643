package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
watch:
  handles: "alice, bob"
gateway:
  phone: "120363000000000000@g.us"
account:
  cookies: "c29tZS1jb29raWVz"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 40, cfg.Watch.FetchCount)
	assert.Equal(t, 20, cfg.Watch.TimelineCount)
	assert.Equal(t, 0.3, cfg.Watch.StrawProbability)
	assert.Equal(t, 3.0, cfg.Watch.HandleSleepLow)
	assert.Equal(t, 19.0, cfg.Watch.HandleSleepHigh)
	assert.Equal(t, 240.0, cfg.Watch.CycleSleepLow)
	assert.Equal(t, 2400.0, cfg.Watch.CycleSleepHigh)
	assert.Equal(t, 30, cfg.Watch.QuotaRetentionDays)
	assert.Equal(t, 2*time.Minute, cfg.Gateway.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Account.Timeout)
	assert.Equal(t, 3, cfg.Account.Retry.MaxAttempts)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_HandleList(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, cfg.Watch.HandleList())
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("GATEWAY_SECRET", "admin:secret")

	cfg, err := Load(writeConfig(t, `
watch:
  handles: "alice"
gateway:
  phone: "12345"
  basic_auth: "${GATEWAY_SECRET}"
account:
  cookies: "c29tZS1jb29raWVz"
`))
	require.NoError(t, err)

	assert.Equal(t, "admin:secret", cfg.Gateway.BasicAuth)
}

func TestLoad_RequiresHandles(t *testing.T) {
	_, err := Load(writeConfig(t, `
gateway:
  phone: "12345"
account:
  cookies: "c29tZS1jb29raWVz"
`))
	assert.ErrorContains(t, err, "watch.handles")
}

func TestLoad_RequiresPhone(t *testing.T) {
	_, err := Load(writeConfig(t, `
watch:
  handles: "alice"
account:
  cookies: "c29tZS1jb29raWVz"
`))
	assert.ErrorContains(t, err, "gateway.phone")
}

func TestLoad_RequiresSessionOrCredentials(t *testing.T) {
	_, err := Load(writeConfig(t, `
watch:
  handles: "alice"
gateway:
  phone: "12345"
account:
  username: "alice"
`))
	assert.ErrorContains(t, err, "account.cookies")
}

func TestLoad_CredentialsWithoutCookies(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
watch:
  handles: "alice"
gateway:
  phone: "12345"
account:
  username: "alice"
  email: "alice@example.com"
  password: "hunter2"
`))
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Account.Username)
}

func TestLoad_RejectsInvertedSleepBounds(t *testing.T) {
	_, err := Load(writeConfig(t, `
watch:
  handles: "alice"
  handle_sleep_low: 20
  handle_sleep_high: 5
gateway:
  phone: "12345"
account:
  cookies: "c29tZS1jb29raWVz"
`))
	assert.ErrorContains(t, err, "handle_sleep_low")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
