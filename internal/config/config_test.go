package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 8090
shutdown_timeout = 5

[database]
host = "db"
port = 5433
user = "schedule"
password = "secret"
dbname = "schedule"

[logs]
level = "debug"

[metrics]
enabled = true

[schedule]
time_zone = "America/Chicago"
open_hour = 9
close_hour = 17
step_minutes = 30

[rate_limit]
enabled = true
requests_per_second = 5
burst = 10
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "default kept")
	assert.Equal(t, "host=db port=5433 user=schedule password=secret dbname=schedule sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.RateLimit.Enabled)

	hours := cfg.Schedule.BusinessHours()
	assert.Equal(t, "America/Chicago", hours.TimeZone)
	assert.Equal(t, 9*time.Hour, hours.Open)
	assert.Equal(t, 17*time.Hour, hours.Close)
	assert.Equal(t, 30*time.Minute, hours.Step)
	assert.Equal(t, 15, cfg.Schedule.UpcomingMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDBHost, "postgres.internal")
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvHTTPPort, "9000")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "postgres.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	t.Setenv(EnvHTTPPort, "eighty")
	_, err = Load(writeConfig(t, sample))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Database.User = "schedule"
		cfg.Database.DBName = "schedule"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }},
		{name: "db name", mutate: func(c *Config) { c.Database.DBName = "" }},
		{name: "time zone", mutate: func(c *Config) { c.Schedule.TimeZone = "Mars/Olympus_Mons" }},
		{name: "hours reversed", mutate: func(c *Config) { c.Schedule.OpenHour, c.Schedule.CloseHour = 22, 8 }},
		{name: "zero step", mutate: func(c *Config) { c.Schedule.StepMinutes = 0 }},
		{name: "rate limit", mutate: func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.Burst = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
