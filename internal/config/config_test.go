package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "svc"
password = "secret"
dbname = "booking"

[holiday_service]
url = "http://holidays:8081"

[notify_service]
url = "http://notify:8082"

[booking]
timezone = "Asia/Seoul"
location = "Law Firm Wins"

[admin]
token = "t0ken"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "Asia/Seoul", cfg.Booking.Timezone)
	assert.Equal(t, "t0ken", cfg.Admin.Token)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "dbname=booking")
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "svc"
dbname = "booking"

[holiday_service]
url = "http://holidays:8081"

[notify_service]
url = "http://notify:8082"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 6, cfg.HolidayService.Timeout)
	assert.Equal(t, "Asia/Seoul", cfg.Booking.Timezone)
	assert.Equal(t, "Law Firm Wins", cfg.Booking.Location)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "нет хоста БД",
			content: `
[database]
user = "svc"
dbname = "booking"

[holiday_service]
url = "http://holidays:8081"

[notify_service]
url = "http://notify:8082"
`,
		},
		{
			name: "нет источника праздников",
			content: `
[database]
host = "localhost"
user = "svc"
dbname = "booking"

[notify_service]
url = "http://notify:8082"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("does-not-exist.toml")
	require.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "this is not toml ["))
	require.Error(t, err)
}
