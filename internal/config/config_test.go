package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "root", cfg.DB.User)
	assert.Equal(t, "password", cfg.DB.Password)
	assert.Equal(t, "economy_quiz", cfg.DB.DBName)
	assert.Equal(t, 10, cfg.DB.RetryAttempts)
	assert.Equal(t, 3*time.Second, cfg.DB.RetryDelay)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "quiz")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "quizdb")
	t.Setenv("API_HOST", "127.0.0.1")
	t.Setenv("API_PORT", "9090")
	t.Setenv("DB_RETRY_ATTEMPTS", "3")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 3307, cfg.DB.Port)
	assert.Equal(t, "quiz", cfg.DB.User)
	assert.Equal(t, "s3cret", cfg.DB.Password)
	assert.Equal(t, "quizdb", cfg.DB.DBName)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr())
	assert.Equal(t, 3, cfg.DB.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.DB.RetryDelay)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "production", cfg.Logger.Env)
}

func TestLoadConfig_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported db driver")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DB:     DBConfig{Driver: DriverMySQL, Port: 3306, RetryAttempts: 1},
			Server: ServerConfig{Port: 8000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"sqlite ignores db port", func(c *Config) { c.DB.Driver = DriverSQLite; c.DB.Port = 0 }, ""},
		{"server port zero", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
		{"server port too large", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"db port", func(c *Config) { c.DB.Port = -1 }, "invalid db port"},
		{"no attempts", func(c *Config) { c.DB.RetryAttempts = 0 }, "retry attempts"},
		{"negative delay", func(c *Config) { c.DB.RetryDelay = -time.Second }, "retry delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{
		Driver:   DriverMySQL,
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "password",
		DBName:   "economy_quiz",
	}}

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "root:password@tcp(localhost:3306)/economy_quiz?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	cfg.DB.Driver = DriverSQLite
	cfg.DB.Path = "/tmp/quiz.sqlite"
	assert.Equal(t, "file:/tmp/quiz.sqlite?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.GetDSN())
}
