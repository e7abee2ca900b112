package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	DB     DBConfig
	Server ServerConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

type DBConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	Path            string // sqlite only
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"db.driver":            "DB_DRIVER",
	"db.host":              "DB_HOST",
	"db.port":              "DB_PORT",
	"db.user":              "DB_USER",
	"db.password":          "DB_PASSWORD",
	"db.name":              "DB_NAME",
	"db.path":              "DB_PATH",
	"db.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"db.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"db.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"db.retry_attempts":    "DB_RETRY_ATTEMPTS",
	"db.retry_delay":       "DB_RETRY_DELAY",
	"server.host":          "API_HOST",
	"server.port":          "API_PORT",
	"server.read_timeout":  "SERVER_READ_TIMEOUT",
	"server.write_timeout": "SERVER_WRITE_TIMEOUT",
	"server.idle_timeout":  "SERVER_IDLE_TIMEOUT",
	"redis.address":        "REDIS_ADDRESS",
	"redis.password":       "REDIS_PASSWORD",
	"redis.db":             "REDIS_DB",
	"cache.ttl":            "CACHE_TTL",
	"logger.level":         "LOG_LEVEL",
	"logger.env":           "ENV",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", DriverMySQL)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "password")
	v.SetDefault("db.name", "economy_quiz")
	v.SetDefault("db.path", "economy_quiz.sqlite")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("db.retry_attempts", 10)
	v.SetDefault("db.retry_delay", 3*time.Second)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 20*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 20*time.Second)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads config.yaml (optional) and applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		DB: DBConfig{
			Driver:          v.GetString("db.driver"),
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			Path:            v.GetString("db.path"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
			RetryAttempts:   v.GetInt("db.retry_attempts"),
			RetryDelay:      v.GetDuration("db.retry_delay"),
		},
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			TTL: v.GetDuration("cache.ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at connect or listen time.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver %q (want %q or %q)", c.DB.Driver, DriverMySQL, DriverSQLite)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.DB.Driver == DriverMySQL && (c.DB.Port < 1 || c.DB.Port > 65535) {
		return fmt.Errorf("invalid db port: %d", c.DB.Port)
	}
	if c.DB.RetryAttempts < 1 {
		return fmt.Errorf("db retry attempts must be at least 1, got %d", c.DB.RetryAttempts)
	}
	if c.DB.RetryDelay < 0 {
		return fmt.Errorf("db retry delay must not be negative, got %s", c.DB.RetryDelay)
	}
	return nil
}

// GetDSN returns the data source name for the configured driver.
func (c *Config) GetDSN() string {
	if c.DB.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.DB.Path)
	}

	mc := mysql.NewConfig()
	mc.User = c.DB.User
	mc.Passwd = c.DB.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port))
	mc.DBName = c.DB.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// ListenAddr is the host:port the API binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
