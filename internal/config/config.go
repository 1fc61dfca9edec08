package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Meeting  MeetingConfig
	Admin    AdminConfig
	JWT      JWTConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Mode         string // debug, release, test
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MeetingConfig holds the connection parameters for the remote meeting
// server and the downloadable client bundle.
type MeetingConfig struct {
	ServerURL         string
	APIKey            string
	APISecret         string
	RequestTimeout    time.Duration
	ClientDownloadURL string
	ClientDir         string
}

// AdminConfig identifies the single administrative account allowed to
// operate the control plane.
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

type JWTConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("ROOMADMIN")
	viper.AutomaticEnv()

	setDefaults()

	// The config file is optional, env vars and defaults are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables()

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("server.host"),
			Port:         viper.GetInt("server.port"),
			Mode:         viper.GetString("server.mode"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("database.host"),
			Port:            viper.GetInt("database.port"),
			User:            viper.GetString("database.user"),
			Password:        viper.GetString("database.password"),
			DBName:          viper.GetString("database.dbname"),
			SSLMode:         viper.GetString("database.sslmode"),
			MaxOpenConns:    viper.GetInt("database.max_open_conns"),
			MaxIdleConns:    viper.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: viper.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		Meeting: MeetingConfig{
			ServerURL:         strings.TrimRight(viper.GetString("meeting.server_url"), "/"),
			APIKey:            viper.GetString("meeting.api_key"),
			APISecret:         viper.GetString("meeting.api_secret"),
			RequestTimeout:    viper.GetDuration("meeting.request_timeout"),
			ClientDownloadURL: viper.GetString("meeting.client_download_url"),
			ClientDir:         viper.GetString("meeting.client_dir"),
		},
		Admin: AdminConfig{
			Username:     viper.GetString("admin.username"),
			PasswordHash: viper.GetString("admin.password_hash"),
		},
		JWT: JWTConfig{
			Secret:          viper.GetString("jwt.secret"),
			AccessTokenTTL:  viper.GetDuration("jwt.access_token_ttl"),
			RefreshTokenTTL: viper.GetDuration("jwt.refresh_token_ttl"),
			Issuer:          viper.GetString("jwt.issuer"),
		},
		Log: LogConfig{
			Level:      viper.GetString("log.level"),
			Format:     viper.GetString("log.format"),
			OutputPath: viper.GetString("log.output_path"),
		},
	}

	if cfg.Meeting.ServerURL == "" {
		return nil, fmt.Errorf("meeting.server_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.dbname", "roomadmin")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "5m")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	// Meeting server defaults
	viper.SetDefault("meeting.server_url", "")
	viper.SetDefault("meeting.api_key", "")
	viper.SetDefault("meeting.api_secret", "")
	viper.SetDefault("meeting.request_timeout", "30s")
	viper.SetDefault("meeting.client_download_url", "")
	viper.SetDefault("meeting.client_dir", "./public")

	// Admin defaults
	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("admin.password_hash", "")

	// JWT defaults
	viper.SetDefault("jwt.secret", "your-secret-key-change-in-production")
	viper.SetDefault("jwt.access_token_ttl", "15m")
	viper.SetDefault("jwt.refresh_token_ttl", "168h") // 7 days
	viper.SetDefault("jwt.issuer", "roomadmin")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.output_path", "stdout")
}

func bindEnvVariables() {
	// Server
	_ = viper.BindEnv("server.host", "SERVER_HOST")
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("server.mode", "SERVER_MODE")

	// Database
	_ = viper.BindEnv("database.host", "DB_HOST")
	_ = viper.BindEnv("database.port", "DB_PORT")
	_ = viper.BindEnv("database.user", "DB_USER")
	_ = viper.BindEnv("database.password", "DB_PASSWORD")
	_ = viper.BindEnv("database.dbname", "DB_NAME")
	_ = viper.BindEnv("database.sslmode", "DB_SSLMODE")

	// Redis
	_ = viper.BindEnv("redis.host", "REDIS_HOST")
	_ = viper.BindEnv("redis.port", "REDIS_PORT")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Meeting server
	_ = viper.BindEnv("meeting.server_url", "MEETING_SERVER_URL")
	_ = viper.BindEnv("meeting.api_key", "MEETING_API_KEY")
	_ = viper.BindEnv("meeting.api_secret", "MEETING_API_SECRET")
	_ = viper.BindEnv("meeting.client_download_url", "MEETING_CLIENT_DOWNLOAD_URL")
	_ = viper.BindEnv("meeting.client_dir", "MEETING_CLIENT_DIR")

	// Admin
	_ = viper.BindEnv("admin.username", "ADMIN_USERNAME")
	_ = viper.BindEnv("admin.password_hash", "ADMIN_PASSWORD_HASH")

	// JWT
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Log
	_ = viper.BindEnv("log.level", "LOG_LEVEL")
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetServerAddr returns server address
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
