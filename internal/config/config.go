package config

import (
	"fmt"
	"os"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Session   SessionConfig   `yaml:"session"   validate:"required"`
	Authz     AuthzConfig     `yaml:"authz"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Mail      MailConfig      `yaml:"mail"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	CORS      CORSConfig      `yaml:"cors"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080"              validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"                validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"                validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"                validate:"gt=0"`
	Templates    string        `yaml:"templates"     env:"SERVER_TEMPLATES"     env-default:"web/templates/*"    validate:"required"`
}

// LogLevel maps the configured level onto the wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"     validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"          validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"      validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"      validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"bootcamp_tech" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"       validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"            validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"             validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"            validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SessionConfig struct {
	GoogleClientID string        `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID"        validate:"required"`
	AllowedDomains []string      `yaml:"allowed_domains"  env:"SESSION_ALLOWED_DOMAINS" env-separator:","`
	Secret         string        `yaml:"secret"           env:"SESSION_SECRET"          validate:"required,min=32"`
	TTL            time.Duration `yaml:"ttl"              env:"SESSION_TTL"             env-default:"24h"              validate:"gt=0"`
	CookieName     string        `yaml:"cookie_name"      env:"SESSION_COOKIE_NAME"     env-default:"bootcamp_session" validate:"required"`
	CookieSecure   bool          `yaml:"cookie_secure"    env:"SESSION_COOKIE_SECURE"   env-default:"false"`
}

type AuthzConfig struct {
	Policy string `yaml:"policy" env:"AUTHZ_POLICY" env-default:"per_action" validate:"omitempty,oneof=per_action per_session"`
}

type CatalogConfig struct {
	// Path to a YAML catalog. Empty means the catalog built into the binary.
	Path string `yaml:"path" env:"CATALOG_PATH"`
}

// MailConfig is the SMTP relay. An empty host disables confirmation emails.
type MailConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587" validate:"min=1,max=65535"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"     env:"SMTP_FROM"     env-default:"no-reply@bootcamps.tech" validate:"required,email"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

// RabbitMQConfig routes confirmations through a queue when a URL is set.
type RabbitMQConfig struct {
	URL   string `yaml:"url"   env:"RABBITMQ_URL"`
	Queue string `yaml:"queue" env:"RABBITMQ_QUEUE" env-default:"registration.confirmations" validate:"required"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1h" validate:"required,gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

// Load reads the config file at path, or the one named by CONFIG_PATH when
// path is empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, cleanenvport.ErrConfigPathNotSet
	}

	var cfg Config
	if err := cleanenvport.LoadPath(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
