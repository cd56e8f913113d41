package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Export    ExportConfig    `yaml:"export"    validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Session   SessionConfig   `yaml:"session"   validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	AdminAPI  AdminAPIConfig  `yaml:"admin_api"`
}

type ServerConfig struct {
	Enabled      bool          `yaml:"enabled"       env:"SERVER_ENABLED"       env-default:"true"`
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
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

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type StorageConfig struct {
	Driver   string         `yaml:"driver"   env:"STORAGE_DRIVER" env-default:"sqlite" validate:"required,oneof=sqlite postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type SQLiteConfig struct {
	Path        string        `yaml:"path"         env:"SQLITE_PATH"         env-default:"volunteers.db" validate:"required"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"SQLITE_BUSY_TIMEOUT" env-default:"5s"            validate:"gte=0"`
}

// DSN включает внешние ключи и busy_timeout через _pragma драйвера modernc.
func (s *SQLiteConfig) DSN() string {
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		s.Path, s.BusyTimeout.Milliseconds(),
	)
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"volunteers" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ExportConfig struct {
	Path          string        `yaml:"path"           env:"EXPORT_PATH"           env-default:"registrations.csv" validate:"required"`
	Timezone      string        `yaml:"timezone"       env:"EXPORT_TIMEZONE"       env-default:"Europe/Moscow"     validate:"required"`
	RetryAttempts uint64        `yaml:"retry_attempts" env:"EXPORT_RETRY_ATTEMPTS" env-default:"3"                 validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"EXPORT_RETRY_DELAY"    env-default:"200ms"             validate:"gt=0"`
}

// Location загружает часовой пояс для временных меток выгрузки.
func (e *ExportConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load export timezone %q: %w", e.Timezone, err)
	}
	return loc, nil
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

type SessionConfig struct {
	IdleTTL time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"30m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken    string  `yaml:"bot_token"    env:"TELEGRAM_BOT_TOKEN"    env-default:""`
	AdminIDs    []int64 `yaml:"admin_ids"    env:"TELEGRAM_ADMIN_IDS"    env-separator:","`
	PollTimeout int     `yaml:"poll_timeout" env:"TELEGRAM_POLL_TIMEOUT" env-default:"60" validate:"min=1"`
	Debug       bool    `yaml:"debug"        env:"TELEGRAM_DEBUG"        env-default:"false"`
}

// AdminAPIConfig защищает ops HTTP API статическим токеном. OperatorID
// должен входить в telegram.admin_ids: от его имени выполняются админские
// операции API.
type AdminAPIConfig struct {
	Token      string `yaml:"token"       env:"ADMIN_API_TOKEN"       env-default:""`
	OperatorID int64  `yaml:"operator_id" env:"ADMIN_API_OPERATOR_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

// Load читает конфиг из явно указанного файла; пустой путь означает
// поведение по умолчанию (MustLoad).
func Load(path string) (*Config, error) {
	if path == "" {
		return MustLoad(), nil
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
