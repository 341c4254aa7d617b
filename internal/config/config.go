package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/PitchBooker/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"     validate:"required"`
	Redis        RedisConfig        `yaml:"redis"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"    validate:"required"`
	Booking      BookingConfig      `yaml:"booking"      validate:"required"`
	Commission   CommissionConfig   `yaml:"commission"   validate:"required"`
	Paystack     PaystackConfig     `yaml:"paystack"     validate:"required"`
	Verification VerificationConfig `yaml:"verification" validate:"required"`
	Trial        TrialConfig        `yaml:"trial"`
	Telegram     TelegramConfig     `yaml:"telegram"`
}

type ServerConfig struct {
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
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"pitchbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig описывает кэш площадок. Без Enabled приложение читает площадки напрямую из Postgres.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"   env:"REDIS_ENABLED"   env-default:"false"`
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:"localhost:6379"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"  validate:"min=0"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"5m" validate:"gt=0"`
}

// KafkaConfig описывает публикацию уведомлений в топик.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:","`
	Topic   string   `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"pitchbooker.notifications"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

// BookingConfig задаёт окно удержания слота и валюту счетов.
type BookingConfig struct {
	HoldWindow  time.Duration `yaml:"hold_window"  env:"BOOKING_HOLD_WINDOW"  env-default:"15m" validate:"required,gt=0"`
	Currency    string        `yaml:"currency"     env:"BOOKING_CURRENCY"     env-default:"NGN" validate:"required,len=3"`
	CallbackURL string        `yaml:"callback_url" env:"BOOKING_CALLBACK_URL" env-default:""`
	Timezone    string        `yaml:"timezone"     env:"BOOKING_TIMEZONE"     env-default:"Africa/Lagos" validate:"required"`
}

// Location загружает часовой пояс, в котором заданы часы работы площадок.
func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load booking timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CommissionConfig задаёт долю платформы и кэшбэк игроку. Суммы в минорных единицах.
type CommissionConfig struct {
	Rate     string `yaml:"rate"     env:"COMMISSION_RATE"     env-default:"0.05" validate:"required"`
	Cashback int64  `yaml:"cashback" env:"COMMISSION_CASHBACK" env-default:"30"   validate:"min=0"`
}

// Policy разбирает ставку комиссии в domain.CommissionPolicy.
func (c CommissionConfig) Policy() (domain.CommissionPolicy, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.Rate))
	if err != nil {
		return domain.CommissionPolicy{}, fmt.Errorf("parse commission rate %q: %w", c.Rate, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return domain.CommissionPolicy{}, fmt.Errorf("commission rate %s out of range [0, 1]", rate)
	}
	return domain.CommissionPolicy{Rate: rate, Cashback: c.Cashback}, nil
}

type PaystackConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"PAYSTACK_BASE_URL"   env-default:"https://api.paystack.co" validate:"required,url"`
	SecretKey string        `yaml:"secret_key" env:"PAYSTACK_SECRET_KEY" env-default:""                        validate:"required"`
	Timeout   time.Duration `yaml:"timeout"    env:"PAYSTACK_TIMEOUT"    env-default:"10s"                     validate:"gt=0"`
}

type VerificationConfig struct {
	CodeTTL     time.Duration `yaml:"code_ttl"     env:"VERIFICATION_CODE_TTL"     env-default:"10m" validate:"gt=0"`
	MaxAttempts int           `yaml:"max_attempts" env:"VERIFICATION_MAX_ATTEMPTS" env-default:"5"   validate:"min=1"`
}

// TrialConfig задаёт бесплатный период для новых владельцев площадок.
type TrialConfig struct {
	Period time.Duration `yaml:"period" env:"TRIAL_PERIOD" env-default:"720h" validate:"min=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
