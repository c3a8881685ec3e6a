// Package config loads the machine settings from defaults, an optional
// vending.yaml file, a .env file and VENDING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Journal backends.
const (
	JournalMemory   = "memory"
	JournalPostgres = "postgres"
	JournalRedis    = "redis"
)

// Config holds every knob of the machine process.
type Config struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	Currency    string        `mapstructure:"currency"`
	Telemetry   TelemetryConf `mapstructure:"telemetry"`
	Journal     JournalConf   `mapstructure:"journal"`
	Database    DatabaseConf  `mapstructure:"database"`
	Redis       RedisConf     `mapstructure:"redis"`
	Driver      DriverConf    `mapstructure:"driver"`
}

// TelemetryConf configures the read-only HTTP API. An empty Addr disables it.
type TelemetryConf struct {
	Addr      string  `mapstructure:"addr"`
	RateLimit float64 `mapstructure:"rate_limit"`
	Burst     int     `mapstructure:"burst"`
}

type JournalConf struct {
	Backend string `mapstructure:"backend"`
}

type DatabaseConf struct {
	URL string `mapstructure:"url"`
}

type RedisConf struct {
	URL          string        `mapstructure:"url"`
	Stream       string        `mapstructure:"stream"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DriverConf struct {
	CoinDelay     time.Duration `mapstructure:"coin_delay"`
	MotorStep     time.Duration `mapstructure:"motor_step"`
	MessageDelay  time.Duration `mapstructure:"message_delay"`
	DeliveryDelay time.Duration `mapstructure:"delivery_delay"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "")
	v.SetDefault("currency", "EUR")
	v.SetDefault("telemetry.addr", "")
	v.SetDefault("telemetry.rate_limit", 1.0)
	v.SetDefault("telemetry.burst", 3)
	v.SetDefault("journal.backend", JournalMemory)
	v.SetDefault("database.url", "")
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.stream", "vending:movements")
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("driver.coin_delay", 300*time.Millisecond)
	v.SetDefault("driver.motor_step", 100*time.Millisecond)
	v.SetDefault("driver.message_delay", 1500*time.Millisecond)
	v.SetDefault("driver.delivery_delay", 1500*time.Millisecond)
}

// Load reads the configuration. configFile may be empty, in which case
// vending.yaml is looked up in the working directory and silently skipped
// when absent.
func Load(configFile string) (Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("VENDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("vending")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Journal.Backend {
	case JournalMemory:
	case JournalPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("%w: journal backend %q requires database.url", ErrInvalidConfig, c.Journal.Backend)
		}
	case JournalRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%w: journal backend %q requires redis.url", ErrInvalidConfig, c.Journal.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown journal backend %q", ErrInvalidConfig, c.Journal.Backend)
	}
	if strings.TrimSpace(c.Currency) == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidConfig)
	}
	if c.Telemetry.Addr != "" && (c.Telemetry.RateLimit <= 0 || c.Telemetry.Burst <= 0) {
		return fmt.Errorf("%w: telemetry rate_limit and burst must be positive", ErrInvalidConfig)
	}
	return nil
}
