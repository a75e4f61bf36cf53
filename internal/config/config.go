package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"smc_bot/pkg/tracing"
)

const (
	configFilePathENV = "CONFIG_FILE"
	configDir         = "configs"
	defaultConfigFile = "values_local.yaml"
)

// DefaultSymbols список монет по умолчанию.
var DefaultSymbols = []string{
	"ONDOUSDT",
	"ADAUSDT",
	"BTCUSDT",
	"ETHUSDT",
	"JUPUSDT",
	"LDOUSDT",
	"AVAXUSDT",
	"WIFUSDT",
	"HBARUSDT",
	"NEARUSDT",
	"AAVEUSDT",
	"ARBUSDT",
	"RENDERUSDT",
}

// Config ...
type Config struct {
	Exchange string   `yaml:"exchange" default:"binance" validate:"oneof=binance okx"`
	Symbols  []string `yaml:"symbols" validate:"min=1,dive,required"`

	// Таймфреймы: HTF для OB зон и тренда, LTF для CHOCH и sweep
	HTF          string        `yaml:"htf" default:"1h" validate:"required"`
	LTF          string        `yaml:"ltf" default:"5m" validate:"required"`
	Lookback     time.Duration `yaml:"lookback" default:"24h" validate:"gt=0"`
	PollInterval time.Duration `yaml:"poll_interval" default:"30s" validate:"gt=0"`

	RiskReward float64 `yaml:"risk_reward" default:"2" validate:"gt=0"`
	Precision  int32   `yaml:"precision" default:"5" validate:"min=0,max=10"`

	LogLevel string `yaml:"log_level" default:"info" validate:"oneof=debug info warn error"`

	// chat_id на старте не проверяется, его отсутствие всплывёт при первой отправке
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID string `yaml:"chat_id"`
	} `yaml:"telegram"`

	Binance struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"binance"`
	OKX struct {
		BaseURL string `yaml:"base_url" default:"https://www.okx.com"`
	} `yaml:"okx"`

	Health struct {
		Addr string `yaml:"addr" default:":8080"`
	} `yaml:"health"`

	Tracing tracing.Config `yaml:"tracing"`

	// Пустой DSN выключает журнал сигналов
	DB string `yaml:"db_dsn"`
}

// NewConfig читает configs/$CONFIG_FILE (по умолчанию values_local.yaml), .env и переменные окружения.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	name := os.Getenv(configFilePathENV)
	explicit := name != ""
	if !explicit {
		name = defaultConfigFile
	}

	cfg, err := Load(filepath.Join(configDir, name))
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		// локального файла нет, живём на дефолтах и env
		return Load("")
	}
	return cfg, err
}

// Load собирает конфиг: дефолты, затем yaml из path (если задан), затем env, затем валидация.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("set config defaults: %w", err)
	}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if len(cfg.Symbols) == 0 {
		cfg.Symbols = append([]string(nil), DefaultSymbols...)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	env := viper.New()
	env.AutomaticEnv()

	if v := env.GetString("TG_BOT_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := env.GetString("TG_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := env.GetString("EXCHANGE"); v != "" {
		cfg.Exchange = strings.ToLower(v)
	}
	if v := env.GetString("SYMBOLS"); v != "" {
		cfg.Symbols = splitSymbols(v)
	}
	if v := env.GetString("POLL_INTERVAL"); v != "" {
		if d := env.GetDuration("POLL_INTERVAL"); d > 0 {
			cfg.PollInterval = d
		}
	}
	if v := env.GetString("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := env.GetString("DATABASE_DSN"); v != "" {
		cfg.DB = v
	}
	if v := env.GetString("HEALTH_ADDR"); v != "" {
		cfg.Health.Addr = v
	}
}

func splitSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
