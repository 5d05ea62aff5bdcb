package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL string        `mapstructure:"base_url" validate:"required,url"`
		Key     string        `mapstructure:"key" validate:"required"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"api"`
	Storage struct {
		// Dir is where the credential file lives. Empty means the
		// platform's user config directory.
		Dir string `mapstructure:"dir"`
	} `mapstructure:"storage"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Analytics struct {
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"analytics"`
}

var AppConfig Config

// LoadConfig reads config.yml from path, layered under environment
// variables prefixed with DASHBOARD_ (dots become underscores, so
// api.base_url is DASHBOARD_API_BASE_URL). A .env file is honored when
// present. The config file itself is optional; the environment alone can
// carry the required values.
func LoadConfig(path string) error {
	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetEnvPrefix("DASHBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(&AppConfig); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can resolve them during
// Unmarshal.
func setDefaults() {
	viper.SetDefault("api.base_url", "")
	viper.SetDefault("api.key", "")
	viper.SetDefault("api.timeout", 15*time.Second)
	viper.SetDefault("storage.dir", "")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("analytics.cache_ttl", 5*time.Minute)
}
