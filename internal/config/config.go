package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Conf holds the application configuration, making it accessible globally.
var Conf *Config

// v is the live viper instance; Watch hooks hot reload onto it.
var v *viper.Viper

// Config struct is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	External ExternalConfig `mapstructure:"external"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds server-related settings.
type ServerConfig struct {
	Port          string `mapstructure:"port"`
	SessionSecret string `mapstructure:"session_secret"`
}

// ExternalConfig holds the endpoints of the outbound prediction and email
// services, plus the deadline applied to every outbound call.
type ExternalConfig struct {
	PredictURL string        `mapstructure:"predict_url"`
	EmailURL   string        `mapstructure:"email_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds the log directory and file rotation settings.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.session_secret", "change-me-in-production")

	// External service defaults
	v.SetDefault("external.predict_url", "https://biopredict.onrender.com/predict")
	v.SetDefault("external.email_url", "https://biopredict.onrender.com/send_email")
	v.SetDefault("external.timeout", "10s")

	// Logging defaults
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 7)
	v.SetDefault("logging.compress", true)
}

// Init initializes the configuration with Viper.
func Init(projectRoot string) error {
	v = viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("HEALTHSCOPE") // e.g., HEALTHSCOPE_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into our global Conf variable
	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}

// Watch enables hot reload of the configuration file. It is separate from
// Init because the logger itself is built from the loaded config, so it
// cannot exist until Init has run.
func Watch(log *zap.Logger) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})
}
