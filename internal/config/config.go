package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/scribe-app/scribe-shell/internal/constants"
)

// ErrInvalidWatchInterval is returned when watch_interval is zero or negative.
var ErrInvalidWatchInterval = errors.New("watch_interval must be positive")

// Config holds the shell's runtime settings. Window geometry is deliberately
// absent: it is fixed in internal/constants.
type Config struct {
	// AppID is the single-instance lock identifier.
	AppID string `mapstructure:"app_id"`

	// Debug lowers the global log level from warn to debug.
	Debug bool `mapstructure:"debug"`

	// FileLogging tees logs into a rotating file under LogDir.
	FileLogging bool `mapstructure:"file_logging"`

	LogDir string `mapstructure:"log_dir"`

	// WatchInterval is how often the host polls the window's maximize state.
	WatchInterval time.Duration `mapstructure:"watch_interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppID:         constants.DefaultAppID,
		LogDir:        LogDirectory(),
		WatchInterval: constants.DefaultWatchInterval,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix SCRIBE_.
// An empty path falls back to $SCRIBE_CONFIG, then DefaultConfigPath. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("app_id", def.AppID)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("file_logging", def.FileLogging)
	v.SetDefault("log_dir", def.LogDir)
	v.SetDefault("watch_interval", def.WatchInterval)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(constants.EnvPrefix + "_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, statErr := os.Stat(path); statErr == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values Load cannot repair on its own.
func (c Config) Validate() error {
	if c.WatchInterval <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidWatchInterval, c.WatchInterval)
	}
	if strings.TrimSpace(c.AppID) == "" {
		return errors.New("app_id must not be empty")
	}
	return nil
}
