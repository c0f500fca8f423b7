// Package config resolves settings for the vader CLI and scoring service
// from flags, environment, .env and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VADER_LEXICON.
const EnvPrefix = "VADER"

type Config struct {
	Lexicon      string       `mapstructure:"lexicon"`
	EmojiLexicon string       `mapstructure:"emoji_lexicon"`
	Format       string       `mapstructure:"format"`
	Workers      int          `mapstructure:"workers"`
	LogLevel     string       `mapstructure:"log_level"`
	Server       ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// SetDefaults registers every key so env overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lexicon", "")
	v.SetDefault("emoji_lexicon", "")
	v.SetDefault("format", "text")
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("log_level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_body_bytes", 1<<20)
}

// Init wires v to the environment and reads the config file. cfgFile wins
// over $HOME/.vader.yaml; a missing default file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".vader")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", filepath.Join(home, ".vader.yaml"), err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'yaml'", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// Level returns the parsed log level; Validate has already checked it.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
