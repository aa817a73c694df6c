// Package config loads game settings from an optional TOML file and MM_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "MM"
	configName = "config"
	configType = "toml"
	configDir  = ".memory-match"

	KeySymbols       = "game.symbols"
	KeyMismatchDelay = "game.mismatch_delay"
	KeyFrameInterval = "game.frame_interval"
	KeyStorePath     = "store.path"
	KeyLegacyDir     = "store.legacy_dir"
	KeyLogLevel      = "log.level"
)

type Config struct {
	Game  GameConfig  `mapstructure:"game"`
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

type GameConfig struct {
	Symbols       []string      `mapstructure:"symbols" validate:"len=8,unique,dive,required"`
	MismatchDelay time.Duration `mapstructure:"mismatch_delay" validate:"gt=0"`
	FrameInterval time.Duration `mapstructure:"frame_interval" validate:"gt=0"`
}

type StoreConfig struct {
	Path      string `mapstructure:"path" validate:"required"`
	LegacyDir string `mapstructure:"legacy_dir" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

func (c GameConfig) DomainSymbols() []domain.Symbol {
	return domain.SymbolsFromStrings(c.Symbols)
}

// Dir is the directory holding config.toml and the results file.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

// Load reads configuration into v and returns the validated result. A missing
// config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySymbols, domain.SymbolStrings(domain.DefaultSymbols))
	v.SetDefault(KeyMismatchDelay, 800*time.Millisecond)
	v.SetDefault(KeyFrameInterval, 16*time.Millisecond)
	v.SetDefault(KeyStorePath, filepath.Join(dir, "best.toml"))
	v.SetDefault(KeyLegacyDir, filepath.Join(dir, "legacy"))
	v.SetDefault(KeyLogLevel, "warn")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := domain.ValidateSymbols(cfg.Game.DomainSymbols()); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
