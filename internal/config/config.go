// Package config resolves runtime settings from defaults, an optional
// .atacrna.yaml, a .env file, ATACRNA_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yumyai/atacrna/internal/util"
	"github.com/yumyai/atacrna/logger"
	"go.uber.org/zap/zapcore"
)

const (
	EnvPrefix  = "ATACRNA"
	ConfigName = ".atacrna"

	DefaultDataDir = "./data"
	DefaultAddr    = "0.0.0.0:8080"
	DefaultLevel   = "info"
	DefaultGene    = "slc4a1a"
)

var ErrInvalidConfig = errors.New("invalid config")

// RawInput is what viper resolves before validation.
type RawInput struct {
	Config      string `mapstructure:"config"`
	Data        string `mapstructure:"data"`
	Addr        string `mapstructure:"addr"`
	LogLevel    string `mapstructure:"log-level"`
	DefaultGene string `mapstructure:"default-gene"`
}

// Config is the validated runtime configuration.
type Config struct {
	DataDir     string
	Addr        string
	LogLevel    zapcore.Level
	DefaultGene string
}

// LoadDotEnv loads .env into the process environment if present.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Warn("No .env found, using local environment")
	}
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("config", "")
	v.SetDefault("data", DefaultDataDir)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log-level", DefaultLevel)
	v.SetDefault("default-gene", DefaultGene)
	return v
}

// readConfigFile merges the config file into v. A missing default file is
// not an error; a missing explicit file is.
func readConfigFile(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var input RawInput
	if err := v.Unmarshal(&input); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return Validate(input)
}

// Validate turns raw input into a Config.
func Validate(input RawInput) (*Config, error) {
	if strings.TrimSpace(input.Data) == "" {
		return nil, fmt.Errorf("%w: data directory is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(input.Addr) == "" {
		return nil, fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(input.DefaultGene) == "" {
		return nil, fmt.Errorf("%w: default gene is empty", ErrInvalidConfig)
	}

	level, err := zapcore.ParseLevel(input.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, input.LogLevel)
	}

	return &Config{
		DataDir:     input.Data,
		Addr:        input.Addr,
		LogLevel:    level,
		DefaultGene: input.DefaultGene,
	}, nil
}

// RequireData checks that the data directory exists, for commands that read it.
func (c *Config) RequireData() error {
	if !util.DirExists(c.DataDir) {
		return fmt.Errorf("%w: data directory %s does not exist", ErrInvalidConfig, c.DataDir)
	}
	return nil
}
