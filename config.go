package apischema

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config is the file form of the schema options.
type Config struct {
	FillPatchData     bool
	CanSkipValidation bool
	LogLevel          zerolog.Level
}

// LoadConfig reads options from a config file and the environment.
// Environment > config file > defaults precedence. Variables use the
// APISCHEMA_ prefix, e.g. APISCHEMA_FILL_PATCH_DATA.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("fill_patch_data", false)
	v.SetDefault("can_skip_validation", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("APISCHEMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	fill, err := cast.ToBoolE(v.Get("fill_patch_data"))
	if err != nil {
		return nil, fmt.Errorf("fill_patch_data must be a boolean, got %v", v.Get("fill_patch_data"))
	}
	skip, err := cast.ToBoolE(v.Get("can_skip_validation"))
	if err != nil {
		return nil, fmt.Errorf("can_skip_validation must be a boolean, got %v", v.Get("can_skip_validation"))
	}
	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}

	return &Config{
		FillPatchData:     fill,
		CanSkipValidation: skip,
		LogLevel:          level,
	}, nil
}

// Options converts the config into schema options.
func (c *Config) Options() []Option {
	return []Option{
		WithFillPatchData(c.FillPatchData),
		WithSkipValidation(c.CanSkipValidation),
	}
}

// LoadOptions is LoadConfig followed by Options.
func LoadOptions(configPath string) ([]Option, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return cfg.Options(), nil
}
