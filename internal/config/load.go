package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. FLASHCARDS_SERVER_PORT.
const EnvPrefix = "FLASHCARDS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.decode_timeout", "30s")

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.path", "data/sessions.db")
	v.SetDefault("store.ttl", "24h")
	v.SetDefault("store.sweep_interval", "10m")

	v.SetDefault("render.default_font", "")
	v.SetDefault("render.auto_print", false)
	v.SetDefault("render.preview_scale", 4)
	v.SetDefault("render.margin_mm", 10)
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing precedence, then applies overrides (typically
// explicitly set command-line flags keyed by "section.key").
//
// When cfgFile is empty, ./flashcards.yaml is used if present.
func Load(cfgFile string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("flashcards")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, val := range overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
