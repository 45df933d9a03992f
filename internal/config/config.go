// Package config loads and validates application settings.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Render RenderConfig `mapstructure:"render" validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// BaseURL is the externally visible origin used in QR codes. Empty
	// means "derive from the request".
	BaseURL        string        `mapstructure:"base_url" validate:"omitempty,url"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes" validate:"gt=0"`
	DecodeTimeout  time.Duration `mapstructure:"decode_timeout" validate:"gt=0"`
}

// StoreConfig selects where sessions live.
type StoreConfig struct {
	Driver        string        `mapstructure:"driver" validate:"required,oneof=memory sqlite"`
	Path          string        `mapstructure:"path" validate:"required_if=Driver sqlite"`
	TTL           time.Duration `mapstructure:"ttl" validate:"gte=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gte=0"`
}

// RenderConfig controls the print document and previews.
type RenderConfig struct {
	DefaultFont  string  `mapstructure:"default_font"`
	AutoPrint    bool    `mapstructure:"auto_print"`
	PreviewScale int     `mapstructure:"preview_scale" validate:"gte=1,lte=12"`
	MarginMM     float64 `mapstructure:"margin_mm" validate:"gte=0,lte=30"`
}
