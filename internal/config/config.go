package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingMasterKey is returned when no master key is configured. Without one every
// mutating request would be compared against an empty secret.
var ErrMissingMasterKey = errors.New("JOKES_MASTER_KEY is required")

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	Seed struct {
		File string
	}
	MasterKey string
}

// Load reads config from environment (JOKES_ prefix) and optional joe-jokes.yaml.
func Load() (*Config, error) {
	return load(viper.New())
}

// SeedFile returns the configured seed file path without validating the rest of the
// config, for offline commands that never need the master key.
func SeedFile() string {
	v := viper.New()
	setup(v)
	return v.GetString("seed.file")
}

func setup(v *viper.Viper) {
	v.SetEnvPrefix("JOKES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("joe-jokes")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file
}

func load(v *viper.Viper) (*Config, error) {
	setup(v)

	// PaaS platforms hand out the listening port as a bare PORT variable.
	_ = v.BindEnv("port", "PORT")

	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	if port := v.GetString("port"); port != "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.Log.Level = strings.ToLower(v.GetString("log.level"))
	cfg.Log.Format = strings.ToLower(v.GetString("log.format"))
	cfg.Seed.File = v.GetString("seed.file")
	cfg.MasterKey = v.GetString("master_key")

	timeout, err := time.ParseDuration(v.GetString("http.shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid JOKES_HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.HTTP.ShutdownTimeout = timeout

	switch cfg.Log.Format {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid JOKES_LOG_FORMAT %q: must be json or console", cfg.Log.Format)
	}

	if cfg.MasterKey == "" {
		return nil, ErrMissingMasterKey
	}

	return cfg, nil
}
