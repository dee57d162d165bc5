// Package config loads growlme settings from defaults, an optional JSON
// config file, and GROWLME_* environment variables, in that priority order
// (environment highest). The shared Growl password may additionally come
// from a plaintext password file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the growlme CLI tool configuration.
type Config struct {
	Host         string `koanf:"host" validate:"required"`
	Password     string `koanf:"password"`
	PasswordFile string `koanf:"password_file"`
	Title        string `koanf:"title"`
	SuccessText  string `koanf:"success_text" validate:"required"`
	FailText     string `koanf:"fail_text" validate:"required"`
	Sticky       bool   `koanf:"sticky"`
	Quiet        bool   `koanf:"quiet"`
}

// Load builds the configuration from defaults, the user config file
// ($XDG_CONFIG_HOME/growlme/config.json), an optional explicit config path,
// and GROWLME_* environment variables.
// Priority: environment > explicit path > user config file > defaults.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	userPath := filepath.Join(xdg.ConfigHome, "growlme", "config.json")
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", userPath, err)
		}
	}

	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err == nil {
			if err := k.Load(file.Provider(explicitPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", explicitPath, err)
			}
		}
	}

	k.Load(env.Provider("GROWLME_", ".", envTransform), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Host == "" {
		cfg.Host = InferHost()
	}
	cfg.PasswordFile = expandHomePath(cfg.PasswordFile)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: GROWLME_FAIL_TEXT -> fail_text
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "GROWLME_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// InferHost picks the default notification target. When the session came in
// over ssh, the machine to notify is the one the user is sitting at, which
// is the first field of SSH_CLIENT / SSH_CONNECTION. Otherwise localhost.
func InferHost() string {
	for _, v := range []string{"SSH_CLIENT", "SSH_CONNECTION"} {
		if val := os.Getenv(v); val != "" {
			if fields := strings.Fields(val); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return "localhost"
}
