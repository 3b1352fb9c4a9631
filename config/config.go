package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string `toml:"server_host"`
	ServerPort string `toml:"server_port"`

	// Origins allowed to call the API from a browser
	AllowedOrigins []string `toml:"allowed_origins"`

	// Recipe store
	PlaceholderImage string `toml:"placeholder_image"`
	SeedRecipes      bool   `toml:"seed_recipes"`

	LogLevel string `toml:"log_level"`

	// Requests per second and burst allowed per client on mutating routes.
	// A zero RateLimit disables limiting.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		ServerHost:     "127.0.0.1",
		ServerPort:     "8080",
		AllowedOrigins: []string{"http://localhost:5173"},
		SeedRecipes:    true,
		LogLevel:       "info",
		RateLimit:      10,
		RateBurst:      20,
	}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig builds the configuration from defaults, the optional TOML file
// named by CONFIG_FILE, environment variables and, in production, secrets.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	switch env {
	case Development, Test, CI:
		if err := loadEnvConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile overlays the TOML file at path onto cfg
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig overlays environment variables onto cfg
func loadEnvConfig(cfg *Config) error {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.ServerHost = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.ServerPort = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("PLACEHOLDER_IMAGE"); v != "" {
		cfg.PlaceholderImage = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SEED_RECIPES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_RECIPES: %w", err)
		}
		cfg.SeedRecipes = b
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_BURST: %w", err)
		}
		cfg.RateBurst = n
	}
	return nil
}

// loadProdConfig reads the environment, then lets Docker secrets win for
// the values deployments usually mount
func loadProdConfig(cfg *Config) error {
	if err := loadEnvConfig(cfg); err != nil {
		return err
	}
	if v := readSecret("server_host"); v != "" {
		cfg.ServerHost = v
	}
	if v := readSecret("server_port"); v != "" {
		cfg.ServerPort = v
	}
	if v := readSecret("allowed_origins"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
