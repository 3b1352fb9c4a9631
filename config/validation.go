package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredEnvVars []string
}

var requirements = map[Environment]ConfigRequirements{
	Development: {},
	Test:        {},
	CI: {
		RequiredEnvVars: []string{"SERVER_PORT"},
	},
	Production: {
		RequiredEnvVars: []string{"SERVER_HOST", "SERVER_PORT"},
	},
}

// ValidateConfig checks cfg and the environment requirements for the
// current environment. All problems are reported together.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []ValidationError

	for _, envVar := range requirements[env].RequiredEnvVars {
		if os.Getenv(envVar) == "" && readSecret(strings.ToLower(envVar)) == "" {
			errs = append(errs, ValidationError{envVar, "required in " + string(env) + " environment"})
		}
	}

	if strings.TrimSpace(cfg.ServerHost) == "" {
		errs = append(errs, ValidationError{"server_host", "must not be empty"})
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{"server_port", fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{"allowed_origins", fmt.Sprintf("invalid origin %q", origin)})
		}
	}
	if cfg.PlaceholderImage != "" {
		if u, err := url.Parse(cfg.PlaceholderImage); err != nil || u.Scheme == "" {
			errs = append(errs, ValidationError{"placeholder_image", "must be an absolute URL"})
		}
	}
	if cfg.LogLevel != "" {
		if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, ValidationError{"log_level", err.Error()})
		}
	}
	if cfg.RateLimit < 0 {
		errs = append(errs, ValidationError{"rate_limit", "must not be negative"})
	}
	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		errs = append(errs, ValidationError{"rate_burst", "must be at least 1 when rate limiting is enabled"})
	}

	if len(errs) > 0 {
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Error()
		}
		return fmt.Errorf("%d problem(s):\n%s", len(errs), strings.Join(lines, "\n"))
	}
	return nil
}
