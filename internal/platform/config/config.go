// Package config assembles server configuration from an optional YAML
// file and environment variables so main stays lean. Environment
// variables always win over file values.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	LogLevel       string
	RequestTimeout time.Duration

	// JWTSigningKey enables bearer-token auth on the validation routes
	// when non-empty. Left empty the API is open, which is the sensible
	// default for local use.
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
}

// Load builds a Server config from defaults, an optional YAML file
// named by NHICHECK_CONFIG, and environment variable overrides.
func Load() (Server, error) {
	cfg := Server{
		Addr:           ":8080",
		LogLevel:       "info",
		RequestTimeout: 10 * time.Second,
		JWTIssuer:      "nhicheck",
		JWTAudience:    "nhicheck-api",
	}

	if path := os.Getenv("NHICHECK_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Server{}, err
		}
	}

	if addr := os.Getenv("NHICHECK_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv("NHICHECK_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if key := os.Getenv("NHICHECK_JWT_SIGNING_KEY"); key != "" {
		cfg.JWTSigningKey = key
	}
	if issuer := os.Getenv("NHICHECK_JWT_ISSUER"); issuer != "" {
		cfg.JWTIssuer = issuer
	}
	if audience := os.Getenv("NHICHECK_JWT_AUDIENCE"); audience != "" {
		cfg.JWTAudience = audience
	}
	if timeout := os.Getenv("NHICHECK_REQUEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Server{}, fmt.Errorf("parsing NHICHECK_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// applyFile overlays values from a YAML file onto cfg. Durations are
// carried as strings in the file ("10s") since yaml.v3 has no native
// time.Duration decoding.
func (s *Server) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file struct {
		Addr           string `yaml:"addr"`
		LogLevel       string `yaml:"log_level"`
		RequestTimeout string `yaml:"request_timeout"`
		JWTSigningKey  string `yaml:"jwt_signing_key"`
		JWTIssuer      string `yaml:"jwt_issuer"`
		JWTAudience    string `yaml:"jwt_audience"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.Addr != "" {
		s.Addr = file.Addr
	}
	if file.LogLevel != "" {
		s.LogLevel = file.LogLevel
	}
	if file.RequestTimeout != "" {
		d, err := time.ParseDuration(file.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parsing request_timeout in %s: %w", path, err)
		}
		s.RequestTimeout = d
	}
	if file.JWTSigningKey != "" {
		s.JWTSigningKey = file.JWTSigningKey
	}
	if file.JWTIssuer != "" {
		s.JWTIssuer = file.JWTIssuer
	}
	if file.JWTAudience != "" {
		s.JWTAudience = file.JWTAudience
	}
	return nil
}

// AuthEnabled reports whether bearer-token auth should guard the API.
func (s Server) AuthEnabled() bool {
	return s.JWTSigningKey != ""
}
