// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

// Package config loads and validates application configuration.
//
// Configuration is layered via Koanf v2: struct defaults, then an
// optional YAML file, then environment variables. The resulting Config
// is passed explicitly into constructors; nothing in the application
// reads the environment after startup.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Security SecurityConfig `koanf:"security"`
	LLM      LLMConfig      `koanf:"llm"`
	Sample   SampleConfig   `koanf:"sample"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// MongoConfig holds document store settings.
type MongoConfig struct {
	// URL is the MongoDB connection string.
	URL string `koanf:"url"`

	// Database is the database name holding the audit collections.
	Database string `koanf:"database"`

	// ConnectTimeout bounds the initial connect and ping.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	// CORSOrigins lists allowed origins. "*" allows any origin and is
	// intended for development only.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs is the per-IP request budget per window.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window duration.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns off rate limiting entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LLMConfig holds settings for the narrative summarizer.
type LLMConfig struct {
	// APIKey enables the OpenAI-backed summarizer. Empty disables it
	// and assessments fall back to the static analysis notice.
	APIKey string `koanf:"api_key"`

	// LegacyAPIKey is populated from the EMERGENT_LLM_KEY variable.
	// Used only when APIKey is unset.
	LegacyAPIKey string `koanf:"legacy_api_key"`

	// Model is the chat completion model name.
	Model string `koanf:"model"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `koanf:"timeout"`
}

// SampleConfig holds demo data generation settings.
type SampleConfig struct {
	// Count is the number of access logs per generation run.
	Count int `koanf:"count"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would prevent the
// application from starting correctly.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Mongo.URL == "" {
		return fmt.Errorf("mongo url is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if c.Sample.Count < 1 {
		return fmt.Errorf("sample count must be positive, got %d", c.Sample.Count)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("rate limit requests must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("rate limit window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	if c.LLM.APIKey != "" && c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm timeout must be positive, got %s", c.LLM.Timeout)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	return nil
}

// LLMEnabled reports whether a summarizer API key is configured.
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}
