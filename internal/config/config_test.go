// Aegisboard - IT Access Audit and Risk Assessment Dashboard
// Copyright 2026 Dana K. (danakim)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/danakim/aegisboard

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8001 {
		t.Errorf("default port = %d, want 8001", cfg.Server.Port)
	}
	if cfg.Mongo.URL != "mongodb://localhost:27017" {
		t.Errorf("default mongo url = %q", cfg.Mongo.URL)
	}
	if cfg.Mongo.Database != "audit_dashboard" {
		t.Errorf("default database = %q", cfg.Mongo.Database)
	}
	if cfg.Sample.Count != 1200 {
		t.Errorf("default sample count = %d, want 1200", cfg.Sample.Count)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("default llm model = %q", cfg.LLM.Model)
	}
	if cfg.LLMEnabled() {
		t.Error("llm should be disabled without an api key")
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("default cors origins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "audit_prod")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SAMPLE_COUNT", "300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Mongo.URL != "mongodb://db.internal:27017" {
		t.Errorf("mongo url = %q", cfg.Mongo.URL)
	}
	if cfg.Mongo.Database != "audit_prod" {
		t.Errorf("database = %q", cfg.Mongo.Database)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if cfg.Sample.Count != 300 {
		t.Errorf("sample count = %d, want 300", cfg.Sample.Count)
	}
}

func TestLoadCORSOriginsCommaSeparated(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("cors origins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadLLMKeyPrecedence(t *testing.T) {
	t.Run("legacy key used when primary unset", func(t *testing.T) {
		t.Setenv("EMERGENT_LLM_KEY", "legacy-key")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.LLM.APIKey != "legacy-key" {
			t.Errorf("api key = %q, want legacy-key", cfg.LLM.APIKey)
		}
		if !cfg.LLMEnabled() {
			t.Error("llm should be enabled with legacy key")
		}
	})

	t.Run("primary key wins over legacy", func(t *testing.T) {
		t.Setenv("EMERGENT_LLM_KEY", "legacy-key")
		t.Setenv("OPENAI_API_KEY", "primary-key")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.LLM.APIKey != "primary-key" {
			t.Errorf("api key = %q, want primary-key", cfg.LLM.APIKey)
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 7007\nmongo:\n  database: from_file\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7007 {
		t.Errorf("port = %d, want 7007 from file", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "from_file" {
		t.Errorf("database = %q, want from_file", cfg.Mongo.Database)
	}

	// Env still outranks the file.
	t.Setenv("HTTP_PORT", "7008")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7008 {
		t.Errorf("port = %d, want env override 7008", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		cfg := defaultConfig()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing mongo url", func(c *Config) { c.Mongo.URL = "" }, true},
		{"missing database", func(c *Config) { c.Mongo.Database = "" }, true},
		{"zero sample count", func(c *Config) { c.Sample.Count = 0 }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{
			"rate limit ignored when disabled",
			func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
			false,
		},
		{
			"llm timeout required with key",
			func(c *Config) {
				c.LLM.APIKey = "sk-test"
				c.LLM.Timeout = 0
			},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFuncDropsUnknown(t *testing.T) {
	t.Parallel()

	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("unknown variable mapped to %q, want skip", got)
	}
	if got := envTransformFunc("MONGO_URL"); got != "mongo.url" {
		t.Errorf("MONGO_URL mapped to %q", got)
	}
	if got := envTransformFunc("db_name"); got != "mongo.database" {
		t.Errorf("db_name mapped to %q", got)
	}
}
