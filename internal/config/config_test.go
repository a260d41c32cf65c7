package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":5000" {
		t.Errorf("addr = %q, want %q", cfg.HTTP.Addr, ":5000")
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Errorf("api key = %q, want %q", cfg.LLM.APIKey, "sk-test")
	}
	if cfg.LLM.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("base url = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", cfg.LLM.Timeout)
	}
	if cfg.LLM.StrictErrors {
		t.Error("strict errors should default to false")
	}
	if cfg.DB.Driver != "" {
		t.Errorf("db driver = %q, want empty", cfg.DB.Driver)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors origins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_PortEnv(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8081" {
		t.Errorf("addr = %q, want %q", cfg.HTTP.Addr, ":8081")
	}
}

func TestLoad_PrefixedOverrides(t *testing.T) {
	t.Setenv("CG_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CG_LLM_BASE_URL", "http://localhost:4000/v1/")
	t.Setenv("CG_LLM_STRICT_ERRORS", "true")
	t.Setenv("CG_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.LLM.BaseURL != "http://localhost:4000/v1" {
		t.Errorf("base url = %q, want trailing slash trimmed", cfg.LLM.BaseURL)
	}
	if !cfg.LLM.StrictErrors {
		t.Error("expected strict errors")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("cors origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_DBValidation(t *testing.T) {
	t.Setenv("CG_DB_DRIVER", "oracle")
	t.Setenv("CG_DB_DSN", "x")
	if _, err := Load(); err == nil {
		t.Error("expected error for unsupported driver")
	}

	t.Setenv("CG_DB_DRIVER", "postgres")
	t.Setenv("CG_DB_DSN", "")
	if _, err := Load(); err == nil {
		t.Error("expected error for driver without DSN")
	}

	t.Setenv("CG_DB_DRIVER", "")
	t.Setenv("CG_DB_DSN", "postgres://localhost/cg")
	if _, err := Load(); err == nil {
		t.Error("expected error for DSN without driver")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("CG_LLM_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid timeout")
	}
}
