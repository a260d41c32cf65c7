package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	// DB is optional. When Driver is empty the template store is disabled
	// and only the built-in templates are served.
	DB struct {
		Driver string
		DSN    string
	}
	LLM struct {
		APIKey       string
		BaseURL      string
		Referer      string
		Title        string
		Timeout      time.Duration
		StrictErrors bool
	}
	Log struct {
		Level  string
		Format string
	}
	CORS struct {
		AllowedOrigins []string
	}
}

// Load reads config from a .env file, the environment (CG_ prefix) and an
// optional content-genius.yaml. OPENROUTER_API_KEY and PORT are honored for
// compatibility with existing deployments.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("CG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("content-genius")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	_ = v.BindEnv("llm.api_key", "CG_LLM_API_KEY", "OPENROUTER_API_KEY")

	v.SetDefault("http.addr", ":5000")
	if port := os.Getenv("PORT"); port != "" {
		v.SetDefault("http.addr", ":"+port)
	}
	v.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.referer", "http://localhost:3000")
	v.SetDefault("llm.title", "Content Genius")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("llm.strict_errors", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allowed_origins", "*")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.BaseURL = strings.TrimRight(v.GetString("llm.base_url"), "/")
	cfg.LLM.Referer = v.GetString("llm.referer")
	cfg.LLM.Title = v.GetString("llm.title")
	cfg.LLM.StrictErrors = v.GetBool("llm.strict_errors")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	timeout, err := time.ParseDuration(v.GetString("llm.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid CG_LLM_TIMEOUT: %w", err)
	}
	cfg.LLM.Timeout = timeout

	switch cfg.DB.Driver {
	case "":
		if cfg.DB.DSN != "" {
			return nil, fmt.Errorf("CG_DB_DRIVER is required when CG_DB_DSN is set (sqlite3, mysql, postgres)")
		}
	case "sqlite3", "mysql", "postgres":
		if cfg.DB.DSN == "" {
			return nil, fmt.Errorf("CG_DB_DSN is required when CG_DB_DRIVER is set")
		}
	default:
		return nil, fmt.Errorf("unsupported CG_DB_DRIVER %q: must be sqlite3, mysql, or postgres", cfg.DB.Driver)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
