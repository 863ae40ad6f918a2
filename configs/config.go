package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeyave/airia-site/helpers"
)

const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceMongo = "mongo"
)

type Config struct {
	Port            string
	Env             string
	Lang            string
	Timezone        string
	ContentSource   string
	DataDir         string
	DataURL         string
	MongoURI        string
	MongoName       string
	BaseURL         string
	RefreshInterval time.Duration
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	c := &Config{
		Port:          env("PORT", "8080"),
		Env:           env("SITE_ENV", "development"),
		Lang:          env("SITE_LANG", helpers.DefaultLang),
		Timezone:      env("SITE_TIMEZONE", helpers.DefaultTimezone),
		ContentSource: env("SITE_CONTENT_SOURCE", SourceFile),
		DataDir:       env("SITE_DATA_DIR", "data"),
		DataURL:       env("SITE_DATA_URL", ""),
		MongoURI:      env("SITE_MONGODB_URI", ""),
		MongoName:     env("SITE_MONGODB_NAME", "airia"),
		BaseURL:       env("SITE_BASE_URL", ""),
	}

	if v := env("SITE_REFRESH_INTERVAL", ""); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SITE_REFRESH_INTERVAL: %w", err)
		}
		c.RefreshInterval = interval
	}

	switch c.ContentSource {
	case SourceFile:
	case SourceHTTP:
		if c.DataURL == "" {
			return nil, fmt.Errorf("SITE_DATA_URL is required for the %s source", SourceHTTP)
		}
	case SourceMongo:
		if c.MongoURI == "" {
			return nil, fmt.Errorf("SITE_MONGODB_URI is required for the %s source", SourceMongo)
		}
	default:
		return nil, fmt.Errorf("unknown SITE_CONTENT_SOURCE %q", c.ContentSource)
	}

	return c, nil
}
