package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	CacheTTL    time.Duration
	RunsPerRepo int
	StorePath   string
	// Token is optional; when empty all requests go out unauthenticated.
	Token string
}

// Load reads configuration from the environment (a local .env file is
// honored when present). The token comes from GITHUB_TOKEN, falling back
// to whatever the gh CLI has stored for github.com.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("REPOBOARD_API_URL"),
		CacheTTL:    5 * time.Minute,
		RunsPerRepo: 5,
		StorePath:   os.Getenv("REPOBOARD_STORE"),
		Token:       os.Getenv("GITHUB_TOKEN"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://api.github.com"
	}
	if v := os.Getenv("REPOBOARD_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = d
		}
	}
	if v := os.Getenv("REPOBOARD_RUNS_PER_REPO"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RunsPerRepo = n
		}
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}
	if cfg.Token == "" {
		cfg.Token, _ = auth.TokenForHost("github.com")
	}

	return cfg
}

func (c *Config) Validate() error {
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %v", c.CacheTTL)
	}
	if c.RunsPerRepo <= 0 {
		return fmt.Errorf("runs per repo must be positive, got %d", c.RunsPerRepo)
	}
	if c.StorePath == "" {
		return fmt.Errorf("watch list path is empty")
	}
	return nil
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "repoboard", "repos.json")
}
