package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// BrowserURL is the DevTools endpoint of an already running browser.
	// Empty means a local headless Chrome is launched instead.
	BrowserURL   string
	POTDBaseURL  string
	WaitTimeout  time.Duration
	PollInterval time.Duration
	WikiBaseURL  string
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory. Variables already set win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BrowserURL:   getEnvAllowEmpty("POTD_BROWSER_URL", "ws://localhost:9222"),
		POTDBaseURL:  getEnv("POTD_BASE_URL", "https://leetcode.com"),
		WaitTimeout:  getEnvDuration("POTD_WAIT_TIMEOUT", 30*time.Second),
		PollInterval: getEnvDuration("POTD_POLL_INTERVAL", 500*time.Millisecond),
		WikiBaseURL:  getEnv("WIKI_BASE_URL", "https://en.wikipedia.org"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAllowEmpty(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
