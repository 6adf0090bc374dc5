package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the commands need from the environment.
type Config struct {
	// Addr is the frontend's listen address.
	Addr string
	// APIBaseURL is the demo API the frontend talks to.
	APIBaseURL string
	// PageSize is the fixed listing page size.
	PageSize int
	// DemoAddr is the bundled stand-in API's listen address.
	DemoAddr string
	// DemoDataDir is where the stand-in API keeps its Badger store.
	DemoDataDir string
}

// Load reads an optional .env file and then the environment. Missing
// values fall back to defaults that point at the public demo API.
func Load() *Config {
	// A missing .env is fine; real environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		Addr:        getEnv("POSTBOARD_ADDR", ":8080"),
		APIBaseURL:  getEnv("POSTBOARD_API_URL", "https://jsonplaceholder.typicode.com"),
		PageSize:    getEnvInt("POSTBOARD_PAGE_SIZE", 10),
		DemoAddr:    getEnv("POSTBOARD_DEMO_ADDR", ":8081"),
		DemoDataDir: getEnv("POSTBOARD_DEMO_DIR", "data/badger"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
