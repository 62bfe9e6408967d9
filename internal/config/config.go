package config

import (
	"os"
	"strings"
)

// DefaultSessionSecret is only acceptable outside production.
const DefaultSessionSecret = "secret_key_change_me"

type Config struct {
	Port               string
	DatabaseURL        string
	SessionSecret      string
	GitHubClientID     string
	GitHubClientSecret string
	CallbackURL        string
	Environment        string // ENV: production, development, test
}

// Load reads the configuration from the environment. Call godotenv.Load first when a .env
// file should be honoured.
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8000"),
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=bloghub port=5432 sslmode=disable"),
		SessionSecret:      getEnv("SESSION_SECRET", DefaultSessionSecret),
		GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		CallbackURL:        getEnv("CALLBACK_URL", "http://localhost:8000/auth/github/callback"),
		Environment:        strings.ToLower(strings.TrimSpace(getEnv("ENV", "development"))),
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
