package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Projects ProjectsConfig
	Compose  ComposeConfig
	Auth     AuthConfig
	CORS     CORSConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

type ProjectsConfig struct {
	BasePath     string
	ManifestName string
}

type ComposeConfig struct {
	Command         string
	Timeout         time.Duration
	StrictLifecycle bool
	StatusSchedule  string
}

type AuthConfig struct {
	AdminUser     string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	LoginRate     float64
	LoginBurst    int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			TrustedProxies:  getEnvAsList("TRUSTED_PROXIES", nil),
		},
		Projects: ProjectsConfig{
			BasePath:     getEnv("PROJECTS_DIR", "./projects"),
			ManifestName: getEnv("PROJECTS_MANIFEST", "compose.yml"),
		},
		Compose: ComposeConfig{
			Command:         getEnv("COMPOSE_COMMAND", "docker compose"),
			Timeout:         getEnvAsDuration("COMPOSE_TIMEOUT", 5*time.Minute),
			StrictLifecycle: getEnvAsBool("COMPOSE_STRICT_LIFECYCLE", false),
			StatusSchedule:  getEnv("STATUS_SCHEDULE", ""),
		},
		Auth: AuthConfig{
			AdminUser:     getEnv("AUTH_ADMIN_USER", "admin"),
			AdminPassword: getEnv("AUTH_ADMIN_PASSWORD", ""),
			JWTSecret:     getEnv("AUTH_JWT_SECRET", ""),
			TokenTTL:      getEnvAsDuration("AUTH_TOKEN_TTL", 30*24*time.Hour),
			LoginRate:     getEnvAsFloat("AUTH_LOGIN_RATE", 1),
			LoginBurst:    getEnvAsInt("AUTH_LOGIN_BURST", 5),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Projects.BasePath == "" {
		return fmt.Errorf("PROJECTS_DIR is required")
	}

	if c.Projects.ManifestName == "" || strings.ContainsAny(c.Projects.ManifestName, `/\`) {
		return fmt.Errorf("PROJECTS_MANIFEST must be a plain file name")
	}

	if strings.TrimSpace(c.Compose.Command) == "" {
		return fmt.Errorf("COMPOSE_COMMAND is required")
	}

	if c.Compose.Timeout <= 0 {
		return fmt.Errorf("COMPOSE_TIMEOUT must be positive")
	}

	if c.Auth.AdminUser == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("AUTH_ADMIN_USER and AUTH_ADMIN_PASSWORD are required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive")
	}

	if c.Auth.LoginRate <= 0 || c.Auth.LoginBurst <= 0 {
		return fmt.Errorf("AUTH_LOGIN_RATE and AUTH_LOGIN_BURST must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma separated value, dropping blank entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
