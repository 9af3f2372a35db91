// Package config resolves the service configuration from the process environment once at startup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultMessage is served when APP_MESSAGE is unset or empty.
	DefaultMessage = "Hello from Spring Boot on Kubernetes"
	// DefaultPort is the listen port when PORT is unset or empty.
	DefaultPort = "8080"
	// DefaultEnvFile is the optional dotenv file read when ENV_FILE is unset.
	DefaultEnvFile = ".env"
)

// Environment variable names.
const (
	EnvMessage        = "APP_MESSAGE"
	EnvPort           = "PORT"
	EnvFile           = "ENV_FILE"
	EnvAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Config is resolved once by Load and passed by value; it is never mutated afterwards.
type Config struct {
	Port    string
	Message string
	// AllowedOrigins is empty when any origin may read the API.
	AllowedOrigins []string
}

// Load reads the optional dotenv file and resolves every setting from the environment.
// Variables already present in the process environment take precedence over the file.
// Absent variables fall back to defaults; only a malformed dotenv file is an error.
func Load() (Config, error) {
	if err := loadEnvFile(Lookup(EnvFile, DefaultEnvFile)); err != nil {
		return Config{}, err
	}
	return Config{
		Port:           Lookup(EnvPort, DefaultPort),
		Message:        Lookup(EnvMessage, DefaultMessage),
		AllowedOrigins: splitList(os.Getenv(EnvAllowedOrigins)),
	}, nil
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Lookup returns the value of key when it is set and non-empty, otherwise fallback.
func Lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
