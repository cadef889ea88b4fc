package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// MySQLConfig holds the connection parameters of the WordPress database
type MySQLConfig struct {
	Host     string
	User     string
	Password string
	Database string
}

// Config is read once at startup and handed to the readers and writers
// that need it. Nothing is defaulted or validated here: an empty value is
// passed through and the driver reports the problem when it connects.
type Config struct {
	MySQL    MySQLConfig
	MongoURI string
}

// envFiles are tried in order, the first existing one wins
var envFiles = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file it finds.
// A missing file is fine (variables may be set system-wide); a file that
// exists but cannot be parsed is an error. The loaded path is returned, or
// "" when no file was found.
func LoadEnv() (string, error) {
	candidates := envFiles
	if root, err := GetProjectRoot(); err == nil {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}

	for _, envPath := range candidates {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("error loading %s file: %w", envPath, err)
		}
		return envPath, nil
	}

	return "", nil
}

// Load reads the job configuration from the process environment
func Load() *Config {
	return &Config{
		MySQL: MySQLConfig{
			Host:     os.Getenv("MYSQL_HOST"),
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Database: os.Getenv("MYSQL_DATABASE"),
		},
		MongoURI: os.Getenv("MONGO_URI"),
	}
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads the .env file if there is one and reads the
// configuration. This is the main entry point for configuration loading.
func InitializeConfig() (*Config, string, error) {
	envPath, err := LoadEnv()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	return Load(), envPath, nil
}
