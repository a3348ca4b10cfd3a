package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"os"
	"strings"
	"time"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`

	ListenAddress  string   `envconfig:"LISTEN_ADDRESS" default:":5000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	SecretKey      string   `envconfig:"SECRET_KEY" default:"adapct-secret-key-for-session"`
	LogFile        string   `envconfig:"LOG_FILE"`

	APIURL               string `envconfig:"API_URL" required:"true"`
	TranslatorURL        string `envconfig:"TRANSLATOR_URL"`
	TranslatorAPIVersion string `envconfig:"TRANSLATOR_API_VERSION" default:"2025-05-01-preview"`
	TranslationKey       string `envconfig:"TRANSLATION_KEY"`
	Region               string `envconfig:"REGION"`
	GPTURL               string `envconfig:"GPT_URL"`
	GPTKey               string `envconfig:"GPT_KEY"`
	GPTDeploymentName    string `envconfig:"GPT_DEPLOYMENT_NAME" default:"gpt-4o-mini"`

	SessionDriver   string        `envconfig:"SESSION_DRIVER" default:"inmem"`
	SessionLifetime time.Duration `envconfig:"SESSION_LIFETIME" default:"30m"`
	PostgresDSN     string        `envconfig:"POSTGRES_DSN"`
	RedisURL        string        `envconfig:"REDIS_URL"`

	UploadDir string `envconfig:"UPLOAD_DIR"`
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.EqualFold(config.Environment, "prod") || strings.EqualFold(config.Environment, "production")
}

// ScratchDir returns the directory temporary upload files are placed in
func (config *Config) ScratchDir() string {
	if config.UploadDir == "" {
		return os.TempDir()
	}
	return config.UploadDir
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file.
// Additional env files may be passed; they are loaded in order and override the default .env file.
func LoadFromEnv(envFiles ...string) (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()
	if len(envFiles) > 0 {
		if err := godotenv.Overload(envFiles...); err != nil {
			return nil, err
		}
	}

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	return config, nil
}
