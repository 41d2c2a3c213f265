package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	App    AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type GeminiConfig struct {
	// APIKey authenticates every call to the generation service. Required.
	APIKey string
	// EditModel handles all image editing and compositing requests.
	EditModel string
	// PosterModel generates poster base images from a text prompt.
	PosterModel string
}

type AppConfig struct {
	MaxUploadBytes int64
	LogLevel       string
}

// Load reads configuration from the environment. A .env file is honored
// in development but its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("SERVER_HOST", "")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_EDIT_MODEL", "gemini-2.5-flash-image-preview")
	viper.SetDefault("GEMINI_POSTER_MODEL", "imagen-4.0-generate-001")
	viper.SetDefault("APP_MAX_UPLOAD_BYTES", 10*1024*1024) // 10MB
	viper.SetDefault("APP_LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("GEMINI_API_KEY"),
			EditModel:   viper.GetString("GEMINI_EDIT_MODEL"),
			PosterModel: viper.GetString("GEMINI_POSTER_MODEL"),
		},
		App: AppConfig{
			MaxUploadBytes: viper.GetInt64("APP_MAX_UPLOAD_BYTES"),
			LogLevel:       viper.GetString("APP_LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.App.MaxUploadBytes <= 0 {
		return fmt.Errorf("APP_MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
