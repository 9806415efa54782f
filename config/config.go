package config

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress      string   `mapstructure:"SERVER_ADDRESS"`       // e.g., ":8080"
	AppEnv             string   `mapstructure:"APP_ENV"`              // "production" switches gin to release mode
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"` // frontend origins allowed to call the API

	// Generation Configuration
	APIKey            string        `mapstructure:"OPENROUTER_API_KEY"` // bearer token for the completion endpoint
	APIBaseURL        string        `mapstructure:"API_BASE_URL"`       // OpenAI-compatible base URL
	ModelID           string        `mapstructure:"MODEL_ID"`
	Temperature       float32       `mapstructure:"TEMPERATURE"`
	HTTPReferer       string        `mapstructure:"HTTP_REFERER"` // sent as HTTP-Referer for provider attribution
	AppTitle          string        `mapstructure:"APP_TITLE"`    // sent as X-Title
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"`

	// Editor Configuration
	EditorSettleDelay  time.Duration `mapstructure:"EDITOR_SETTLE_DELAY"`
	EditorHistoryLimit int           `mapstructure:"EDITOR_HISTORY_LIMIT"` // undo steps kept per session
	SessionIdleTTL     time.Duration `mapstructure:"SESSION_IDLE_TTL"`     // idle sessions are closed after this; 0 keeps them
	MaxSessions        int           `mapstructure:"MAX_SESSIONS"`         // open sessions allowed at once; 0 means unlimited
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})
	v.SetDefault("OPENROUTER_API_KEY", "")
	v.SetDefault("API_BASE_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("MODEL_ID", "deepseek/deepseek-r1:free")
	v.SetDefault("TEMPERATURE", 0.7)
	v.SetDefault("HTTP_REFERER", "")
	v.SetDefault("APP_TITLE", "AI Site Builder")
	v.SetDefault("GENERATION_TIMEOUT", 120*time.Second)
	v.SetDefault("EDITOR_SETTLE_DELAY", 100*time.Millisecond)
	v.SetDefault("EDITOR_HISTORY_LIMIT", 50)
	v.SetDefault("SESSION_IDLE_TTL", 30*time.Minute)
	v.SetDefault("MAX_SESSIONS", 100)
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (Config, error) {
	return load(viper.GetViper(), path)
}

func load(v *viper.Viper, path string) (config Config, err error) {
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")

	setDefaults(v)
	v.AutomaticEnv() // Read environment variables that match keys

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// A missing key must not stop the server; generation calls fail at request time instead.
	if config.APIKey == "" {
		log.Println("WARN: OPENROUTER_API_KEY is not set. Every generation request will fail until it is provided.")
	}
	if len(config.CORSAllowedOrigins) == 0 {
		log.Println("WARN: CORS_ALLOWED_ORIGINS is empty. Browser clients on other origins will be rejected.")
	}

	return config, nil
}

// Watch re-decodes the configuration whenever the config file changes and
// hands the result to onChange. It is a no-op when no file was loaded.
func Watch(onChange func(Config)) {
	watch(viper.GetViper(), onChange)
}

func watch(v *viper.Viper, onChange func(Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			log.Printf("WARN: ignoring config change from %s: %v", e.Name, err)
			return
		}
		log.Printf("Configuration reloaded after %s on %s", e.Op, e.Name)
		onChange(cfg)
	})
	v.WatchConfig()
}
