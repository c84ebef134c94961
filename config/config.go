package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig

	// Care companion specifics
	Assistant      AssistantConfig
	Gemini         GeminiConfig
	Database       DatabaseConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AuthConfig struct {
	APIKey string // empty disables API-key auth
}

type AssistantConfig struct {
	DefaultMode  string // on_device, cloud, or hybrid
	ProbeURL     string // connectivity probe target
	ProbeTimeout time.Duration
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	APIURL      string
	Timeout     time.Duration
	RatePerSec  float64
	Temperature float64
	MaxTokens   int
}

type DatabaseConfig struct {
	Path string // SQLite file path
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Auth.APIKey = viper.GetString("auth.api_key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Auth.APIKey = apiKey
	}

	// Assistant routing
	cfg.Assistant.DefaultMode = viper.GetString("assistant.default_mode")
	cfg.Assistant.ProbeURL = viper.GetString("assistant.probe_url")
	cfg.Assistant.ProbeTimeout = viper.GetDuration("assistant.probe_timeout")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.RatePerSec = viper.GetFloat64("gemini.rate_per_sec")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.MaxTokens = viper.GetInt("gemini.max_tokens")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Database
	cfg.Database.Path = viper.GetString("database.path")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.default_mode", "hybrid")
	viper.SetDefault("assistant.probe_url", "https://connectivitycheck.gstatic.com/generate_204")
	viper.SetDefault("assistant.probe_timeout", "3s")

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("gemini.rate_per_sec", 2)

	viper.SetDefault("database.path", "care-companion.db")
	viper.SetDefault("google_calendar.timezone", "UTC")
}
