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
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Upstreams
	Groq     GroqConfig
	LLM      LLMConfig
	Geocoder GeocoderConfig

	// Location resolver
	Location LocationConfig
}

type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig holds listener settings. TrustedProxies lists the peers
// whose forwarding headers are honoured; empty means none are.
type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// GroqConfig configures the hosted completion API. An empty APIKey disables narration.
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// LLMConfig holds the provider manager settings.
type LLMConfig struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

type GeocoderConfig struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type LocationConfig struct {
	CacheSize int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
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
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Groq (GROQ_API_KEY maps onto groq.api_key through the key replacer)
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.Temperature = viper.GetFloat64("groq.temperature")
	cfg.Groq.MaxTokens = viper.GetInt("groq.max_tokens")

	var err error
	if cfg.Groq.Timeout, err = parseDuration("groq.timeout"); err != nil {
		return nil, err
	}

	// LLM manager
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	if cfg.LLM.RetryDelay, err = parseDuration("llm.retry_delay"); err != nil {
		return nil, err
	}
	if cfg.LLM.MaxTotalTimeout, err = parseDuration("llm.max_total_timeout"); err != nil {
		return nil, err
	}

	// Geocoder
	cfg.Geocoder.BaseURL = viper.GetString("geocoder.base_url")
	cfg.Geocoder.UserAgent = viper.GetString("geocoder.user_agent")
	cfg.Geocoder.RequestsPerSecond = viper.GetFloat64("geocoder.requests_per_second")
	if cfg.Geocoder.Timeout, err = parseDuration("geocoder.timeout"); err != nil {
		return nil, err
	}

	cfg.Location.CacheSize = viper.GetInt("location.cache_size")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("http_server.trusted_proxies", "")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.requests_per_min", 30)

	// Groq defaults
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.temperature", 0.7)
	viper.SetDefault("groq.max_tokens", 2500)
	viper.SetDefault("groq.timeout", "60s")

	// LLM defaults: a single attempt, no fallback chain
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "90s")

	// Geocoder defaults (Nominatim usage policy: max 1 req/s, identifying UA)
	viper.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocoder.user_agent", "astro_luxury_app_v5")
	viper.SetDefault("geocoder.timeout", "10s")
	viper.SetDefault("geocoder.requests_per_second", 1.0)

	viper.SetDefault("location.cache_size", 100)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	if cfg.Location.CacheSize <= 0 {
		return fmt.Errorf("location.cache_size must be positive, got %d", cfg.Location.CacheSize)
	}
	if cfg.LLM.RetryAttempts < 1 {
		return fmt.Errorf("llm.retry_attempts must be at least 1, got %d", cfg.LLM.RetryAttempts)
	}
	return nil
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// splitList splits a comma separated value since viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
