package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultGroqURL      = "https://api.groq.com/openai/v1/chat/completions"
	DefaultGroqModel    = "llama-3.1-8b-instant"
	DefaultSystemPrompt = "You are ArkTech. Answer clearly in 2-4 sentences."
	DefaultTemperature  = 0.4
	DefaultGroqTimeout  = 60 * time.Second
)

// Options controls where Load looks for its inputs.
type Options struct {
	// EnvFile is loaded with godotenv.Overload before anything else is read.
	// Empty disables it.
	EnvFile     string
	ConfigPaths []string
}

func DefaultOptions() Options {
	return Options{
		EnvFile:     ".env",
		ConfigPaths: []string{"./configs", ".", "/app/configs"},
	}
}

func Load() (*Config, error) {
	return LoadWithOptions(DefaultOptions())
}

func LoadWithOptions(opts Options) (*Config, error) {
	// Values in the env file win over whatever the shell already exported.
	if opts.EnvFile != "" {
		if err := godotenv.Overload(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range opts.ConfigPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Allow the conventional names without the APP_ prefix
	bindings := map[string][]string{
		"groq.api_key":    {"GROQ_API_KEY", "APP_GROQ_API_KEY"},
		"groq.base_url":   {"GROQ_URL", "APP_GROQ_BASE_URL"},
		"groq.model":      {"GROQ_MODEL", "APP_GROQ_MODEL"},
		"http.port":       {"PORT", "HTTP_PORT", "APP_HTTP_PORT"},
		"logging.level":   {"LOG_LEVEL", "APP_LOGGING_LEVEL"},
		"app.environment": {"APP_ENVIRONMENT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Groq.APIKey = strings.TrimSpace(cfg.Groq.APIKey)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "arktech-brain")
	v.SetDefault("app.version", "v1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.port", 8000)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", DefaultGroqTimeout+10*time.Second)
	v.SetDefault("http.idle_timeout", 120*time.Second)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)

	v.SetDefault("groq.api_key", "")
	v.SetDefault("groq.base_url", DefaultGroqURL)
	v.SetDefault("groq.model", DefaultGroqModel)
	v.SetDefault("groq.temperature", DefaultTemperature)
	v.SetDefault("groq.timeout", DefaultGroqTimeout)
	v.SetDefault("groq.system_prompt", DefaultSystemPrompt)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})
	v.SetDefault("cors.max_age", 86400)
}
