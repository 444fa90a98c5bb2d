package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/quizform/internal/llm"
	"github.com/abhisek/quizform/internal/quizform"
)

// EnvPrefix is prepended to every environment override,
// e.g. QUIZFORM_LIMITS_MAX_QUESTION_COUNT.
const EnvPrefix = "QUIZFORM"

// Config is the process-start configuration. It is loaded once and passed
// down explicitly.
type Config struct {
	DB     string `mapstructure:"db" yaml:"db"`
	Log    Log    `mapstructure:"log" yaml:"log"`
	Limits Limits `mapstructure:"limits" yaml:"limits"`
	LLM    LLM    `mapstructure:"llm" yaml:"llm"`
}

// Log configures the rotating log file. An empty File disables logging.
type Log struct {
	File       string `mapstructure:"file" yaml:"file"`
	Level      string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" validate:"gte=1"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
}

// Limits mirrors quizform.Limits with the MIN <= DEFAULT <= MAX precondition
// expressed as struct tags.
type Limits struct {
	DefaultQuestionCount int `mapstructure:"default_question_count" yaml:"default_question_count" validate:"gtefield=MinQuestionCount,ltefield=MaxQuestionCount"`
	MinQuestionCount     int `mapstructure:"min_question_count" yaml:"min_question_count" validate:"gte=0"`
	MaxQuestionCount     int `mapstructure:"max_question_count" yaml:"max_question_count" validate:"gtefield=MinQuestionCount"`

	DefaultAnswerCount int `mapstructure:"default_answer_count" yaml:"default_answer_count" validate:"gtefield=MinAnswerCount,ltefield=MaxAnswerCount"`
	MinAnswerCount     int `mapstructure:"min_answer_count" yaml:"min_answer_count" validate:"gte=0"`
	MaxAnswerCount     int `mapstructure:"max_answer_count" yaml:"max_answer_count" validate:"gtefield=MinAnswerCount"`

	MinQuestionLength int `mapstructure:"min_question_length" yaml:"min_question_length" validate:"gte=0"`
	MaxQuestionLength int `mapstructure:"max_question_length" yaml:"max_question_length" validate:"gtefield=MinQuestionLength"`

	MinAnswerLength int `mapstructure:"min_answer_length" yaml:"min_answer_length" validate:"gte=0"`
	MaxAnswerLength int `mapstructure:"max_answer_length" yaml:"max_answer_length" validate:"gtefield=MinAnswerLength"`
}

// Quiz converts the validated limits for the core.
func (l Limits) Quiz() quizform.Limits {
	return quizform.Limits{
		DefaultQuestionCount: l.DefaultQuestionCount,
		MinQuestionCount:     l.MinQuestionCount,
		MaxQuestionCount:     l.MaxQuestionCount,
		DefaultAnswerCount:   l.DefaultAnswerCount,
		MinAnswerCount:       l.MinAnswerCount,
		MaxAnswerCount:       l.MaxAnswerCount,
		MinQuestionLength:    l.MinQuestionLength,
		MaxQuestionLength:    l.MaxQuestionLength,
		MinAnswerLength:      l.MinAnswerLength,
		MaxAnswerLength:      l.MaxAnswerLength,
	}
}

// LLM selects and configures the drafting provider. An empty Provider means
// the provider is discovered from the standard API key variables.
type LLM struct {
	Provider   string        `mapstructure:"provider" yaml:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
	Anthropic  Provider      `mapstructure:"anthropic" yaml:"anthropic"`
	OpenAI     Provider      `mapstructure:"openai" yaml:"openai"`
	Gemini     Provider      `mapstructure:"gemini" yaml:"gemini"`
	OpenRouter Provider      `mapstructure:"openrouter" yaml:"openrouter"`
}

type Provider struct {
	APIKey  string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Model   string `mapstructure:"model" yaml:"model"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty"`
}

// ProviderConfig builds the llm.Config for the configured provider. When no
// provider is set it falls back to llm.DiscoverConfig; ok is false when
// nothing usable was found.
func (c LLM) ProviderConfig() (cfg llm.Config, ok bool) {
	if c.Provider == "" {
		cfg, ok = llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, false
		}
		cfg.Timeout = c.Timeout
		return cfg, true
	}

	cfg = llm.DefaultConfig()
	cfg.Provider = c.Provider
	cfg.Timeout = c.Timeout
	cfg.Anthropic = llm.AnthropicConfig{APIKey: c.Anthropic.APIKey, Model: c.Anthropic.Model}
	cfg.OpenAI = llm.OpenAIConfig{APIKey: c.OpenAI.APIKey, Model: c.OpenAI.Model, BaseURL: c.OpenAI.BaseURL}
	cfg.Gemini = llm.GeminiConfig{APIKey: c.Gemini.APIKey, Model: c.Gemini.Model}
	cfg.OpenRouter = llm.OpenRouterConfig{APIKey: c.OpenRouter.APIKey, Model: c.OpenRouter.Model, BaseURL: c.OpenRouter.BaseURL}
	return cfg, true
}

func setDefaults(v *viper.Viper) {
	l := quizform.DefaultLimits()
	v.SetDefault("db", "")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("limits.default_question_count", l.DefaultQuestionCount)
	v.SetDefault("limits.min_question_count", l.MinQuestionCount)
	v.SetDefault("limits.max_question_count", l.MaxQuestionCount)
	v.SetDefault("limits.default_answer_count", l.DefaultAnswerCount)
	v.SetDefault("limits.min_answer_count", l.MinAnswerCount)
	v.SetDefault("limits.max_answer_count", l.MaxAnswerCount)
	v.SetDefault("limits.min_question_length", l.MinQuestionLength)
	v.SetDefault("limits.max_question_length", l.MaxQuestionLength)
	v.SetDefault("limits.min_answer_length", l.MinAnswerLength)
	v.SetDefault("limits.max_answer_length", l.MaxAnswerLength)

	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", d.OpenRouter.BaseURL)
}

// Default returns the configuration with no file and no environment applied.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads configuration in priority order: defaults, then the config
// file, then QUIZFORM_* environment variables. An explicit path must exist;
// the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultDir returns $XDG_CONFIG_HOME/quizform, falling back to
// ~/.config/quizform.
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizform"), nil
}
