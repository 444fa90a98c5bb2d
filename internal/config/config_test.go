package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizform/internal/llm"
	"github.com/abhisek/quizform/internal/quizform"
)

func TestDefaultMatchesCoreLimits(t *testing.T) {
	cfg := Default()
	assert.Equal(t, quizform.DefaultLimits(), cfg.Limits.Quiz())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, llm.DefaultConfig().Timeout, cfg.LLM.Timeout)
	require.NoError(t, Validate(cfg))
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUIZFORM_LIMITS_MAX_ANSWER_COUNT", "8")

	path := filepath.Join(t.TempDir(), "quizform.yaml")
	content := `
db: /tmp/q.db
limits:
  default_question_count: 2
  max_question_count: 4
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.db", cfg.DB)
	assert.Equal(t, 2, cfg.Limits.DefaultQuestionCount)
	assert.Equal(t, 4, cfg.Limits.MaxQuestionCount)
	assert.Equal(t, 8, cfg.Limits.MaxAnswerCount)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingDefaultFileIsOptional(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, quizform.DefaultLimits(), cfg.Limits.Quiz())
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateLimitsPrecondition(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"default above max", func(c *Config) { c.Limits.DefaultQuestionCount = 11 }, "DefaultQuestionCount"},
		{"default below min", func(c *Config) { c.Limits.DefaultAnswerCount = 1 }, "DefaultAnswerCount"},
		{"max below min", func(c *Config) { c.Limits.MaxAnswerLength = 2 }, "MaxAnswerLength"},
		{"negative min", func(c *Config) { c.Limits.MinQuestionLength = -1 }, "MinQuestionLength"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "Level"},
		{"bad provider", func(c *Config) { c.LLM.Provider = "acme" }, "Provider"},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		err := Validate(cfg)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		assert.Contains(t, err.Error(), tt.want, tt.name)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Limits.DefaultQuestionCount = 20
	cfg.Log.Level = "loud"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DefaultQuestionCount")
	assert.Contains(t, err.Error(), "Log.Level")
}

func TestProviderConfig(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "openai"
	cfg.LLM.OpenAI.APIKey = "sk-test"
	cfg.LLM.OpenAI.BaseURL = "http://localhost:8080"

	lc, ok := cfg.LLM.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", lc.Provider)
	assert.Equal(t, "sk-test", lc.OpenAI.APIKey)
	assert.Equal(t, "http://localhost:8080", lc.OpenAI.BaseURL)
	assert.Equal(t, cfg.LLM.Timeout, lc.Timeout)
	assert.NoError(t, lc.Validate())
}

func TestProviderConfigDiscover(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	_, ok := Default().LLM.ProviderConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "key")
	lc, ok := Default().LLM.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", lc.Provider)
}
