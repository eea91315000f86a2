package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopneuma/autopneuma-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "autopneuma-api", cfg.ServiceName)
	assert.Equal(t, 8100, cfg.HTTPPort)
	assert.Equal(t, ":8100", cfg.Addr())
	assert.Equal(t, 0.7, cfg.ModerationThreshold)
	assert.Equal(t, "ESV", cfg.DefaultBibleVersion)
	assert.True(t, cfg.EnableModeration)
	assert.True(t, cfg.EnableScriptureAssistant)
	assert.True(t, cfg.EnableCommunityTools)
	assert.Contains(t, cfg.CORSAllowedOrigins, "https://autopneuma.com")
}

func TestLoad_RequiresAPIKeyWhenAIEnabled(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_NoAPIKeyNeededWhenAIDisabled(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ENABLE_AI_MODERATION", "false")
	t.Setenv("ENABLE_SCRIPTURE_ASSISTANT", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.EnableModeration)
}

func TestLoad_RejectsThresholdOutOfRange(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MODERATION_CONFIDENCE_THRESHOLD", "1.5")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MODERATION_CONFIDENCE_THRESHOLD")
}

func TestLoad_SplitsCORSOrigins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}
