package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposta-ai/propgen/internal/llm"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	v := newViper(t)

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, llm.DefaultProvider, s.LLM.Provider)
	assert.Equal(t, llm.DefaultOpenAIModel, s.LLM.Model)

	assert.True(t, s.MoA.Enabled)
	assert.Equal(t, DefaultReferenceTemperature, s.MoA.ReferenceTemperature)
	assert.Equal(t, DefaultAggregatorTemperature, s.MoA.AggregatorTemperature)
	assert.Equal(t, DefaultMaxTokens, s.MoA.MaxTokens)

	assert.Equal(t, DefaultSectionTimeout, s.Workflow.SectionTimeout)
	assert.Equal(t, DefaultProposalTimeout, s.Workflow.ProposalTimeout)
	assert.Equal(t, DefaultSimpleSectionTimeout, s.Workflow.SimpleSectionTimeout)
	assert.Equal(t, DefaultSimpleProposalTimeout, s.Workflow.SimpleProposalTimeout)

	assert.False(t, s.Telemetry.Enabled)
	assert.Empty(t, s.AgentsFile)
}

func TestLoadExplicitValuesWin(t *testing.T) {
	v := newViper(t)
	v.Set("llm.provider", "ollama")
	v.Set("llm.model", "qwen2.5")
	v.Set("moa.enabled", false)
	v.Set("workflow.proposalTimeout", "30s")
	v.Set("agents.file", "agents.yaml")

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderOllama, s.LLM.Provider)
	assert.Equal(t, "qwen2.5", s.LLM.Model)
	assert.Equal(t, llm.DefaultOllamaURL, s.LLM.BaseURL)
	assert.False(t, s.MoA.Enabled)
	assert.Equal(t, "30s", s.Workflow.ProposalTimeout.String())
	assert.Equal(t, "agents.yaml", s.AgentsFile)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	v := newViper(t)
	v.Set("llm.provider", "bedrock")

	_, err := Load(v)
	require.Error(t, err)
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	v := newViper(t)
	t.Setenv("OPENAI_API_KEY", "from-env")

	// Env var when nothing is configured.
	assert.Equal(t, "from-env", ResolveAPIKey(v, llm.ProviderOpenAI))

	// The legacy single-key entry applies to OpenAI only.
	v.Set("llm.apiKey", "legacy")
	assert.Equal(t, "legacy", ResolveAPIKey(v, llm.ProviderOpenAI))
	assert.Empty(t, ResolveAPIKey(v, llm.ProviderAnthropic))

	// The per-provider entry beats everything.
	v.Set("llm.apiKeys.openai", "per-provider")
	assert.Equal(t, "per-provider", ResolveAPIKey(v, llm.ProviderOpenAI))
}

func TestResolveAPIKeyGeminiFallsBackToGoogleEnv(t *testing.T) {
	v := newViper(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	assert.Equal(t, "google-key", ResolveAPIKey(v, llm.ProviderGemini))
}

func TestReferenceConfigsFallBackToPrimary(t *testing.T) {
	v := newViper(t)
	s, err := Load(v)
	require.NoError(t, err)

	configs := ReferenceConfigs(v, s)
	require.Len(t, configs, 1)
	assert.Equal(t, s.LLM, configs[0])
}

func TestReferenceConfigsExpandDeclaredModels(t *testing.T) {
	v := newViper(t)
	v.Set("moa.referenceModels", []map[string]any{
		{"provider": "openai", "model": "gpt-4o-mini"},
		{"provider": "ollama"},
		{"provider": "bedrock", "model": "ignored"},
	})

	s, err := Load(v)
	require.NoError(t, err)

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	configs := ReferenceConfigs(v, s)
	require.Len(t, configs, 2)
	assert.Equal(t, "gpt-4o-mini", configs[0].Model)
	assert.Equal(t, llm.ProviderOllama, configs[1].Provider)
	assert.Equal(t, llm.DefaultOllamaModel, configs[1].Model)
	assert.Equal(t, llm.DefaultOllamaURL, configs[1].BaseURL)

	// A misconfigured mixture shrinks loudly, not silently.
	assert.Contains(t, logs.String(), "bedrock")
}
