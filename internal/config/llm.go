package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/proposta-ai/propgen/internal/llm"
)

// LoadLLMConfig resolves the primary provider configuration. Precedence is
// explicit config > environment variables > defaults. It does not error on a
// missing API key: Ollama needs none, and the CLI layer reports the problem
// with a better message than a loader could.
func LoadLLMConfig(v *viper.Viper) (llm.Config, error) {
	provider := v.GetString("llm.provider")
	if provider == "" {
		provider = string(llm.DefaultProvider)
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	model := v.GetString("llm.model")
	if model == "" {
		model = llm.DefaultModelForProvider(llmProvider)
	}

	apiKey := ResolveAPIKey(v, llmProvider)

	baseURL := v.GetString("llm.baseURL")
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	return llm.Config{
		Provider: llmProvider,
		Model:    model,
		APIKey:   apiKey,
		BaseURL:  baseURL,
	}, nil
}

// ResolveAPIKey returns the best API key for a provider: the per-provider
// config key (llm.apiKeys.<provider>), then the provider-specific env var,
// then the legacy single-key config entry for OpenAI only.
func ResolveAPIKey(v *viper.Viper, provider llm.Provider) string {
	keyFromViper := func(path string) string {
		if v.IsSet(path) {
			return strings.TrimSpace(v.GetString(path))
		}
		return ""
	}

	if key := keyFromViper(fmt.Sprintf("llm.apiKeys.%s", provider)); key != "" {
		return key
	}

	envKey := providerEnvKey(provider)

	if provider == llm.ProviderOpenAI {
		if legacy := keyFromViper("llm.apiKey"); legacy != "" {
			return legacy
		}
	}
	return envKey
}

func providerEnvKey(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case llm.ProviderAnthropic:
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	case llm.ProviderGemini:
		key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if key == "" {
			key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
		}
		return key
	default:
		return ""
	}
}

// ReferenceConfigs expands the configured mixture references into concrete
// provider configs, falling back to the primary model alone when none are
// declared.
func ReferenceConfigs(v *viper.Viper, s *Settings) []llm.Config {
	if len(s.MoA.ReferenceModels) == 0 {
		return []llm.Config{s.LLM}
	}
	configs := make([]llm.Config, 0, len(s.MoA.ReferenceModels))
	for _, ref := range s.MoA.ReferenceModels {
		p, err := llm.ValidateProvider(ref.Provider)
		if err != nil {
			slog.Warn("skipping reference model with unknown provider",
				"provider", ref.Provider, "model", ref.Model)
			continue
		}
		model := ref.Model
		if model == "" {
			model = llm.DefaultModelForProvider(p)
		}
		cfg := llm.Config{Provider: p, Model: model, APIKey: ResolveAPIKey(v, p)}
		if p == llm.ProviderOllama {
			cfg.BaseURL = v.GetString("llm.baseURL")
			if cfg.BaseURL == "" {
				cfg.BaseURL = llm.DefaultOllamaURL
			}
		}
		configs = append(configs, cfg)
	}
	if len(configs) == 0 {
		return []llm.Config{s.LLM}
	}
	return configs
}
