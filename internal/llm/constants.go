package llm

// Provider identifies the chat-model backend to use.
type Provider string

const (
	// DefaultProvider is used when configuration names none.
	DefaultProvider = ProviderOpenAI

	// ProviderOpenAI represents the OpenAI provider.
	ProviderOpenAI Provider = "openai"

	// ProviderAnthropic represents the Anthropic provider.
	ProviderAnthropic Provider = "anthropic"

	// ProviderGemini represents the Google Gemini provider.
	ProviderGemini Provider = "gemini"

	// ProviderOllama represents a local Ollama server.
	ProviderOllama Provider = "ollama"
)

// DefaultOllamaURL is the default URL for an Ollama server.
const DefaultOllamaURL = "http://localhost:11434"

// Default chat models per provider.
const (
	DefaultOpenAIModel    = "gpt-4o"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultOllamaModel    = "llama3.1"
)

// DefaultModelForProvider returns the default chat model for a provider.
func DefaultModelForProvider(p Provider) string {
	switch p {
	case ProviderAnthropic:
		return DefaultAnthropicModel
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOllama:
		return DefaultOllamaModel
	default:
		return DefaultOpenAIModel
	}
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	switch Provider(p) {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderOllama:
		return Provider(p), nil
	default:
		return "", errUnsupportedProvider(p)
	}
}
