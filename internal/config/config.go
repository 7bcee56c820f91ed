// Package config centralizes runtime configuration: provider credentials,
// mixture settings, workflow timeout budgets, and telemetry consent. All
// defaults live here so there is a single source of truth.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/proposta-ai/propgen/internal/llm"
)

// Workflow timeout defaults. The full pipeline runs against the proposal
// budget; each section additionally races its own budget so one stuck
// provider cannot eat the whole allowance.
const (
	DefaultSectionTimeout  = 45 * time.Second
	DefaultProposalTimeout = 150 * time.Second

	// The simple (single-model) tier answers faster and gets tighter budgets.
	DefaultSimpleSectionTimeout  = 20 * time.Second
	DefaultSimpleProposalTimeout = 60 * time.Second
)

// Mixture defaults. Reference models explore at a normal temperature; the
// aggregator synthesizes at a lower one.
const (
	DefaultReferenceTemperature  float32 = 0.7
	DefaultAggregatorTemperature float32 = 0.3
	DefaultMaxTokens                     = 4096
)

// ModelRef names one reference model of the mixture.
type ModelRef struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

// MoAConfig configures the mixture-of-agents layer.
type MoAConfig struct {
	Enabled               bool       `mapstructure:"enabled"`
	ReferenceModels       []ModelRef `mapstructure:"referenceModels"`
	ReferenceTemperature  float32    `mapstructure:"referenceTemperature"`
	AggregatorTemperature float32    `mapstructure:"aggregatorTemperature"`
	MaxTokens             int        `mapstructure:"maxTokens"`
}

// WorkflowConfig carries the timeout budgets of the two generation tiers.
type WorkflowConfig struct {
	SectionTimeout        time.Duration `mapstructure:"sectionTimeout"`
	ProposalTimeout       time.Duration `mapstructure:"proposalTimeout"`
	SimpleSectionTimeout  time.Duration `mapstructure:"simpleSectionTimeout"`
	SimpleProposalTimeout time.Duration `mapstructure:"simpleProposalTimeout"`
}

// TelemetryConfig configures the opt-in usage telemetry.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	APIKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint"`
}

// Settings is the fully-resolved runtime configuration.
type Settings struct {
	LLM       llm.Config
	MoA       MoAConfig
	Workflow  WorkflowConfig
	Telemetry TelemetryConfig

	// AgentsFile optionally points at a YAML agent catalog that overrides
	// the built-in one.
	AgentsFile string

	// PromptsDir optionally points at a directory of prompt override files.
	PromptsDir string
}

// SetDefaults registers every default on the given viper instance. Call it
// once at CLI init, before config files and env vars are read.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", string(llm.DefaultProvider))

	v.SetDefault("moa.enabled", true)
	v.SetDefault("moa.referenceTemperature", DefaultReferenceTemperature)
	v.SetDefault("moa.aggregatorTemperature", DefaultAggregatorTemperature)
	v.SetDefault("moa.maxTokens", DefaultMaxTokens)

	v.SetDefault("workflow.sectionTimeout", DefaultSectionTimeout)
	v.SetDefault("workflow.proposalTimeout", DefaultProposalTimeout)
	v.SetDefault("workflow.simpleSectionTimeout", DefaultSimpleSectionTimeout)
	v.SetDefault("workflow.simpleProposalTimeout", DefaultSimpleProposalTimeout)

	v.SetDefault("telemetry.enabled", false)
}

// Load resolves the full settings from the given viper instance. Precedence
// is explicit config > environment variables > defaults.
func Load(v *viper.Viper) (*Settings, error) {
	llmCfg, err := LoadLLMConfig(v)
	if err != nil {
		return nil, err
	}

	var moa MoAConfig
	if err := v.UnmarshalKey("moa", &moa); err != nil {
		return nil, err
	}
	if moa.ReferenceTemperature <= 0 {
		moa.ReferenceTemperature = DefaultReferenceTemperature
	}
	if moa.AggregatorTemperature <= 0 {
		moa.AggregatorTemperature = DefaultAggregatorTemperature
	}
	if moa.MaxTokens <= 0 {
		moa.MaxTokens = DefaultMaxTokens
	}

	var wf WorkflowConfig
	if err := v.UnmarshalKey("workflow", &wf); err != nil {
		return nil, err
	}
	if wf.SectionTimeout <= 0 {
		wf.SectionTimeout = DefaultSectionTimeout
	}
	if wf.ProposalTimeout <= 0 {
		wf.ProposalTimeout = DefaultProposalTimeout
	}
	if wf.SimpleSectionTimeout <= 0 {
		wf.SimpleSectionTimeout = DefaultSimpleSectionTimeout
	}
	if wf.SimpleProposalTimeout <= 0 {
		wf.SimpleProposalTimeout = DefaultSimpleProposalTimeout
	}

	var tel TelemetryConfig
	if err := v.UnmarshalKey("telemetry", &tel); err != nil {
		return nil, err
	}

	return &Settings{
		LLM:        llmCfg,
		MoA:        moa,
		Workflow:   wf,
		Telemetry:  tel,
		AgentsFile: v.GetString("agents.file"),
		PromptsDir: v.GetString("prompts.dir"),
	}, nil
}
