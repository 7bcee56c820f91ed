package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/config"
	"github.com/proposta-ai/propgen/internal/llm"
	"github.com/proposta-ai/propgen/internal/moa"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/telemetry"
	"github.com/proposta-ai/propgen/internal/workflow"
)

// stack is the assembled generation pipeline the commands run against.
type stack struct {
	settings  *config.Settings
	registry  agent.Registry
	mixture   *workflow.Orchestrator
	simple    *workflow.Orchestrator
	telemetry telemetry.Client
	close     func()
}

// buildStack resolves configuration into a ready pipeline: agent registry
// (built-in or file-backed with hot reload), chat clients for every
// configured reference model, the mixture service, and both orchestrator
// tiers.
func buildStack(ctx context.Context) (*stack, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	registry, closeRegistry, err := buildRegistry(ctx, settings)
	if err != nil {
		return nil, err
	}

	refConfigs := config.ReferenceConfigs(viper.GetViper(), settings)
	references := make([]*llm.ChatClient, 0, len(refConfigs))
	for _, cfg := range refConfigs {
		m, err := llm.NewChatModel(ctx, cfg)
		if err != nil {
			closeRegistry()
			return nil, fmt.Errorf("reference model %s/%s: %w", cfg.Provider, cfg.Model, err)
		}
		references = append(references, llm.NewChatClient(m, cfg.Model))
	}

	primaryModel, err := llm.NewChatModel(ctx, settings.LLM)
	if err != nil {
		closeRegistry()
		return nil, fmt.Errorf("primary model %s/%s: %w", settings.LLM.Provider, settings.LLM.Model, err)
	}
	primary := llm.NewChatClient(primaryModel, settings.LLM.Model)

	mixture, err := moa.NewService(references, primary, moa.Options{
		ReferenceTemperature:  settings.MoA.ReferenceTemperature,
		AggregatorTemperature: settings.MoA.AggregatorTemperature,
		MaxTokens:             settings.MoA.MaxTokens,
	})
	if err != nil {
		closeRegistry()
		return nil, err
	}
	single := moa.SingleModel{
		Client:   primary,
		Sampling: llm.Sampling{Temperature: settings.MoA.ReferenceTemperature, MaxTokens: settings.MoA.MaxTokens},
	}

	tel, err := telemetry.NewPostHogClient(telemetryAPIKey(settings), settings.Telemetry.Endpoint, version)
	if err != nil {
		closeRegistry()
		return nil, err
	}

	return &stack{
		settings:  settings,
		registry:  registry,
		mixture:   workflow.New(registry, mixture, settings.PromptsDir, settings.Workflow.SectionTimeout),
		simple:    workflow.New(registry, single, settings.PromptsDir, settings.Workflow.SimpleSectionTimeout),
		telemetry: tel,
		close: func() {
			_ = tel.Close()
			closeRegistry()
		},
	}, nil
}

func buildRegistry(ctx context.Context, settings *config.Settings) (agent.Registry, func(), error) {
	if settings.AgentsFile == "" {
		return agent.DefaultRegistry(), func() {}, nil
	}
	watcher, err := agent.NewWatcher(afero.NewOsFs(), settings.AgentsFile)
	if err != nil {
		return nil, nil, err
	}
	go watcher.Run(ctx)
	return watcher, func() { _ = watcher.Close() }, nil
}

func telemetryAPIKey(settings *config.Settings) string {
	if !settings.Telemetry.Enabled {
		return ""
	}
	return settings.Telemetry.APIKey
}

// generate runs the two-tier attempt sequence for one request and reports
// the outcome to telemetry.
func (s *stack) generate(ctx context.Context, req proposal.Request) (*workflow.Result, error) {
	var attempts workflow.AttemptSequence
	if s.settings.MoA.Enabled {
		attempts = append(attempts, workflow.Attempt{
			Name:    "mixture",
			Timeout: s.settings.Workflow.ProposalTimeout,
			Run: func(ctx context.Context) (*workflow.Result, error) {
				return s.mixture.Run(ctx, req)
			},
		})
	}
	attempts = append(attempts, workflow.Attempt{
		Name:    "single-model",
		Timeout: s.settings.Workflow.SimpleProposalTimeout,
		Run: func(ctx context.Context) (*workflow.Result, error) {
			return s.simple.Run(ctx, req)
		},
	})

	res, err := attempts.Execute(ctx)
	if err != nil {
		telemetry.TrackGeneration(s.telemetry, req.SelectedService, req.TemplateType, 0, false, err)
		return nil, err
	}
	telemetry.TrackGeneration(s.telemetry, req.SelectedService, req.TemplateType, res.TimingMs, res.FallbackUsed, nil)
	return res, nil
}
