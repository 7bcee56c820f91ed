// Package sections holds one generator per proposal section. Every generator
// follows the same cycle: compile the section prompt, call the model layer,
// extract typed JSON, shape the draft into its final form, and fall back to a
// deterministic agent-derived section when the model path fails. Generators
// never return errors; a section is always produced.
package sections

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/jsonx"
	"github.com/proposta-ai/propgen/internal/prompt"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/template"
)

// Completer produces one completion for a prompt pair and reports which
// models contributed. Both the mixture service and the single-model adapter
// satisfy it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error)
}

// Input is the shared, read-only context of one generation request.
type Input struct {
	Request  proposal.Request
	Agent    *agent.Config
	Contract *template.Contract

	// PlanCount is the requested plan count, already clamped into the
	// contract's range. PlanLabels has exactly PlanCount entries.
	PlanCount  int
	PlanLabels []string

	// SystemPrompt overrides the agent's built-in system prompt when a
	// deployment ships prompt files. Empty means use the agent's own.
	SystemPrompt string
}

// Outcome reports how a section was produced.
type Outcome struct {
	ModelsUsed []string
	Fallback   bool
}

func (in Input) systemPrompt() string {
	if in.SystemPrompt != "" {
		return in.SystemPrompt
	}
	return in.Agent.SystemPrompt
}

// fields renders every prompt placeholder the contracts use. Unused entries
// cost nothing; the compiler only substitutes what the template names.
func (in Input) fields() map[string]string {
	return map[string]string{
		"clientName":          in.Request.ClientName,
		"projectName":         in.Request.ProjectName,
		"projectDescription":  in.Request.ProjectDescription,
		"companyInfo":         in.Request.CompanyInfo,
		"planDetails":         in.Request.PlanDetails,
		"sectorName":          string(in.Agent.Sector),
		"planCount":           strconv.Itoa(in.PlanCount),
		"selectedPlans":       prompt.JoinList(in.PlanLabels),
		"pricingModel":        string(in.Agent.PricingModel),
		"expertise":           prompt.JoinList(in.Agent.Expertise),
		"proposalStructure":   prompt.JoinList(in.Agent.ProposalStructure),
		"keyTerms":            joinTerms(in.Agent.KeyTerms),
		"introductionStyle":   in.Agent.Profile.IntroductionStyle,
		"aboutUsFocus":        in.Agent.Profile.AboutUsFocus,
		"specialtiesApproach": in.Agent.Profile.SpecialtiesApproach,
		"processEmphasis":     in.Agent.Profile.ProcessEmphasis,
		"investmentStrategy":  in.Agent.Profile.InvestmentStrategy,
	}
}

func joinTerms(terms map[string]string) string {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+terms[k])
	}
	return strings.Join(parts, "; ")
}

// run drives the model path of one section: compile, call, extract. The
// caller decides between the shaped draft and the fallback based on err.
func run[T any](ctx context.Context, c Completer, in Input, section template.Section, spec template.SectionSpec) (T, []string, error) {
	var zero T

	userPrompt := prompt.Compile(spec.Prompt, in.fields())
	raw, models, err := c.Complete(ctx, in.systemPrompt(), userPrompt)
	if err != nil {
		slog.Warn("section completion failed", "section", section, "error", err)
		return zero, models, err
	}

	dto, err := jsonx.Extract[T](raw)
	if err != nil {
		slog.Warn("section JSON extraction failed", "section", section, "error", err)
		return zero, models, err
	}
	return dto, models, nil
}
