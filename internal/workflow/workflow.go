// Package workflow orchestrates one proposal generation: agent lookup,
// concurrent section generation, assembly, and validation.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/sections"
	"github.com/proposta-ai/propgen/internal/template"
	"github.com/proposta-ai/propgen/prompts"
)

// Result is the outcome of one successful generation run.
type Result struct {
	Proposal     *proposal.Proposal `json:"proposal"`
	TimingMs     int64              `json:"timingMs"`
	ModelsUsed   []string           `json:"modelsUsed"`
	FallbackUsed bool               `json:"fallbackUsed"`
}

// Orchestrator wires the agent registry and a completion backend into the
// section generators. It is stateless between runs and safe for concurrent
// use.
type Orchestrator struct {
	registry       agent.Registry
	completer      sections.Completer
	promptsDir     string
	sectionTimeout time.Duration
}

// New builds an orchestrator. promptsDir optionally points at prompt
// override files; empty means built-in prompts only. sectionTimeout bounds
// each section generator individually; zero means no per-section bound.
func New(registry agent.Registry, completer sections.Completer, promptsDir string, sectionTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		registry:       registry,
		completer:      completer,
		promptsDir:     promptsDir,
		sectionTimeout: sectionTimeout,
	}
}

// budget derives the per-section context. A stuck backend then burns one
// section's allowance, not the whole run's; the section falls back instead.
func (o *Orchestrator) budget(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.sectionTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, o.sectionTimeout)
}

// Run generates one proposal. The agent lookup failing is a hard stop; from
// there on every section is produced, by model or by fallback, and the
// assembled proposal must pass validation before anything is returned. A
// validation failure surfaces as *proposal.ValidationError, never as a
// partial proposal.
func (o *Orchestrator) Run(ctx context.Context, req proposal.Request) (*Result, error) {
	start := time.Now()
	req = req.Normalize()

	style := template.Style(req.TemplateType)
	contract, err := template.ForStyle(style)
	if err != nil {
		return nil, err
	}

	agentCfg, err := o.registry.Lookup(agent.Sector(req.SelectedService), style)
	if err != nil {
		return nil, err
	}

	planCount := contract.ClampPlanCount(req.SelectedPlans.Count)
	in := sections.Input{
		Request:    req,
		Agent:      agentCfg,
		Contract:   contract,
		PlanCount:  planCount,
		PlanLabels: req.SelectedPlans.Labels(planCount),
	}
	if o.promptsDir != "" {
		if sys, err := prompts.Get(prompts.Key(agentCfg.Sector), o.promptsDir); err == nil {
			in.SystemPrompt = sys
		} else {
			slog.Warn("prompt override unavailable, using built-in", "sector", agentCfg.Sector, "error", err)
		}
	}

	slog.Info("generating proposal",
		"sector", agentCfg.Sector, "style", style, "plans", planCount,
		"terms", req.IncludeTerms, "faq", req.IncludeFAQ)

	var (
		p        proposal.Proposal
		mu       sync.Mutex
		models   = map[string]struct{}{}
		fallback bool
	)
	record := func(out sections.Outcome) {
		mu.Lock()
		defer mu.Unlock()
		for _, m := range out.ModelsUsed {
			models[m] = struct{}{}
		}
		fallback = fallback || out.Fallback
	}

	// Each goroutine writes a distinct subtree of p; only the bookkeeping
	// needs the mutex.
	g, gctx := errgroup.WithContext(ctx)
	launch := func(fn func(ctx context.Context)) {
		g.Go(func() error {
			sctx, cancel := o.budget(gctx)
			defer cancel()
			fn(sctx)
			return nil
		})
	}

	launch(func(ctx context.Context) {
		intro, out := sections.Introduction(ctx, o.completer, in)
		p.Introduction = intro
		record(out)
	})
	launch(func(ctx context.Context) {
		about, out := sections.AboutUs(ctx, o.completer, in)
		p.AboutUs = about
		record(out)
	})
	launch(func(ctx context.Context) {
		team, out := sections.Team(ctx, o.completer, in)
		p.Team = team
		record(out)
	})
	launch(func(ctx context.Context) {
		specialties, out := sections.Specialties(ctx, o.completer, in)
		p.Specialties = specialties
		record(out)
	})
	launch(func(ctx context.Context) {
		steps, out := sections.Steps(ctx, o.completer, in)
		p.Steps = steps
		record(out)
	})
	launch(func(ctx context.Context) {
		inv, plans, out := sections.Investment(ctx, o.completer, in)
		p.Investment = inv
		p.Plans = plans
		record(out)
	})
	if req.IncludeTerms {
		launch(func(ctx context.Context) {
			terms, out := sections.TermsSection(ctx, o.completer, in)
			p.Terms = terms
			record(out)
		})
	}
	if req.IncludeFAQ {
		launch(func(ctx context.Context) {
			faq, out := sections.FAQSection(ctx, o.completer, in)
			p.FAQ = faq
			record(out)
		})
	}
	launch(func(ctx context.Context) {
		footer, out := sections.Footer(ctx, o.completer, in)
		p.Footer = footer
		record(out)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := proposal.Validate(&p, contract, planCount); err != nil {
		return nil, fmt.Errorf("generated proposal rejected: %w", err)
	}

	used := make([]string, 0, len(models))
	for m := range models {
		used = append(used, m)
	}
	sort.Strings(used)

	return &Result{
		Proposal:     &p,
		TimingMs:     time.Since(start).Milliseconds(),
		ModelsUsed:   used,
		FallbackUsed: fallback,
	}, nil
}
