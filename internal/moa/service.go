// Package moa implements the mixture-of-agents completion strategy: several
// reference models answer the same prompt in parallel, then an aggregator
// model synthesizes their answers into a single response at a lower
// temperature.
package moa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/proposta-ai/propgen/internal/llm"
	"github.com/proposta-ai/propgen/prompts"
)

// ErrAllModelsFailed is returned when no reference model produced a usable
// answer. Partial reference failures are tolerated; total failure is not.
var ErrAllModelsFailed = errors.New("all reference models failed")

// Options tunes the mixture. Reference models explore at a normal
// temperature; the aggregator synthesizes at a lower one.
type Options struct {
	ReferenceTemperature  float32
	AggregatorTemperature float32
	MaxTokens             int
}

// Service runs the fan-out/aggregate cycle over a fixed set of clients. It
// is stateless between calls and safe for concurrent use.
type Service struct {
	references []*llm.ChatClient
	aggregator *llm.ChatClient
	opts       Options
}

// NewService builds a mixture over the given reference clients. The
// aggregator may be one of the references or a distinct client; when nil,
// the first reference doubles as aggregator.
func NewService(references []*llm.ChatClient, aggregator *llm.ChatClient, opts Options) (*Service, error) {
	if len(references) == 0 {
		return nil, errors.New("moa: at least one reference model required")
	}
	if aggregator == nil {
		aggregator = references[0]
	}
	return &Service{references: references, aggregator: aggregator, opts: opts}, nil
}

// ModelNames lists the reference model identifiers in declaration order.
func (s *Service) ModelNames() []string {
	names := make([]string, len(s.references))
	for i, ref := range s.references {
		names[i] = ref.ModelName()
	}
	return names
}

type answer struct {
	model string
	text  string
}

// Complete runs one mixture cycle and returns the aggregated text plus the
// names of the models that contributed. Reference failures are logged and
// dropped; only a total wipeout is an error. With a single surviving answer
// the aggregation step is skipped.
func (s *Service) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error) {
	answers := make([]answer, len(s.references))
	var mu sync.Mutex
	var ok int

	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range s.references {
		g.Go(func() error {
			text, err := ref.Complete(gctx, systemPrompt, userPrompt, llm.Sampling{
				Temperature: s.opts.ReferenceTemperature,
				MaxTokens:   s.opts.MaxTokens,
			})
			if err != nil {
				slog.Warn("reference model failed", "model", ref.ModelName(), "error", err)
				return nil
			}
			mu.Lock()
			answers[i] = answer{model: ref.ModelName(), text: text}
			ok++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", nil, err
	}

	if ok == 0 {
		return "", nil, fmt.Errorf("%w: %d references", ErrAllModelsFailed, len(s.references))
	}

	var survivors []answer
	for _, a := range answers {
		if a.text != "" {
			survivors = append(survivors, a)
		}
	}

	models := make([]string, 0, len(survivors)+1)
	for _, a := range survivors {
		models = append(models, a.model)
	}

	if len(survivors) == 1 {
		return survivors[0].text, models, nil
	}

	aggregated, err := s.aggregator.Complete(ctx,
		prompts.AggregatorSystemPrompt,
		aggregationPrompt(userPrompt, survivors),
		llm.Sampling{
			Temperature: s.opts.AggregatorTemperature,
			MaxTokens:   s.opts.MaxTokens,
		})
	if err != nil {
		return "", nil, fmt.Errorf("aggregate: %w", err)
	}
	models = append(models, s.aggregator.ModelName())
	return aggregated, models, nil
}

// aggregationPrompt lays out the original task followed by each reference
// answer so the aggregator can synthesize rather than pick.
func aggregationPrompt(userPrompt string, survivors []answer) string {
	var b strings.Builder
	b.WriteString("Tarefa original:\n")
	b.WriteString(userPrompt)
	b.WriteString("\n\nRespostas dos modelos de referência:\n")
	for i, a := range survivors {
		fmt.Fprintf(&b, "\n--- Resposta %d (%s) ---\n%s\n", i+1, a.model, a.text)
	}
	return b.String()
}
