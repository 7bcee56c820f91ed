package moa

import (
	"context"

	"github.com/proposta-ai/propgen/internal/llm"
)

// SingleModel adapts one chat client to the same completion contract the
// mixture exposes. It backs the simple generation tier, where no fan-out or
// aggregation happens.
type SingleModel struct {
	Client   *llm.ChatClient
	Sampling llm.Sampling
}

// Complete issues one plain completion.
func (s SingleModel) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, []string, error) {
	text, err := s.Client.Complete(ctx, systemPrompt, userPrompt, s.Sampling)
	if err != nil {
		return "", nil, err
	}
	return text, []string{s.Client.ModelName()}, nil
}
