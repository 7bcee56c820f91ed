package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ErrRateLimited classifies a backend rate-limit rejection.
var ErrRateLimited = errors.New("rate limited")

// ErrEmptyCompletion is returned when the backend answers with no content.
var ErrEmptyCompletion = errors.New("empty completion")

// rateLimitRetryDelay is the fixed backoff before the single retry after a
// rate-limit signal.
const rateLimitRetryDelay = 3 * time.Second

// Sampling carries the per-call sampling configuration.
type Sampling struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// ChatClient is a thin completion wrapper around one chat model. It adds the
// rate-limit retry policy on top of the raw Generate call; every other
// backend error propagates unchanged.
type ChatClient struct {
	model model.BaseChatModel
	name  string
	sleep func(context.Context, time.Duration) error
}

// NewChatClient wraps a chat model. name identifies the model in workflow
// results and logs.
func NewChatClient(m model.BaseChatModel, name string) *ChatClient {
	return &ChatClient{model: m, name: name, sleep: sleepContext}
}

// sleepContext waits for d unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ModelName returns the identifier the client was created with.
func (c *ChatClient) ModelName() string {
	return c.name
}

// Complete issues one chat completion with the given system and user prompts
// and returns the raw response text. On a rate-limit signal it performs
// exactly one retry after a fixed delay before surfacing the error.
func (c *ChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string, s Sampling) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}

	opts := samplingOptions(s)

	resp, err := c.model.Generate(ctx, messages, opts...)
	if err != nil && isRateLimit(err) {
		slog.Debug("rate limited, retrying once", "model", c.name, "delay", rateLimitRetryDelay)
		if err := c.sleep(ctx, rateLimitRetryDelay); err != nil {
			return "", err
		}
		resp, err = c.model.Generate(ctx, messages, opts...)
		if err != nil && isRateLimit(err) {
			return "", fmt.Errorf("%w: %s: %v", ErrRateLimited, c.name, err)
		}
	}
	if err != nil {
		return "", fmt.Errorf("generate (%s): %w", c.name, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyCompletion, c.name)
	}
	return resp.Content, nil
}

func samplingOptions(s Sampling) []model.Option {
	var opts []model.Option
	if s.Temperature > 0 {
		opts = append(opts, model.WithTemperature(s.Temperature))
	}
	if s.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(s.MaxTokens))
	}
	if s.TopP > 0 {
		opts = append(opts, model.WithTopP(s.TopP))
	}
	return opts
}

// isRateLimit classifies backend errors that indicate throttling. Providers
// disagree on error shapes, so this falls back to message sniffing.
func isRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "too many requests") ||
		strings.Contains(msg, "429")
}
