package moa

import (
	"context"
	"log/slog"
	"time"

	"github.com/proposta-ai/propgen/internal/jsonx"
)

// retryBaseDelay is the unit of the linear backoff between attempts.
const retryBaseDelay = time.Second

// Result carries the outcome of a typed generation: either a decoded value
// or the error that stopped it, plus the timing and attribution the caller
// reports upstream.
type Result[T any] struct {
	OK         bool
	Value      T
	Err        error
	Attempts   int
	ElapsedMs  int64
	ModelsUsed []string
}

// Generate runs one mixture cycle and decodes the aggregated answer into T.
// Decode failures go through the JSON repair pipeline before giving up.
func Generate[T any](ctx context.Context, s *Service, systemPrompt, userPrompt string) Result[T] {
	start := time.Now()
	res := Result[T]{Attempts: 1}

	raw, models, err := s.Complete(ctx, systemPrompt, userPrompt)
	res.ModelsUsed = models
	res.ElapsedMs = time.Since(start).Milliseconds()
	if err != nil {
		res.Err = err
		return res
	}

	value, err := jsonx.Extract[T](raw)
	if err != nil {
		res.Err = err
		return res
	}
	res.OK = true
	res.Value = value
	return res
}

// GenerateWithRetry retries Generate up to maxAttempts times with linear
// backoff, keeping the cumulative attempt count and elapsed time. It stops
// early when the context expires.
func GenerateWithRetry[T any](ctx context.Context, s *Service, systemPrompt, userPrompt string, maxAttempts int) Result[T] {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	start := time.Now()

	var res Result[T]
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res = Generate[T](ctx, s, systemPrompt, userPrompt)
		res.Attempts = attempt
		if res.OK {
			break
		}
		if ctx.Err() != nil || attempt == maxAttempts {
			break
		}
		delay := time.Duration(attempt) * retryBaseDelay
		slog.Debug("generation attempt failed, retrying",
			"attempt", attempt, "delay", delay, "error", res.Err)
		select {
		case <-ctx.Done():
			res.Err = ctx.Err()
			res.ElapsedMs = time.Since(start).Milliseconds()
			return res
		case <-time.After(delay):
		}
	}
	res.ElapsedMs = time.Since(start).Milliseconds()
	return res
}
