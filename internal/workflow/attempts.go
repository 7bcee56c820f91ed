package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Attempt is one tier of a generation strategy: a name for logs, a time
// budget, and the run to perform under it.
type Attempt struct {
	Name    string
	Timeout time.Duration
	Run     func(ctx context.Context) (*Result, error)
}

// AttemptSequence is an ordered list of generation tiers. Tiers are tried in
// declaration order and the first success wins; the caller composes, for
// example, a full mixture tier followed by a cheaper single-model tier.
type AttemptSequence []Attempt

// Execute runs the sequence. Each attempt gets its own deadline carved out
// of the parent context; once the parent expires no further attempts start.
// When every tier fails the joined errors are returned.
func (s AttemptSequence) Execute(ctx context.Context) (*Result, error) {
	if len(s) == 0 {
		return nil, errors.New("no generation attempts configured")
	}

	var errs []error
	for _, attempt := range s {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if attempt.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, attempt.Timeout)
		}

		res, err := attempt.Run(attemptCtx)
		cancel()
		if err == nil {
			return res, nil
		}
		slog.Warn("generation attempt failed", "attempt", attempt.Name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", attempt.Name, err))
	}

	return nil, fmt.Errorf("all generation attempts failed: %w", errors.Join(errs...))
}
