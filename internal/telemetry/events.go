package telemetry

import (
	"context"
	"errors"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/moa"
	"github.com/proposta-ai/propgen/internal/proposal"
)

// Event names.
const (
	EventGenerationSucceeded = "generation_succeeded"
	EventGenerationFailed    = "generation_failed"
)

// TrackGeneration records the outcome of one generation run. Only shape
// metadata is sent: sector, style, timing, and whether a fallback fired.
func TrackGeneration(c Client, sector, style string, timingMs int64, fallbackUsed bool, err error) {
	if c == nil {
		return
	}
	props := Properties{
		"sector":        sector,
		"style":         style,
		"timing_ms":     timingMs,
		"fallback_used": fallbackUsed,
	}
	if err != nil {
		props["error_type"] = errorType(err)
		c.Track(EventGenerationFailed, props)
		return
	}
	c.Track(EventGenerationSucceeded, props)
}

// errorType buckets errors coarsely so messages with client data never leave
// the process.
func errorType(err error) string {
	var verr *proposal.ValidationError
	switch {
	case errors.Is(err, agent.ErrAgentNotFound):
		return "agent_not_found"
	case errors.Is(err, moa.ErrAllModelsFailed):
		return "all_models_failed"
	case errors.As(err, &verr):
		return "validation_failed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "generation_error"
	}
}
