// Package telemetry sends anonymous, opt-in usage events. Events carry
// timings and outcome flags, never proposal content or client names.
package telemetry

import (
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

// Client is the telemetry contract. The no-op implementation backs disabled
// deployments and tests.
type Client interface {
	// Track sends an event asynchronously; it never blocks.
	Track(event string, properties map[string]any)

	// Close flushes pending events.
	Close() error
}

// Properties aliases the event property bag.
type Properties = map[string]any

// enqueuer is the slice of the PostHog SDK we depend on; tests substitute
// their own.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

// PostHogClient ships events to PostHog with a short-lived batch queue
// sized for CLI processes.
type PostHogClient struct {
	client      enqueuer
	anonymousID string
	version     string
}

// NewPostHogClient builds a telemetry client. An empty API key yields a
// no-op client so callers never branch on configuration.
func NewPostHogClient(apiKey, endpoint, version string) (Client, error) {
	if apiKey == "" {
		return NewNoopClient(), nil
	}

	cfg := posthog.Config{
		BatchSize: 10,
		Interval:  time.Second,
		// Transport noise must never reach CLI output.
		Logger: quietLogger{},
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	client, err := posthog.NewWithConfig(apiKey, cfg)
	if err != nil {
		return nil, err
	}
	return &PostHogClient{
		client:      client,
		anonymousID: uuid.NewString(),
		version:     version,
	}, nil
}

// Track implements Client.
func (c *PostHogClient) Track(event string, properties map[string]any) {
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	props.Set("os", runtime.GOOS)
	props.Set("arch", runtime.GOARCH)
	props.Set("version", c.version)
	// No person profiles: events stay anonymous.
	props.Set("$process_person_profile", false)

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.anonymousID,
		Event:      event,
		Properties: props,
	})
}

// Close implements Client.
func (c *PostHogClient) Close() error {
	return c.client.Close()
}

// NoopClient discards every event.
type NoopClient struct{}

// NewNoopClient returns a client that does nothing.
func NewNoopClient() *NoopClient { return &NoopClient{} }

func (*NoopClient) Track(string, map[string]any) {}
func (*NoopClient) Close() error                 { return nil }

type quietLogger struct{}

func (quietLogger) Debugf(string, ...interface{}) {}
func (quietLogger) Logf(string, ...interface{})   {}
func (quietLogger) Warnf(string, ...interface{})  {}
func (quietLogger) Errorf(string, ...interface{}) {}
