package ports

import "context"

// SpanConfig carries options applied when starting a span.
type SpanConfig struct {
	// Attributes are key/value pairs attached to the span at start.
	Attributes map[string]string
}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// WithAttribute attaches a string attribute to the span.
func WithAttribute(key, value string) SpanOption {
	return func(cfg *SpanConfig) {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]string)
		}
		cfg.Attributes[key] = value
	}
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error on the span and marks it failed.
	RecordError(err error)
	// SetAttribute sets a string attribute on the span.
	SetAttribute(key, value string)
}

// Tracer creates spans around cache operations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a new span and returns a context carrying it.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
