package observability

import (
	"context"
	"net/http"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps X-Ray segment handling behind a small surface so callers
// never import the SDK directly
type Tracer struct {
	enabled bool
	service string
}

// NewTracer creates a tracer for the named service. When disabled it is a
// no-op.
func NewTracer(service string, enabled bool) *Tracer {
	return &Tracer{
		enabled: enabled,
		service: service,
	}
}

// StartSegment opens a subsegment around an operation. The returned function
// closes it and must be called with the operation's error.
func (t *Tracer) StartSegment(ctx context.Context, name string) (context.Context, func(error)) {
	if !t.enabled {
		return ctx, func(error) {}
	}

	ctx, seg := xray.BeginSubsegment(ctx, name)
	if seg == nil {
		return ctx, func(error) {}
	}
	return ctx, func(err error) {
		seg.Close(err)
	}
}

// Middleware traces inbound HTTP requests
func (t *Tracer) Middleware(next http.Handler) http.Handler {
	if !t.enabled {
		return next
	}
	return xray.Handler(xray.NewFixedSegmentNamer(t.service), next)
}
