package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attempt ties together the span and the metrics for a single authentication
// pass, so the middleware records both from one place.
type Attempt struct {
	RequestID string
	StartTime time.Time
	Metrics   *AuthMetrics

	span trace.Span
}

// StartAttempt opens a span for one authentication pass and counts the
// request. If metrics is nil, metric recording is silently skipped.
func StartAttempt(ctx context.Context, requestID string, metrics *AuthMetrics) (context.Context, *Attempt) {
	a := &Attempt{
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}

	ctx, a.span = StartSpan(ctx, SpanAuthenticate)
	if requestID != "" {
		a.span.SetAttributes(attribute.String(AttrRequestID, requestID))
	}

	if a.Metrics != nil {
		a.Metrics.RecordRequest(ctx)
	}
	return ctx, a
}

// Selected ends the attempt for a request that matched a scheme and carried a
// valid token.
func (a *Attempt) Selected(ctx context.Context, scheme, subject string) {
	duration := time.Since(a.StartTime)

	a.span.SetAttributes(
		attribute.String(AttrScheme, scheme),
		attribute.String(AttrOutcome, OutcomeAuthenticated),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	if subject != "" {
		a.span.SetAttributes(attribute.String(AttrSubject, subject))
	}
	a.span.End()

	if a.Metrics != nil {
		a.Metrics.RecordSelected(ctx, scheme, duration)
	}
}

// Rejected ends the attempt for a request that matched a scheme but failed
// verification.
func (a *Attempt) Rejected(ctx context.Context, scheme, reason string, err error) {
	duration := time.Since(a.StartTime)

	if err != nil {
		a.span.RecordError(err)
		a.span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}
	a.span.SetAttributes(
		attribute.String(AttrScheme, scheme),
		attribute.String(AttrOutcome, OutcomeRejected),
		attribute.String(AttrRejectReason, reason),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	a.span.End()

	if a.Metrics != nil {
		a.Metrics.RecordRejected(ctx, scheme, reason, duration)
	}
}

// Anonymous ends the attempt for a request no scheme claimed.
func (a *Attempt) Anonymous() {
	a.span.SetAttributes(
		attribute.String(AttrOutcome, OutcomeAnonymous),
		attribute.Int64(AttrDurationMs, time.Since(a.StartTime).Milliseconds()),
	)
	a.span.End()
}

// Duration returns the elapsed time since the attempt started.
func (a *Attempt) Duration() time.Duration {
	return time.Since(a.StartTime)
}
