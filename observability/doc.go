// Package observability provides OpenTelemetry tracing and metrics for the
// authentication middleware, plus a small health model for services that
// embed it.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewAuthMetrics(observability.Meter("my-service"))
//
// An AuthMetrics handed to middleware.WithMetrics records one counter bump
// per request, per selected scheme and per rejection, and a verification
// duration histogram. Attempt ties the span and the metrics for a single
// authentication pass together so the middleware records both consistently.
package observability
