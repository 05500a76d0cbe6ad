// Package tracing wraps OpenTelemetry so that callers of the shortid CLI can
// record generation batches as spans. Applications embedding the generator
// library do not need it.
package tracing
