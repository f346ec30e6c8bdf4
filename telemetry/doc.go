// Package telemetry exposes the counters spec.md §6 requires from the
// distillation driver — pattern_count() and rewiring_count() — as
// Prometheus metrics, in the style jinterlante1206's trace/graph package
// registers its own query counters: package-level promauto constructors
// backing a small accessor type, so a caller with no Prometheus registry
// configured still gets working in-memory counters for free.
package telemetry
