// Package diag carries diagnostics between the formatting pipeline and the
// CLI. Stages report through the Reporter interface; a Bag collects, sorts,
// and deduplicates per-file findings. Every failure mode of the formatter has
// a distinct Code, so the CLI can always tell a broken input (lex/classify
// errors) from a formatter bug (semantic drift, lost idempotence).
package diag
