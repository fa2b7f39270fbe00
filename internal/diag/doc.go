// Package diag defines the diagnostic model shared by the DSL phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer, the rule/axiom parsers and the expression compiler.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Phases emit through a diag.Reporter; diag.BagReporter aggregates into a Bag,
// which supports sorting and limit enforcement. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
package diag
