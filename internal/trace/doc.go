// Package trace is the logging layer of kwclass.
//
// Every notable engine event (view rebuilt, keyword added or replaced, file
// classified) is a trace Event. Events are cheap to skip: the package-level
// Nop tracer drops everything and callers guard expensive formatting with
// Enabled or ShouldEmit.
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelPhase: CLI command and batch pass boundaries
//   - LevelDetail: per-file events and dialect view rebuilds
//   - LevelDebug: per-keyword registry events
//
// # Scopes
//
//   - ScopeDriver: top-level CLI operations
//   - ScopePass: a batch pass over many files
//   - ScopeFile: one input file or keyword file
//   - ScopeKeyword: one keyword (registry insert/overwrite)
//
// # Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//	span := trace.Begin(t, trace.ScopePass, "scan", 0)
//	defer span.End("")
package trace
