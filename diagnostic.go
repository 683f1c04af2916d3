package sass

import (
	"fmt"
	"io"
)

// Diagnostic is one @warn/@debug/deprecation message surfaced during a
// compile (spec §4.5 "@warn/@debug emit a Diagnostic carrying the current
// call stack"). Session (session.go) collects these via a Logger instead of
// writing directly to stdout/stderr, matching the teacher's preference for
// an injectable sink over hardcoded output (daios-ai-msg/interpreter.go
// takes an io.Writer for its print builtins).
type DiagnosticKind int

const (
	DiagWarn DiagnosticKind = iota
	DiagDebug
	DiagDeprecation
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagWarn:
		return "warning"
	case DiagDebug:
		return "debug"
	case DiagDeprecation:
		return "deprecation"
	default:
		return "diagnostic"
	}
}

type Diagnostic struct {
	Kind      DiagnosticKind
	Message   string
	Span      SourceSpan
	Backtrace []BacktraceFrame
}

// Logger receives Diagnostics as they're emitted. Evaluator.Logger holds
// the sink; NewSession (session.go) takes the Logger from its caller and
// falls back to DiscardLogger when given nil, so a compile embedded in a
// long-running server doesn't have to go through os.Stderr.
type Logger interface {
	Log(Diagnostic)
}

// DiscardLogger drops every diagnostic; used by tests that only care about
// the compiled result.
type DiscardLogger struct{}

func (DiscardLogger) Log(Diagnostic) {}

// CollectingLogger appends every diagnostic to a slice, for tests that
// assert on @warn/@debug output without capturing os.Stderr.
type CollectingLogger struct {
	Entries []Diagnostic
}

func (c *CollectingLogger) Log(d Diagnostic) { c.Entries = append(c.Entries, d) }

// WriterLogger writes one formatted line per Diagnostic to W, the plain
// io.Writer sink spec §10.2 calls for (daios-ai-msg's own @warn/@debug
// equivalents write straight to an io.Writer rather than through a
// structured logging library; this module does the same). cmd/sassc wires
// one of these to os.Stderr by default and to io.Discard for --quiet-deps.
type WriterLogger struct {
	W io.Writer
}

func (w WriterLogger) Log(d Diagnostic) {
	if w.W == nil {
		return
	}
	if d.Span.Path != "" {
		fmt.Fprintf(w.W, "%s: %s\n  %s\n", d.Kind, d.Message, d.Span)
		return
	}
	fmt.Fprintf(w.W, "%s: %s\n", d.Kind, d.Message)
}
