package sass

import (
	"fmt"
	"strings"
)

// ErrorKind enumerates the typed error taxonomy of spec §4.7's table,
// supplemented with a handful of module-system kinds (spec §4.2 names the
// failure conditions in prose rather than in a table) and UndefinedName for
// unresolved variable/function/mixin lookups, which §4.7 leaves implicit in
// "UndefinedOperation".
type ErrorKind int

const (
	InvalidSyntax ErrorKind = iota
	InvalidArgumentType
	MissingArgument
	InvalidVarKwdType
	DuplicateKey
	ZeroDivision
	IncompatibleUnits
	UndefinedOperation
	InvalidNullOperation
	StackError
	InvalidParent
	TopLevelParent
	UnsatisfiedExtend
	ExtendAcrossMedia
	UndefinedName

	// Module-system kinds (spec §4.2), not part of the §4.7 table.
	ModuleCycle
	ModuleNotFound
	ReconfigureAfterUse
	UnknownWithConfigKey

	UserError // raised by an explicit @error
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSyntax:
		return "invalid syntax"
	case InvalidArgumentType:
		return "invalid argument type"
	case MissingArgument:
		return "missing argument"
	case InvalidVarKwdType:
		return "invalid keyword-rest map"
	case DuplicateKey:
		return "duplicate key"
	case ZeroDivision:
		return "division by zero"
	case IncompatibleUnits:
		return "incompatible units"
	case UndefinedOperation:
		return "undefined operation"
	case InvalidNullOperation:
		return "invalid null operation"
	case StackError:
		return "stack depth exceeded"
	case InvalidParent:
		return "invalid parent selector"
	case TopLevelParent:
		return "top-level parent selector"
	case UnsatisfiedExtend:
		return "unsatisfied extend"
	case ExtendAcrossMedia:
		return "extend across media queries"
	case UndefinedName:
		return "undefined name"
	case ModuleCycle:
		return "module loop"
	case ModuleNotFound:
		return "module not found"
	case ReconfigureAfterUse:
		return "already loaded without configuration"
	case UnknownWithConfigKey:
		return "unknown with-config key"
	case UserError:
		return "error"
	default:
		return "error"
	}
}

// BacktraceFrame is one entry of a CompileError's backtrace: the call or import site
// that was active when the error occurred (spec §4.7 "backtrace: an
// ordered list of source spans describing the active call/include/import
// stack").
type BacktraceFrame struct {
	Span        SourceSpan
	Description string // e.g. "@include foo", "@function bar()"
}

// CompileError is the evaluator's single error type, grounded on
// daios-ai-msg/errors.go's RuntimeError (message + span) generalised with a
// Kind and a backtrace slice (spec §4.7).
type CompileError struct {
	Kind      ErrorKind
	Message   string
	Span      SourceSpan
	Backtrace []BacktraceFrame
}

func NewCompileError(kind ErrorKind, message string, span SourceSpan) *CompileError {
	return &CompileError{Kind: kind, Message: message, Span: span}
}

func (e *CompileError) Error() string {
	if e.Span.Path == "" && e.Span.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Span)
}

// WithFrame appends a backtrace entry and returns e, innermost-first,
// mirroring the way each unwinding call site in eval_stmt.go/eval_expr.go
// adds its own span as the error propagates outward.
func (e *CompileError) WithFrame(span SourceSpan, desc string) *CompileError {
	e.Backtrace = append(e.Backtrace, BacktraceFrame{Span: span, Description: desc})
	return e
}

// FormatError renders a CompileError as a caret-annotated source snippet
// plus backtrace, grounded on daios-ai-msg/errors.go's
// prettyErrorStringLabeled (which slices the offending line out of the
// original source and underlines the offending column with a line of
// carets). source is the full text of e.Span.Path; callers that don't have
// it (tests constructing synthetic spans) can pass "".
func FormatError(e *CompileError, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Message)
	if line := sourceLine(source, e.Span.Line); line != "" {
		fmt.Fprintf(&b, "%5d | %s\n", e.Span.Line, line)
		col := e.Span.Col
		if col < 1 {
			col = 1
		}
		length := e.Span.Length
		if length < 1 {
			length = 1
		}
		b.WriteString(strings.Repeat(" ", 8+col-1))
		b.WriteString(strings.Repeat("^", length))
		b.WriteString("\n")
	}
	if e.Span.Path != "" {
		fmt.Fprintf(&b, "  %s\n", e.Span)
	}
	for i := len(e.Backtrace) - 1; i >= 0; i-- {
		f := e.Backtrace[i]
		fmt.Fprintf(&b, "  from %s (%s)\n", f.Description, f.Span)
	}
	return b.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
