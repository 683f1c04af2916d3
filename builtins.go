package sass

// This file wires the global built-in function table (spec §4.5 "Built-in
// function registration"): every NativeFunc lives on a module-less Closure
// keyed by name in Evaluator.Builtins, consulted by resolveFunction
// (eval_mixin.go) only after the lexical frame and module namespaces have
// both come up empty, matching real Sass's "user-defined names shadow
// built-ins" rule.
//
// Grounded on daios-ai-msg/interpreter.go's builtin registration table (a
// map[string]func(...) wired once at Interpreter construction), split by
// category the way that file groups its builtins, generalized to Sass's
// module-namespaced built-in names (e.g. "string.length" alongside the
// legacy global "str-length").

func RegisterBuiltins(e *Evaluator) {
	register := func(name string, arity int, fn NativeFunc) {
		e.Builtins[NewEnvKey(name).String()] = &Closure{Name: name, Native: fn}
	}
	registerMathBuiltins(register)
	registerStringBuiltins(register)
	registerListBuiltins(register)
	registerMapBuiltins(register)
	registerColorBuiltins(register)
	registerMetaBuiltins(register)
	registerSelectorBuiltins(register)
}

// registerFunc is the shape every registerXBuiltins helper takes: a
// closure over Evaluator.Builtins that also stamps the function's name,
// kept as a named type only for readability in the per-category files.
type registerFunc = func(name string, arity int, fn NativeFunc)

// argOr returns args[i] if present, else def — the natives' equivalent of
// a Param.Default, since native Closures bind raw positional slices rather
// than going through bindArguments (eval_mixin.go).
func argOr(args []Value, i int, def Value) Value {
	if i < len(args) {
		return args[i]
	}
	return def
}

func requireNumber(args []Value, i int, fn string) (Number, error) {
	if i >= len(args) || args[i].Kind != KNumber {
		return Number{}, NewCompileError(InvalidArgumentType, fn+"() requires a number argument", SourceSpan{})
	}
	return args[i].Number(), nil
}

func requireString(args []Value, i int, fn string) (Str, error) {
	if i >= len(args) || args[i].Kind != KString {
		return Str{}, NewCompileError(InvalidArgumentType, fn+"() requires a string argument", SourceSpan{})
	}
	return args[i].Str(), nil
}

func requireColor(args []Value, i int, fn string) (Color, error) {
	if i >= len(args) || args[i].Kind != KColor {
		return Color{}, NewCompileError(InvalidArgumentType, fn+"() requires a color argument", SourceSpan{})
	}
	return args[i].Color(), nil
}

func requireList(args []Value, i int, fn string) (*List, error) {
	if i >= len(args) {
		return nil, NewCompileError(MissingArgument, fn+"() requires a list argument", SourceSpan{})
	}
	v := args[i]
	if v.Kind == KList {
		return v.List(), nil
	}
	return NewList([]Value{v}, SepSpace, false), nil
}
