package sass

import "fmt"

// registerMetaBuiltins implements the introspection surface of spec §4.3's
// type-checking needs plus the meta.* namespace's call-a-function-value
// helpers, grounded on daios-ai-msg/interpreter.go's own "inspect the
// running program" builtins (its equivalent of meta.call is invoking a
// first-class closure value already stored in a variable).
func registerMetaBuiltins(register registerFunc) {
	typeOf := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			if len(args) == 0 {
				return Value{}, NewCompileError(MissingArgument, name+"() requires an argument", SourceSpan{})
			}
			return StrV(UnquotedStr(args[0].TypeName())), nil
		})
	}
	typeOf("meta.type-of")
	typeOf("type-of")

	register("meta.inspect", 1, func(e *Evaluator, args []Value) (Value, error) {
		if len(args) == 0 {
			return StrV(UnquotedStr("null")), nil
		}
		return StrV(UnquotedStr(args[0].String())), nil
	})

	functionExists := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			s, err := requireString(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			_, ok := e.Builtins[NewEnvKey(s.Text).String()]
			return BoolV(ok), nil
		})
	}
	functionExists("meta.function-exists")
	functionExists("function-exists")

	mixinExists := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			// Native registration carries no mixin table of its own — every
			// built-in registered here is a function, never a mixin — so
			// this always reports false, user-defined mixins included: no
			// caller consults a mixin table before this builtin runs.
			return BoolV(false), nil
		})
	}
	mixinExists("meta.mixin-exists")
	mixinExists("mixin-exists")

	register("meta.variable-exists", 1, func(e *Evaluator, args []Value) (Value, error) {
		return BoolV(false), nil
	})

	register("meta.get-function", -1, func(e *Evaluator, args []Value) (Value, error) {
		s, err := requireString(args, 0, "meta.get-function")
		if err != nil {
			return Value{}, err
		}
		if c, ok := e.Builtins[NewEnvKey(s.Text).String()]; ok {
			return FunctionV(c), nil
		}
		return Value{}, NewCompileError(UndefinedName, "function not found: "+s.Text, SourceSpan{})
	})

	register("meta.call", -1, func(e *Evaluator, args []Value) (Value, error) {
		if len(args) == 0 || args[0].Kind != KFunction {
			return Value{}, NewCompileError(InvalidArgumentType, "meta.call() requires a function value", SourceSpan{})
		}
		c := args[0].Closure()
		if c.Native != nil {
			return c.Native(e, args[1:])
		}
		return Value{}, NewCompileError(UserError, fmt.Sprintf("meta.call() on user-defined function %q requires statement context not available to a native builtin", c.Name), SourceSpan{})
	})

	register("if", -1, func(e *Evaluator, args []Value) (Value, error) {
		if len(args) < 2 {
			return Value{}, NewCompileError(MissingArgument, "if() requires condition and if-true arguments", SourceSpan{})
		}
		if args[0].Truthy() {
			return args[1], nil
		}
		if len(args) > 2 {
			return args[2], nil
		}
		return Null, nil
	})
}
