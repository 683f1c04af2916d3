package sass

import "math"

// Grounded on daios-ai-msg/interpreter.go's numeric builtins (fixed-arity
// native functions operating on already-unwrapped Go values), adapted to
// Sass's unit-aware Number (value_number.go) instead of a bare float64.
func registerMathBuiltins(register registerFunc) {
	unary := func(name string, f func(float64) float64) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			n, err := requireNumber(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KNumber, Data: Number{Value: f(n.Value), Numer: n.Numer, Denom: n.Denom}}, nil
		})
	}
	unary("math.ceil", math.Ceil)
	unary("ceil", math.Ceil)
	unary("math.floor", math.Floor)
	unary("floor", math.Floor)
	unary("math.round", math.Round)
	unary("round", math.Round)
	unary("math.sqrt", math.Sqrt)
	unary("math.abs", math.Abs)
	unary("abs", math.Abs)

	register("math.pow", 2, func(e *Evaluator, args []Value) (Value, error) {
		base, err := requireNumber(args, 0, "math.pow")
		if err != nil {
			return Value{}, err
		}
		exp, err := requireNumber(args, 1, "math.pow")
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KNumber, Data: UnitlessNumber(math.Pow(base.Value, exp.Value))}, nil
	})

	register("math.log", 1, func(e *Evaluator, args []Value) (Value, error) {
		n, err := requireNumber(args, 0, "math.log")
		if err != nil {
			return Value{}, err
		}
		if len(args) > 1 {
			base, err := requireNumber(args, 1, "math.log")
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KNumber, Data: UnitlessNumber(math.Log(n.Value) / math.Log(base.Value))}, nil
		}
		return Value{Kind: KNumber, Data: UnitlessNumber(math.Log(n.Value))}, nil
	})

	register("percentage", 1, func(e *Evaluator, args []Value) (Value, error) {
		n, err := requireNumber(args, 0, "percentage")
		if err != nil {
			return Value{}, err
		}
		if n.HasUnits() {
			return Value{}, NewCompileError(IncompatibleUnits, "percentage() requires a unitless number", SourceSpan{})
		}
		return Value{Kind: KNumber, Data: UnitNumber(n.Value*100, "%")}, nil
	})

	minmax := func(name string, keepMax bool) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			if len(args) == 0 {
				return Value{}, NewCompileError(MissingArgument, name+"() requires at least one argument", SourceSpan{})
			}
			best := args[0]
			if best.Kind != KNumber {
				return Value{}, NewCompileError(InvalidArgumentType, name+"() requires numbers", SourceSpan{})
			}
			for _, v := range args[1:] {
				if v.Kind != KNumber {
					return Value{}, NewCompileError(InvalidArgumentType, name+"() requires numbers", SourceSpan{})
				}
				cmp, err := CompareNumbers(v.Number(), best.Number())
				if err != nil {
					return Value{}, wrapNumberError(err)
				}
				if (keepMax && cmp > 0) || (!keepMax && cmp < 0) {
					best = v
				}
			}
			return best, nil
		})
	}
	minmax("math.max", true)
	minmax("max", true)
	minmax("math.min", false)
	minmax("min", false)

	register("math.div", 2, func(e *Evaluator, args []Value) (Value, error) {
		l, err := requireNumber(args, 0, "math.div")
		if err != nil {
			return Value{}, err
		}
		r, err := requireNumber(args, 1, "math.div")
		if err != nil {
			return Value{}, err
		}
		n, err := DivNumbers(l, r)
		if err != nil {
			return Value{}, wrapNumberError(err)
		}
		return Value{Kind: KNumber, Data: n}, nil
	})

	register("unit", 1, func(e *Evaluator, args []Value) (Value, error) {
		n, err := requireNumber(args, 0, "unit")
		if err != nil {
			return Value{}, err
		}
		return StrV(QuotedStr(n.Unit())), nil
	})

	register("unitless", 1, func(e *Evaluator, args []Value) (Value, error) {
		n, err := requireNumber(args, 0, "unitless")
		if err != nil {
			return Value{}, err
		}
		return BoolV(!n.HasUnits()), nil
	})

	register("comparable", 2, func(e *Evaluator, args []Value) (Value, error) {
		a, err := requireNumber(args, 0, "comparable")
		if err != nil {
			return Value{}, err
		}
		b, err := requireNumber(args, 1, "comparable")
		if err != nil {
			return Value{}, err
		}
		_, err = CompareNumbers(a, b)
		return BoolV(err == nil), nil
	})

	register("math.random", -1, func(e *Evaluator, args []Value) (Value, error) {
		// A compile session never calls time/rand sources implicitly (spec
		// §9: no hidden global mutable state) — math.random without a limit
		// is therefore intentionally unsupported until a seeded RNG is
		// threaded through evalContext; math.random($limit) resolves
		// deterministically to $limit itself, not a real random draw.
		if len(args) == 0 {
			return Value{}, NewCompileError(UserError, "math.random() without a seeded RNG is not supported", SourceSpan{})
		}
		n, err := requireNumber(args, 0, "math.random")
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KNumber, Data: n}, nil
	})
}
