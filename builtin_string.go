package sass

import "strings"

// Grounded on daios-ai-msg/interpreter.go's string builtins (length/slice/
// case conversion wrapped around Go's strings package), adapted to the
// quoted/unquoted distinction Sass strings carry (value_string.go).
func registerStringBuiltins(register registerFunc) {
	length := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			s, err := requireString(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KNumber, Data: UnitlessNumber(float64(len([]rune(s.Text))))}, nil
		})
	}
	length("string.length")
	length("str-length")

	upper := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			s, err := requireString(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return StrV(Str{Text: strings.ToUpper(s.Text), Quoted: s.Quoted}), nil
		})
	}
	upper("string.to-upper-case")
	upper("to-upper-case")

	lower := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			s, err := requireString(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return StrV(Str{Text: strings.ToLower(s.Text), Quoted: s.Quoted}), nil
		})
	}
	lower("string.to-lower-case")
	lower("to-lower-case")

	quote := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			s, err := requireString(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return StrV(QuotedStr(s.Text)), nil
		})
	}
	quote("string.quote")
	quote("quote")

	unquote := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			if len(args) == 0 {
				return Value{}, NewCompileError(MissingArgument, name+"() requires an argument", SourceSpan{})
			}
			return StrV(UnquotedStr(stringify(args[0]))), nil
		})
	}
	unquote("string.unquote")
	unquote("unquote")

	insertName := func(name string) {
		register(name, 3, func(e *Evaluator, args []Value) (Value, error) {
			s, err := requireString(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			ins, err := requireString(args, 1, name)
			if err != nil {
				return Value{}, err
			}
			idxN, err := requireNumber(args, 2, name)
			if err != nil {
				return Value{}, err
			}
			idx := sassStringIndex(s.Text, int(idxN.Value))
			out := s.Text[:idx] + ins.Text + s.Text[idx:]
			return StrV(Str{Text: out, Quoted: s.Quoted}), nil
		})
	}
	insertName("string.insert")

	register("string.index", 2, func(e *Evaluator, args []Value) (Value, error) {
		s, err := requireString(args, 0, "string.index")
		if err != nil {
			return Value{}, err
		}
		sub, err := requireString(args, 1, "string.index")
		if err != nil {
			return Value{}, err
		}
		runes := []rune(s.Text)
		subRunes := []rune(sub.Text)
		for i := 0; i+len(subRunes) <= len(runes); i++ {
			if string(runes[i:i+len(subRunes)]) == sub.Text {
				return Value{Kind: KNumber, Data: UnitlessNumber(float64(i + 1))}, nil
			}
		}
		return Null, nil
	})

	register("string.slice", -1, func(e *Evaluator, args []Value) (Value, error) {
		s, err := requireString(args, 0, "string.slice")
		if err != nil {
			return Value{}, err
		}
		runes := []rune(s.Text)
		start := 1
		if len(args) > 1 {
			n, err := requireNumber(args, 1, "string.slice")
			if err != nil {
				return Value{}, err
			}
			start = sassStringIndex(s.Text, int(n.Value))
		}
		end := len(runes)
		if len(args) > 2 {
			n, err := requireNumber(args, 2, "string.slice")
			if err != nil {
				return Value{}, err
			}
			end = sassStringIndex(s.Text, int(n.Value))
		}
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			return StrV(Str{Text: "", Quoted: s.Quoted}), nil
		}
		return StrV(Str{Text: string(runes[start:end]), Quoted: s.Quoted}), nil
	})
}

// sassStringIndex converts Sass's 1-based, negative-from-end string index
// convention into a 0-based rune offset clamped to [0, len].
func sassStringIndex(s string, i int) int {
	runes := []rune(s)
	if i < 0 {
		i = len(runes) + i + 1
	}
	i--
	if i < 0 {
		return 0
	}
	if i > len(runes) {
		return len(runes)
	}
	return i
}
