package sass

// Grounded on daios-ai-msg/interpreter.go's collection builtins operating
// on its native slice value representation, adapted to List's separator/
// bracketed metadata (value_list.go), which a plain Go slice has no room
// to carry.
func registerListBuiltins(register registerFunc) {
	register("list.length", 1, func(e *Evaluator, args []Value) (Value, error) {
		return Value{Kind: KNumber, Data: UnitlessNumber(float64(listLen(argOr(args, 0, Null))))}, nil
	})
	register("length", 1, func(e *Evaluator, args []Value) (Value, error) {
		return Value{Kind: KNumber, Data: UnitlessNumber(float64(listLen(argOr(args, 0, Null))))}, nil
	})

	nth := func(name string) {
		register(name, 2, func(e *Evaluator, args []Value) (Value, error) {
			l, err := requireList(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			idxN, err := requireNumber(args, 1, name)
			if err != nil {
				return Value{}, err
			}
			idx := sassListIndex(len(l.Items), int(idxN.Value))
			if idx < 0 || idx >= len(l.Items) {
				return Value{}, NewCompileError(InvalidArgumentType, name+"(): index out of range", SourceSpan{})
			}
			return l.Items[idx], nil
		})
	}
	nth("list.nth")
	nth("nth")

	register("list.set-nth", 3, func(e *Evaluator, args []Value) (Value, error) {
		l, err := requireList(args, 0, "list.set-nth")
		if err != nil {
			return Value{}, err
		}
		idxN, err := requireNumber(args, 1, "list.set-nth")
		if err != nil {
			return Value{}, err
		}
		idx := sassListIndex(len(l.Items), int(idxN.Value))
		if idx < 0 || idx >= len(l.Items) {
			return Value{}, NewCompileError(InvalidArgumentType, "list.set-nth(): index out of range", SourceSpan{})
		}
		out := append([]Value(nil), l.Items...)
		out[idx] = argOr(args, 2, Null)
		return ListV(out, l.Sep, l.Bracketed), nil
	})

	join := func(name string) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			a, err := requireList(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			b, err := requireList(args, 1, name)
			if err != nil {
				return Value{}, err
			}
			sep := a.Sep
			if len(args) > 2 && args[2].Kind == KString {
				switch args[2].Str().Text {
				case "comma":
					sep = SepComma
				case "space":
					sep = SepSpace
				case "slash":
					sep = SepSlash
				}
			} else if a.Sep == SepUndecided {
				sep = b.Sep
			}
			bracketed := a.Bracketed
			if len(args) > 3 {
				bracketed = args[3].Truthy()
			}
			out := append(append([]Value(nil), a.Items...), b.Items...)
			return ListV(out, sep, bracketed), nil
		})
	}
	join("list.join")
	join("join")

	appendFn := func(name string) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			l, err := requireList(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			out := append(append([]Value(nil), l.Items...), argOr(args, 1, Null))
			sep := l.Sep
			if len(args) > 2 && args[2].Kind == KString {
				switch args[2].Str().Text {
				case "comma":
					sep = SepComma
				case "space":
					sep = SepSpace
				}
			}
			return ListV(out, sep, l.Bracketed), nil
		})
	}
	appendFn("list.append")
	appendFn("append")

	register("list.zip", -1, func(e *Evaluator, args []Value) (Value, error) {
		lists := make([]*List, len(args))
		minLen := -1
		for i := range args {
			l, err := requireList(args, i, "list.zip")
			if err != nil {
				return Value{}, err
			}
			lists[i] = l
			if minLen == -1 || len(l.Items) < minLen {
				minLen = len(l.Items)
			}
		}
		if minLen < 0 {
			minLen = 0
		}
		out := make([]Value, minLen)
		for i := 0; i < minLen; i++ {
			row := make([]Value, len(lists))
			for j, l := range lists {
				row[j] = l.Items[i]
			}
			out[i] = ListV(row, SepSpace, false)
		}
		return ListV(out, SepComma, false), nil
	})

	register("list.index", 2, func(e *Evaluator, args []Value) (Value, error) {
		l, err := requireList(args, 0, "list.index")
		if err != nil {
			return Value{}, err
		}
		target := argOr(args, 1, Null)
		for i, item := range l.Items {
			if Equal(item, target) {
				return Value{Kind: KNumber, Data: UnitlessNumber(float64(i + 1))}, nil
			}
		}
		return Null, nil
	})
	register("index", 2, func(e *Evaluator, args []Value) (Value, error) {
		l, err := requireList(args, 0, "index")
		if err != nil {
			return Value{}, err
		}
		target := argOr(args, 1, Null)
		for i, item := range l.Items {
			if Equal(item, target) {
				return Value{Kind: KNumber, Data: UnitlessNumber(float64(i + 1))}, nil
			}
		}
		return Null, nil
	})

	sepFn := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			l, err := requireList(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			if len(l.Items) < 2 {
				return StrV(UnquotedStr("space")), nil
			}
			switch l.Sep {
			case SepComma:
				return StrV(UnquotedStr("comma")), nil
			case SepSlash:
				return StrV(UnquotedStr("slash")), nil
			default:
				return StrV(UnquotedStr("space")), nil
			}
		})
	}
	sepFn("list.separator")
	sepFn("list-separator")

	isBracketed := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			l, err := requireList(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return BoolV(l.Bracketed), nil
		})
	}
	isBracketed("list.is-bracketed")
	isBracketed("is-bracketed")
}

func listLen(v Value) int {
	switch v.Kind {
	case KList:
		return len(v.List().Items)
	case KArgumentList:
		return len(v.ArgumentList().List.Items)
	case KMap:
		return v.Map().Len()
	case KNull:
		return 0
	default:
		return 1
	}
}

// sassListIndex converts Sass's 1-based, negative-from-end list index
// convention into a 0-based Go slice index (not bounds-checked).
func sassListIndex(length, i int) int {
	if i < 0 {
		i = length + i + 1
	}
	return i - 1
}
