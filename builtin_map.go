package sass

// Grounded on daios-ai-msg/interpreter.go's builtin registration pattern,
// adapted to the ordered, insertion-stable map Sass requires
// (value_map.go's OrderedMap) where a plain Go map would silently drop the
// iteration-order guarantee spec §4.3 promises for map.each/@each.
func registerMapBuiltins(register registerFunc) {
	requireMap := func(args []Value, i int, fn string) (*OrderedMap, error) {
		if i >= len(args) || args[i].Kind != KMap {
			return nil, NewCompileError(InvalidArgumentType, fn+"() requires a map argument", SourceSpan{})
		}
		return args[i].Map(), nil
	}

	get := func(name string) {
		register(name, 2, func(e *Evaluator, args []Value) (Value, error) {
			m, err := requireMap(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			if v, ok := m.Get(argOr(args, 1, Null)); ok {
				return v, nil
			}
			return Null, nil
		})
	}
	get("map.get")
	get("map-get")

	hasKey := func(name string) {
		register(name, 2, func(e *Evaluator, args []Value) (Value, error) {
			m, err := requireMap(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			_, ok := m.Get(argOr(args, 1, Null))
			return BoolV(ok), nil
		})
	}
	hasKey("map.has-key")
	hasKey("map-has-key")

	keys := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			m, err := requireMap(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			return ListV(m.Keys(), SepComma, false), nil
		})
	}
	keys("map.keys")
	keys("map-keys")

	values := func(name string) {
		register(name, 1, func(e *Evaluator, args []Value) (Value, error) {
			m, err := requireMap(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			var out []Value
			m.Each(func(_, v Value) { out = append(out, v) })
			return ListV(out, SepComma, false), nil
		})
	}
	values("map.values")
	values("map-values")

	merge := func(name string) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			out := NewOrderedMap()
			for i := range args {
				m, err := requireMap(args, i, name)
				if err != nil {
					return Value{}, err
				}
				m.Each(func(k, v Value) { out.Set(k, v) })
			}
			return MapV(out), nil
		})
	}
	merge("map.merge")
	merge("map-merge")

	remove := func(name string) {
		register(name, -1, func(e *Evaluator, args []Value) (Value, error) {
			m, err := requireMap(args, 0, name)
			if err != nil {
				return Value{}, err
			}
			out := m.Clone()
			for _, key := range args[1:] {
				out.Delete(key)
			}
			return MapV(out), nil
		})
	}
	remove("map.remove")
	remove("map-remove")

	register("map.set", 3, func(e *Evaluator, args []Value) (Value, error) {
		m, err := requireMap(args, 0, "map.set")
		if err != nil {
			return Value{}, err
		}
		out := m.Clone()
		out.Set(argOr(args, 1, Null), argOr(args, 2, Null))
		return MapV(out), nil
	})
}
