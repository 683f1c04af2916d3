package sass

// WithConfig is the frame-like carrier for a `@use "url" with (...)` /
// `@forward "url" with (...)` configuration map (spec §4.2, glossary
// "With-config"). It is pushed around a module's top-to-bottom evaluation
// so that `!default` assignments inside the module can see it without the
// module needing to know it was configured at all.
//
// Consumed tracks which keys were actually used by a `!default` assignment
// (spec §4.2: "the assignment is skipped and the variable is marked
// consumed"), so ModuleRegistry can report "unknown with-config key" for
// any key never consumed — libsass (original_source/src/ast_imports.hpp)
// treats an unconsumed configured variable as an error once the module
// finishes compiling.
type WithConfig struct {
	values   map[string]Value
	spelling map[string]EnvKey
	consumed map[string]bool
}

// NewWithConfig builds a WithConfig from a `with (...)` argument map,
// failing if the same key is supplied twice (spec §4.2 step 3: "pushes a
// WithConfig frame carrying the caller's with map (duplicate keys fail)").
// The caller supplies already-bound key/value pairs in source order, since
// argument binding is shared with function/mixin calls (eval_mixin.go).
func NewWithConfig(pairs []struct {
	Key EnvKey
	Val Value
}) (*WithConfig, error) {
	wc := &WithConfig{values: map[string]Value{}, spelling: map[string]EnvKey{}, consumed: map[string]bool{}}
	for _, p := range pairs {
		if _, dup := wc.values[p.Key.String()]; dup {
			return nil, NewCompileError(InvalidSyntax, "duplicate with-config key $"+p.Key.Spelling(), SourceSpan{})
		}
		wc.values[p.Key.String()] = p.Val
		wc.spelling[p.Key.String()] = p.Key
	}
	return wc, nil
}

// Lookup returns the configured value for key, if the caller supplied one
// that hasn't already been consumed as a !default.
func (wc *WithConfig) Lookup(key EnvKey) (Value, bool) {
	if wc == nil {
		return Value{}, false
	}
	v, ok := wc.values[key.String()]
	if !ok || wc.consumed[key.String()] {
		return Value{}, false
	}
	return v, true
}

// Consume marks key as applied by a !default assignment, per spec §4.2.
func (wc *WithConfig) Consume(key EnvKey) {
	if wc == nil {
		return
	}
	wc.consumed[key.String()] = true
}

// Unconsumed returns the spellings of configured keys that were never
// picked up by any !default assignment while the module compiled — these
// are reported as errors by ModuleRegistry.Load.
func (wc *WithConfig) Unconsumed() []string {
	if wc == nil {
		return nil
	}
	var out []string
	for k, spelling := range wc.spelling {
		if !wc.consumed[k] {
			out = append(out, spelling.Spelling())
		}
	}
	return out
}
