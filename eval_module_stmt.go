package sass

// This file implements the three module-system statements of spec §4.2:
// @use (namespace-qualified load), @forward (re-export with prefix/filter),
// and the legacy @import (textual merge, no namespace). All three share
// the same Loader indirection as ModuleRegistry.Load; only @import skips
// the registry entirely since it has none of @use's load-once/namespace
// semantics (original_source/src/ast_imports.hpp keeps @import's textual
// inlining completely separate from the module cache for this reason).

// evalWithConfig evaluates a `with (...)` argument list (each Argument
// expected named, per spec §4.2 grammar) into a WithConfig.
func (e *Evaluator) evalWithConfig(ctx evalContext, args []Argument, span SourceSpan) (*WithConfig, error) {
	if len(args) == 0 {
		return nil, nil
	}
	pairs := make([]struct {
		Key EnvKey
		Val Value
	}, 0, len(args))
	for _, a := range args {
		v, err := e.evalExpr(ctx, a.Value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, struct {
			Key EnvKey
			Val Value
		}{Key: a.Name, Val: v})
	}
	return NewWithConfig(pairs)
}

func (e *Evaluator) evalUse(ctx evalContext, s *UseStmt) error {
	withCfg, err := e.evalWithConfig(ctx, s.With, s.Span)
	if err != nil {
		return err
	}
	mod, err := e.Registry.Load(s.URL, withCfg, e.Loader, s.Span)
	if err != nil {
		return err
	}
	namespace := s.Namespace
	if namespace == "" {
		namespace = DefaultNamespace(s.URL)
	}
	ctx.module.Namespaces.Bind(namespace, mod)
	return nil
}

func (e *Evaluator) evalForward(ctx evalContext, s *ForwardStmt) error {
	withCfg, err := e.evalWithConfig(ctx, s.With, s.Span)
	if err != nil {
		return err
	}
	mod, err := e.Registry.Load(s.URL, withCfg, e.Loader, s.Span)
	if err != nil {
		return err
	}
	ctx.module.Forwards = append(ctx.module.Forwards, forwardedSource{Module: mod, Prefix: s.Prefix, Filter: s.Filter})
	return nil
}

// evalImport implements the legacy `@import "url"` form: the imported
// file's statements run directly against the importer's own frame and
// output, so declared variables/mixins/functions and emitted CSS all land
// exactly where a textual copy-paste would have put them (spec §4.5). It
// deliberately bypasses ModuleRegistry: the same file can be @import'd
// more than once with different results depending on variables already
// set at each import site, which is incompatible with @use's
// compile-once-per-session cache.
func (e *Evaluator) evalImport(ctx evalContext, s *ImportStmt) error {
	if e.Loader == nil {
		return NewCompileError(ModuleNotFound, "no loader configured for @import \""+s.URL+"\"", s.Span)
	}
	stmts, err := e.Loader(s.URL)
	if err != nil {
		return NewCompileError(ModuleNotFound, err.Error(), s.Span)
	}
	return e.evalStmts(ctx, stmts)
}
