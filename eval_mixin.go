package sass

import "fmt"

// This file implements argument binding shared by function calls, mixin
// includes, and @content invocation (spec §4.5's Include semantics and the
// function-call evaluation rule), plus resolution of a (namespace, name)
// reference to the Closure/NativeFunc it names.
//
// Grounded on daios-ai-msg/interpreter.go's call-argument binding (named +
// positional, defaults evaluated lazily in the callee's frame) generalized
// with Sass's keyword-rest (`$args...`) parameter and `...` call-site
// spread, neither of which the teacher's calling convention has.

// bindArguments implements positional/named/rest parameter binding for a
// user-defined Closure, returning the child Frame the body should run in.
// native closures are bound separately (evalFunctionCall below), since
// NativeFunc takes already-ordered positional values rather than a Frame.
func (e *Evaluator) bindArguments(ctx evalContext, c *Closure, args []Argument, span SourceSpan) (*Frame, error) {
	positional, keywords, err := e.evalArguments(ctx, args)
	if err != nil {
		return nil, err
	}
	call := c.Env.Push()

	used := make([]bool, len(positional))
	consumed := map[string]bool{}
	for i, p := range c.Params {
		if i < len(positional) {
			call.Declare(p.Name, NSVariable, positional[i])
			used[i] = true
			continue
		}
		if v, ok := keywords.Get(StrV(UnquotedStr(p.Name.String()))); ok {
			call.Declare(p.Name, NSVariable, v)
			consumed[p.Name.String()] = true
			continue
		}
		if p.Default != nil {
			v, err := e.evalExpr(evalContext{module: ctx.module, frame: call, output: ctx.output}, p.Default)
			if err != nil {
				return nil, err
			}
			call.Declare(p.Name, NSVariable, v)
			continue
		}
		return nil, NewCompileError(MissingArgument, "missing argument $"+p.Name.Spelling()+" in call to "+c.Name, span)
	}

	if c.HasRest {
		var rest []Value
		for i := len(c.Params); i < len(positional); i++ {
			rest = append(rest, positional[i])
		}
		restKw := NewOrderedMap()
		keywords.Each(func(k, v Value) {
			if !consumed[k.Str().Text] {
				restKw.Set(k, v)
			}
		})
		call.Declare(c.RestParam, NSVariable, ArgumentListV(NewArgumentList(rest, restKw, SepComma)))
	} else {
		if len(positional) > len(c.Params) {
			return nil, NewCompileError(InvalidArgumentType, fmt.Sprintf("%s takes %d argument(s) but %d were given", c.Name, len(c.Params), len(positional)), span)
		}
		var unknown string
		keywords.Each(func(k, v Value) {
			if unknown == "" && !consumed[k.Str().Text] {
				unknown = k.Str().Text
			}
		})
		if unknown != "" {
			return nil, NewCompileError(InvalidArgumentType, fmt.Sprintf("%s has no argument named $%s", c.Name, unknown), span)
		}
	}
	return call, nil
}

// evalArguments evaluates a call-site Argument list into positional values
// and a keyword map, expanding `...` spreads (List/ArgumentList positional,
// Map keyword) per spec §4.5.
func (e *Evaluator) evalArguments(ctx evalContext, args []Argument) ([]Value, *OrderedMap, error) {
	var positional []Value
	keywords := NewOrderedMap()
	for _, a := range args {
		v, err := e.evalExpr(ctx, a.Value)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case a.Spread:
			switch v.Kind {
			case KArgumentList:
				al := v.ArgumentList()
				positional = append(positional, al.List.Items...)
				al.Keywords.Each(func(k, kv Value) { keywords.Set(k, kv) })
			case KList:
				positional = append(positional, v.List().Items...)
			case KMap:
				v.Map().Each(func(k, kv Value) { keywords.Set(k, kv) })
			default:
				positional = append(positional, v)
			}
		case a.Name.String() != "":
			keywords.Set(StrV(UnquotedStr(a.Name.String())), v)
		default:
			positional = append(positional, v)
		}
	}
	return positional, keywords, nil
}

// resolveFunction finds the Closure named by (namespace, name): local
// frame first (user-defined functions live in NSFunction), then a
// namespace-qualified module lookup, then the global built-in table.
func (e *Evaluator) resolveFunction(ctx evalContext, namespace, name string) (*Closure, error) {
	key := NewEnvKey(name)
	if namespace != "" {
		mod, ok := ctx.module.Namespaces.Resolve(namespace)
		if !ok {
			return nil, NewCompileError(UndefinedName, "undefined module namespace: "+namespace, SourceSpan{})
		}
		v, err := mod.Lookup(key.String(), NSFunction)
		if err != nil {
			return nil, NewCompileError(UndefinedName, "undefined function: "+namespace+"."+name, SourceSpan{})
		}
		return v.Closure(), nil
	}
	if v, err := ctx.frame.Lookup(key, NSFunction); err == nil {
		return v.Closure(), nil
	}
	if v, ok := ctx.module.Namespaces.LookupGlobal(key.String(), NSFunction); ok {
		return v.Closure(), nil
	}
	if c, ok := e.Builtins[key.String()]; ok {
		return c, nil
	}
	return nil, NewCompileError(UndefinedName, "undefined function: "+name, SourceSpan{})
}

func (e *Evaluator) resolveMixin(ctx evalContext, namespace, name string) (*Closure, error) {
	key := NewEnvKey(name)
	if namespace != "" {
		mod, ok := ctx.module.Namespaces.Resolve(namespace)
		if !ok {
			return nil, NewCompileError(UndefinedName, "undefined module namespace: "+namespace, SourceSpan{})
		}
		v, err := mod.Lookup(key.String(), NSMixin)
		if err != nil {
			return nil, NewCompileError(UndefinedName, "undefined mixin: "+namespace+"."+name, SourceSpan{})
		}
		return v.Closure(), nil
	}
	if v, err := ctx.frame.Lookup(key, NSMixin); err == nil {
		return v.Closure(), nil
	}
	if v, ok := ctx.module.Namespaces.LookupGlobal(key.String(), NSMixin); ok {
		return v.Closure(), nil
	}
	return nil, NewCompileError(UndefinedName, "undefined mixin: "+name, SourceSpan{})
}

// evalFunctionCall implements the function-call expression evaluation rule
// of spec §4.5: resolve the callee, bind arguments, run the body (native or
// user-defined), and unwrap a trailing @return.
func (e *Evaluator) evalFunctionCall(ctx evalContext, call *FunctionCall) (Value, error) {
	c, err := e.resolveFunction(ctx, call.Namespace, call.Name)
	if err != nil {
		return Value{}, err
	}
	pop, err := e.pushCall(SourceSpan{})
	if err != nil {
		return Value{}, err
	}
	defer pop()

	if c.Native != nil {
		positional, _, err := e.evalArguments(ctx, call.Args)
		if err != nil {
			return Value{}, err
		}
		return c.Native(e, positional)
	}

	callFrame, err := e.bindArguments(ctx, c, call.Args, SourceSpan{})
	if err != nil {
		return Value{}, err
	}
	bodyCtx := evalContext{module: ctx.module, frame: callFrame, output: ctx.output, backtrace: append(ctx.backtrace, BacktraceFrame{Description: "@function " + c.Name})}
	var discard []CSSNode
	bodyCtx.output = &discard
	result, err := e.evalFunctionBody(bodyCtx, c.Body)
	if err != nil {
		if ce, ok := err.(*CompileError); ok {
			return Value{}, ce.WithFrame(c.Span, "@function "+c.Name)
		}
		return Value{}, err
	}
	return result, nil
}

// evalFunctionBody runs stmts looking for a controlReturn signal; a
// function body that falls off the end without returning is a
// deliberately invalid program this compiler reports as InvalidSyntax
// rather than silently yielding null, since every real Sass function body
// must end in @return on every path.
func (e *Evaluator) evalFunctionBody(ctx evalContext, stmts []Stmt) (Value, error) {
	err := e.evalStmts(ctx, stmts)
	if err == nil {
		return Value{}, NewCompileError(InvalidSyntax, "function finished without @return", SourceSpan{})
	}
	if ret, ok := err.(*controlReturn); ok {
		return ret.Value, nil
	}
	return Value{}, err
}

// evalInclude implements `@include name(args) { content }` (spec §4.5):
// bind arguments into a fresh frame chained off the mixin's defining
// frame, make the content block (if any) available via ctx.content, and
// run the body discarding any controlReturn (mixins don't return values,
// but @return inside a mixin body is used to exit early in real Sass — we
// honor that by treating any controlReturn as a normal early exit and
// discarding whatever Value it carries, matching @return's "exit the
// current function/mixin" semantics uniformly).
func (e *Evaluator) evalInclude(ctx evalContext, inc *IncludeStmt) error {
	c, err := e.resolveMixin(ctx, inc.Namespace, inc.Name)
	if err != nil {
		return err
	}
	pop, err := e.pushCall(inc.Span)
	if err != nil {
		return err
	}
	defer pop()

	if c.Native != nil {
		positional, _, err := e.evalArguments(ctx, inc.Args)
		if err != nil {
			return err
		}
		_, err = c.Native(e, positional)
		return err
	}

	callFrame, err := e.bindArguments(ctx, c, inc.Args, inc.Span)
	if err != nil {
		return err
	}
	var content *contentBinding
	if inc.Content != nil {
		content = &contentBinding{body: inc.Content, env: ctx.frame, params: inc.Using}
	}
	bodyCtx := evalContext{
		module: ctx.module, frame: callFrame, output: ctx.output,
		parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext,
		content:   content,
		backtrace: append(ctx.backtrace, BacktraceFrame{Span: inc.Span, Description: "@include " + c.Name}),
	}
	if err := e.evalStmts(bodyCtx, c.Body); err != nil {
		if _, ok := err.(*controlReturn); ok {
			return nil
		}
		if ce, ok := err.(*CompileError); ok {
			return ce.WithFrame(inc.Span, "@include "+c.Name)
		}
		return err
	}
	return nil
}

// evalContentStmt implements `@content(...)`: run the nearest enclosing
// content block in *its own* capturing frame (the @include call site's
// frame), not the mixin body's frame — the one place this evaluator
// departs from "closures carry their own Env" because a content block is
// not a Closure at all, just a captured statement list (spec §4.5).
func (e *Evaluator) evalContentStmt(ctx evalContext, stmt *ContentStmt) error {
	if ctx.content == nil {
		return nil // @content with no block passed is a no-op, matching Sass
	}
	frame := ctx.content.env.Push()
	positional, keywords, err := e.evalArguments(ctx, stmt.Args)
	if err != nil {
		return err
	}
	for i, p := range ctx.content.params {
		if i < len(positional) {
			frame.Declare(p.Name, NSVariable, positional[i])
		} else if v, ok := keywords.Get(StrV(UnquotedStr(p.Name.String()))); ok {
			frame.Declare(p.Name, NSVariable, v)
		} else if p.Default != nil {
			v, err := e.evalExpr(evalContext{module: ctx.module, frame: frame, output: ctx.output}, p.Default)
			if err != nil {
				return err
			}
			frame.Declare(p.Name, NSVariable, v)
		}
	}
	contentCtx := evalContext{
		module: ctx.module, frame: frame, output: ctx.output,
		parentSelector: ctx.parentSelector, mediaContext: ctx.mediaContext,
		content: nil, backtrace: ctx.backtrace,
	}
	if err := e.evalStmts(contentCtx, ctx.content.body); err != nil {
		if _, ok := err.(*controlReturn); ok {
			return nil
		}
		return err
	}
	return nil
}
