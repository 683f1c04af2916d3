package sass

import (
	"fmt"
	"strings"
)

// evalExpr dispatches on the expression's dynamic type (spec §9's "model
// as a tagged variant dispatched with a match" design note, applied here
// via a Go type switch over the Expr interface rather than a visitor
// method per node type — consistent with value.go's ValueKind switch).
func (e *Evaluator) evalExpr(ctx evalContext, expr Expr) (Value, error) {
	switch x := expr.(type) {
	case *NullLit:
		return Null, nil
	case *BoolLit:
		return BoolV(x.Value), nil
	case *NumberLit:
		return Value{Kind: KNumber, Data: x.Value}, nil
	case *ColorLit:
		return Value{Kind: KColor, Data: x.Value}, nil
	case *StringLit:
		if x.Parts != nil {
			return e.evalStringParts(ctx, x.Parts, x.Quoted)
		}
		return StrV(Str{Text: x.Value, Quoted: x.Quoted}), nil
	case *Interpolation:
		s, err := e.evalStringParts(ctx, x.Parts, false)
		return s, err
	case *ParentSelectorRef:
		if ctx.parentSelector == nil {
			return Value{}, NewCompileError(TopLevelParent, "top-level selector may not contain a parent selector", SourceSpan{})
		}
		return StrV(UnquotedStr(ctx.parentSelector.String())), nil
	case *Variable:
		return e.evalVariable(ctx, x)
	case *ArgListExpr:
		v, err := ctx.frame.Lookup(x.Name, NSVariable)
		if err != nil {
			return Value{}, NewCompileError(UndefinedName, "undefined variable: $"+x.Name.Spelling(), SourceSpan{})
		}
		return v, nil
	case *ListLit:
		return e.evalListLit(ctx, x)
	case *MapLit:
		return e.evalMapLit(ctx, x)
	case *BinaryExpr:
		return e.evalBinary(ctx, x)
	case *UnaryExpr:
		return e.evalUnary(ctx, x)
	case *FunctionCall:
		return e.evalFunctionCall(ctx, x)
	case *FunctionRef:
		c, err := e.resolveFunction(ctx, x.Namespace, x.Name)
		if err != nil {
			return Value{}, err
		}
		return FunctionV(c), nil
	default:
		return Value{}, NewCompileError(InvalidSyntax, fmt.Sprintf("unsupported expression node %T", expr), SourceSpan{})
	}
}

func (e *Evaluator) evalStringParts(ctx evalContext, parts []any, quoted bool) (Value, error) {
	var b strings.Builder
	for _, p := range parts {
		switch part := p.(type) {
		case string:
			b.WriteString(part)
		case Expr:
			v, err := e.evalExpr(ctx, part)
			if err != nil {
				return Value{}, err
			}
			b.WriteString(stringify(v))
		}
	}
	if quoted {
		return StrV(QuotedStr(b.String())), nil
	}
	return StrV(UnquotedStr(b.String())), nil
}

// stringify renders a Value the way interpolation/CSS-value context does:
// quotes are stripped from quoted strings (spec §4.3 "interpolation forces
// unquoted").
func stringify(v Value) string {
	if v.Kind == KString {
		return v.Str().Text
	}
	return v.String()
}

func (e *Evaluator) evalVariable(ctx evalContext, v *Variable) (Value, error) {
	if v.Namespace != "" {
		mod, ok := ctx.module.Namespaces.Resolve(v.Namespace)
		if !ok {
			return Value{}, NewCompileError(UndefinedName, "undefined module namespace: "+v.Namespace, SourceSpan{})
		}
		val, err := mod.Lookup(v.Name.String(), NSVariable)
		if err != nil {
			return Value{}, NewCompileError(UndefinedName, "undefined variable: "+v.Namespace+".$"+v.Name.Spelling(), SourceSpan{})
		}
		return val, nil
	}
	if val, err := ctx.frame.Lookup(v.Name, NSVariable); err == nil {
		return val, nil
	}
	if val, ok := ctx.module.Namespaces.LookupGlobal(v.Name.String(), NSVariable); ok {
		return val, nil
	}
	return Value{}, NewCompileError(UndefinedName, "undefined variable: $"+v.Name.Spelling(), SourceSpan{})
}

func (e *Evaluator) evalListLit(ctx evalContext, l *ListLit) (Value, error) {
	items := make([]Value, 0, len(l.Items))
	for _, it := range l.Items {
		v, err := e.evalExpr(ctx, it)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return ListV(items, l.Sep, l.Bracketed), nil
}

func (e *Evaluator) evalMapLit(ctx evalContext, m *MapLit) (Value, error) {
	om := NewOrderedMap()
	for _, pair := range m.Pairs {
		k, err := e.evalExpr(ctx, pair.Key)
		if err != nil {
			return Value{}, err
		}
		v, err := e.evalExpr(ctx, pair.Value)
		if err != nil {
			return Value{}, err
		}
		if _, exists := om.Get(k); exists {
			return Value{}, NewCompileError(DuplicateKey, "duplicate key "+k.String()+" in map", SourceSpan{})
		}
		om.Set(k, v)
	}
	return MapV(om), nil
}

func (e *Evaluator) evalUnary(ctx evalContext, u *UnaryExpr) (Value, error) {
	v, err := e.evalExpr(ctx, u.Operand)
	if err != nil {
		return Value{}, err
	}
	switch u.Op {
	case "not":
		return BoolV(!v.Truthy()), nil
	case "-":
		if v.Kind != KNumber {
			if v.Kind == KString {
				return StrV(UnquotedStr("-" + v.Str().String())), nil
			}
			return Value{}, NewCompileError(UndefinedOperation, "unary - not defined for "+v.TypeName(), SourceSpan{})
		}
		n := v.Number()
		return Value{Kind: KNumber, Data: Number{Value: -n.Value, Numer: n.Numer, Denom: n.Denom}}, nil
	case "+":
		if v.Kind != KNumber {
			return Value{}, NewCompileError(UndefinedOperation, "unary + not defined for "+v.TypeName(), SourceSpan{})
		}
		return v, nil
	default:
		return Value{}, NewCompileError(InvalidSyntax, "unknown unary operator "+u.Op, SourceSpan{})
	}
}

func (e *Evaluator) evalBinary(ctx evalContext, b *BinaryExpr) (Value, error) {
	switch b.Op {
	case "and":
		l, err := e.evalExpr(ctx, b.Left)
		if err != nil {
			return Value{}, err
		}
		if !l.Truthy() {
			return l, nil
		}
		return e.evalExpr(ctx, b.Right)
	case "or":
		l, err := e.evalExpr(ctx, b.Left)
		if err != nil {
			return Value{}, err
		}
		if l.Truthy() {
			return l, nil
		}
		return e.evalExpr(ctx, b.Right)
	}

	l, err := e.evalExpr(ctx, b.Left)
	if err != nil {
		return Value{}, err
	}
	r, err := e.evalExpr(ctx, b.Right)
	if err != nil {
		return Value{}, err
	}

	switch b.Op {
	case "==":
		return BoolV(Equal(l, r)), nil
	case "!=":
		return BoolV(!Equal(l, r)), nil
	case "<", "<=", ">", ">=":
		return e.evalComparison(b.Op, l, r)
	case "+":
		return e.evalAdd(l, r)
	case "-":
		return e.evalSub(l, r)
	case "*":
		return e.evalMul(l, r)
	case "/":
		return e.evalDiv(l, r)
	case "%":
		return e.evalMod(l, r)
	default:
		return Value{}, NewCompileError(InvalidSyntax, "unknown binary operator "+b.Op, SourceSpan{})
	}
}

// wrapNumberError converts the plain Go errors value_number.go returns
// (unitError/zeroDivisionError, which don't carry a SourceSpan of their
// own) into the evaluator's typed CompileError taxonomy.
func wrapNumberError(err error) error {
	switch err.(type) {
	case *unitError:
		return NewCompileError(IncompatibleUnits, err.Error(), SourceSpan{})
	case *zeroDivisionError:
		return NewCompileError(ZeroDivision, err.Error(), SourceSpan{})
	default:
		return err
	}
}

func (e *Evaluator) evalComparison(op string, l, r Value) (Value, error) {
	if l.Kind != KNumber || r.Kind != KNumber {
		return Value{}, NewCompileError(UndefinedOperation, "comparison requires numbers, got "+l.TypeName()+" and "+r.TypeName(), SourceSpan{})
	}
	cmp, err := CompareNumbers(l.Number(), r.Number())
	if err != nil {
		return Value{}, wrapNumberError(err)
	}
	switch op {
	case "<":
		return BoolV(cmp < 0), nil
	case "<=":
		return BoolV(cmp <= 0), nil
	case ">":
		return BoolV(cmp > 0), nil
	default:
		return BoolV(cmp >= 0), nil
	}
}

// evalAdd implements spec §4.3's "+" across every kind Sass overloads it
// for: number arithmetic, color channel-wise addition is NOT part of
// modern Sass (removed), and string/list concatenation when either operand
// isn't a plain number.
func (e *Evaluator) evalAdd(l, r Value) (Value, error) {
	if l.Kind == KNumber && r.Kind == KNumber {
		n, err := AddNumbers(l.Number(), r.Number())
		if err != nil {
			return Value{}, wrapNumberError(err)
		}
		return Value{Kind: KNumber, Data: n}, nil
	}
	if l.Kind == KString || r.Kind == KString {
		quoted := l.Kind == KString && l.Str().Quoted
		return StrV(Str{Text: stringify(l) + stringify(r), Quoted: quoted}), nil
	}
	return StrV(UnquotedStr(l.String() + r.String())), nil
}

func (e *Evaluator) evalSub(l, r Value) (Value, error) {
	if l.Kind == KNumber && r.Kind == KNumber {
		n, err := SubNumbers(l.Number(), r.Number())
		if err != nil {
			return Value{}, wrapNumberError(err)
		}
		return Value{Kind: KNumber, Data: n}, nil
	}
	return StrV(UnquotedStr(l.String() + "-" + r.String())), nil
}

func (e *Evaluator) evalMul(l, r Value) (Value, error) {
	if l.Kind != KNumber || r.Kind != KNumber {
		return Value{}, NewCompileError(UndefinedOperation, "* not defined for "+l.TypeName()+" and "+r.TypeName(), SourceSpan{})
	}
	return Value{Kind: KNumber, Data: MulNumbers(l.Number(), r.Number())}, nil
}

func (e *Evaluator) evalDiv(l, r Value) (Value, error) {
	if l.Kind != KNumber || r.Kind != KNumber {
		return Value{}, NewCompileError(UndefinedOperation, "/ not defined for "+l.TypeName()+" and "+r.TypeName(), SourceSpan{})
	}
	// spec's legacy-slash-division deprecation: arithmetic `/` on two
	// numbers still works but warns toward math.div, which never warns.
	e.Logger.Log(Diagnostic{Kind: DiagDeprecation, Message: "/ for division is deprecated, use math.div instead"})
	n, err := DivNumbers(l.Number(), r.Number())
	if err != nil {
		return Value{}, wrapNumberError(err)
	}
	return Value{Kind: KNumber, Data: n}, nil
}

func (e *Evaluator) evalMod(l, r Value) (Value, error) {
	if l.Kind != KNumber || r.Kind != KNumber {
		return Value{}, NewCompileError(UndefinedOperation, "% not defined for "+l.TypeName()+" and "+r.TypeName(), SourceSpan{})
	}
	n, err := ModNumbers(l.Number(), r.Number())
	if err != nil {
		return Value{}, wrapNumberError(err)
	}
	return Value{Kind: KNumber, Data: n}, nil
}
