package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalFunctionCallBindsPositionalAndDefaultArguments(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("double"), NSFunction, FunctionV(&Closure{
		Name:   "double",
		Params: []Param{{Name: NewEnvKey("n")}, {Name: NewEnvKey("by"), Default: &NumberLit{Value: UnitlessNumber(2)}}},
		Env:    m.Root,
		Body: []Stmt{&ReturnStmt{Value: &BinaryExpr{
			Op: "*", Left: &Variable{Name: NewEnvKey("n")}, Right: &Variable{Name: NewEnvKey("by")},
		}}},
	}))

	v, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "double", Args: []Argument{{Value: &NumberLit{Value: UnitlessNumber(5)}}}})
	require.NoError(t, err)
	require.Equal(t, float64(10), v.Number().Value)
}

func TestEvalFunctionCallAcceptsNamedArgumentOverridingDefault(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("double"), NSFunction, FunctionV(&Closure{
		Name:   "double",
		Params: []Param{{Name: NewEnvKey("n")}, {Name: NewEnvKey("by"), Default: &NumberLit{Value: UnitlessNumber(2)}}},
		Env:    m.Root,
		Body: []Stmt{&ReturnStmt{Value: &BinaryExpr{
			Op: "*", Left: &Variable{Name: NewEnvKey("n")}, Right: &Variable{Name: NewEnvKey("by")},
		}}},
	}))

	v, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "double", Args: []Argument{
		{Value: &NumberLit{Value: UnitlessNumber(5)}},
		{Name: NewEnvKey("by"), Value: &NumberLit{Value: UnitlessNumber(3)}},
	}})
	require.NoError(t, err)
	require.Equal(t, float64(15), v.Number().Value)
}

func TestEvalFunctionCallMissingRequiredArgumentErrors(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("needs-one"), NSFunction, FunctionV(&Closure{
		Name:   "needs-one",
		Params: []Param{{Name: NewEnvKey("n")}},
		Env:    m.Root,
		Body:   []Stmt{&ReturnStmt{Value: &Variable{Name: NewEnvKey("n")}}},
	}))

	_, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "needs-one"})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, MissingArgument, ce.Kind)
}

func TestEvalFunctionCallUnknownKeywordArgumentWithoutRestErrors(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("greet"), NSFunction, FunctionV(&Closure{
		Name:   "greet",
		Params: []Param{{Name: NewEnvKey("name")}},
		Env:    m.Root,
		Body:   []Stmt{&ReturnStmt{Value: &Variable{Name: NewEnvKey("name")}}},
	}))

	_, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "greet", Args: []Argument{
		{Name: NewEnvKey("name"), Value: &StringLit{Value: "a"}},
		{Name: NewEnvKey("typo"), Value: &StringLit{Value: "b"}},
	}})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, InvalidArgumentType, ce.Kind)
}

func TestEvalFunctionBodyWithoutReturnIsInvalidSyntax(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}
	_, err := e.evalFunctionBody(ctx, nil)
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, InvalidSyntax, ce.Kind)
}

func TestEvalFunctionCallRestParamCollectsExtraPositionalArgs(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("count-args"), NSFunction, FunctionV(&Closure{
		Name:      "count-args",
		RestParam: NewEnvKey("rest"),
		HasRest:   true,
		Env:       m.Root,
		Body: []Stmt{&ReturnStmt{Value: &FunctionCall{Name: "list.length", Args: []Argument{{Value: &Variable{Name: NewEnvKey("rest")}}}}}},
	}))

	v, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "count-args", Args: []Argument{
		{Value: &NumberLit{Value: UnitlessNumber(1)}},
		{Value: &NumberLit{Value: UnitlessNumber(2)}},
		{Value: &NumberLit{Value: UnitlessNumber(3)}},
	}})
	require.NoError(t, err)
	require.Equal(t, float64(3), v.Number().Value)
}

func TestEvalFunctionCallTooManyPositionalArgsWithoutRestErrors(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("one-arg"), NSFunction, FunctionV(&Closure{
		Name:   "one-arg",
		Params: []Param{{Name: NewEnvKey("n")}},
		Env:    m.Root,
		Body:   []Stmt{&ReturnStmt{Value: &Variable{Name: NewEnvKey("n")}}},
	}))

	_, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "one-arg", Args: []Argument{
		{Value: &NumberLit{Value: UnitlessNumber(1)}},
		{Value: &NumberLit{Value: UnitlessNumber(2)}},
	}})
	require.Error(t, err)
}

func TestEvalFunctionCallFallsBackToBuiltinWhenNoUserFunctionShadows(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	v, err := e.evalFunctionCall(ctx, &FunctionCall{Name: "math.ceil", Args: []Argument{
		{Value: &NumberLit{Value: UnitNumber(1.2, "px")}},
	}})
	require.NoError(t, err)
	require.Equal(t, float64(2), v.Number().Value)
}

func TestEvalIncludeRunsMixinBodyAgainstCallerOutput(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out, parentSelector: &SelectorList{Complexes: []ComplexSelector{newComplex([]CompoundSelector{{Simples: []SimpleSelector{{Kind: SimpleClass, Name: "a"}}}}, nil)}}}

	m.Root.Declare(NewEnvKey("emit-rule"), NSMixin, MixinV(&Closure{
		Name:    "emit-rule",
		Env:     m.Root,
		IsMixin: true,
		Body: []Stmt{&StyleRule{
			Selector: &StringLit{Value: "& .child"},
			Body:     []Stmt{&Declaration{Name: &StringLit{Value: "color"}, Value: &StringLit{Value: "red"}}},
		}},
	}))

	require.NoError(t, e.evalInclude(ctx, &IncludeStmt{Name: "emit-rule"}))
	require.Len(t, out, 1)
	rule, ok := out[0].(*CSSStyleRule)
	require.True(t, ok)
	require.Contains(t, rule.Selector.String(), ".child")
}

func TestEvalIncludeUndefinedMixinErrors(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	err := e.evalInclude(ctx, &IncludeStmt{Name: "no-such-mixin"})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, UndefinedName, ce.Kind)
}

func TestEvalIncludeEarlyReturnInsideMixinBodyIsNotAnError(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out}

	m.Root.Declare(NewEnvKey("early-exit"), NSMixin, MixinV(&Closure{
		Name:    "early-exit",
		Env:     m.Root,
		IsMixin: true,
		Body:    []Stmt{&ReturnStmt{Value: &NullLit{}}},
	}))

	require.NoError(t, e.evalInclude(ctx, &IncludeStmt{Name: "early-exit"}))
}

func TestEvalContentRunsInIncludeCallerFrameNotMixinFrame(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode

	m.Root.Declare(NewEnvKey("wrapper"), NSMixin, MixinV(&Closure{
		Name:    "wrapper",
		Env:     m.Root,
		IsMixin: true,
		Body:    []Stmt{&ContentStmt{}},
	}))

	callerFrame := m.Root.Push()
	callerFrame.Declare(NewEnvKey("caller-only"), NSVariable, num(42))
	ctx := evalContext{module: m, frame: callerFrame, output: &out}

	inc := &IncludeStmt{
		Name:    "wrapper",
		Content: []Stmt{&AssignStmt{Name: NewEnvKey("sink"), Global: true, Value: &Variable{Name: NewEnvKey("caller-only")}}},
	}
	require.NoError(t, e.evalInclude(ctx, inc))

	captured, err := callerFrame.Lookup(NewEnvKey("sink"), NSVariable)
	require.NoError(t, err)
	require.Equal(t, float64(42), captured.Number().Value)
}

func TestEvalContentWithNoBlockIsANoOp(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	var out []CSSNode
	ctx := evalContext{module: m, frame: m.Root, output: &out, content: nil}
	require.NoError(t, e.evalContentStmt(ctx, &ContentStmt{}))
}
