package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalBinaryAddNumbersKeepsUnit(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &BinaryExpr{Op: "+", Left: &NumberLit{Value: UnitNumber(1, "px")}, Right: &NumberLit{Value: UnitNumber(2, "px")}})
	require.NoError(t, err)
	require.Equal(t, float64(3), v.Number().Value)
}

func TestEvalBinaryStringConcatenation(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &BinaryExpr{Op: "+", Left: &StringLit{Value: "foo", Quoted: true}, Right: &StringLit{Value: "bar"}})
	require.NoError(t, err)
	require.Equal(t, "foobar", v.Str().Text)
	require.True(t, v.Str().Quoted, "quoted left operand keeps the result quoted")
}

func TestEvalBinaryAndOrShortCircuit(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &BinaryExpr{Op: "and", Left: &BoolLit{Value: false}, Right: &ErrorRaisingExpr{}})
	require.NoError(t, err)
	require.False(t, v.Bool())

	v, err = e.evalExpr(ctx, &BinaryExpr{Op: "or", Left: &BoolLit{Value: true}, Right: &ErrorRaisingExpr{}})
	require.NoError(t, err)
	require.True(t, v.Bool())
}

// ErrorRaisingExpr is a test-only Expr whose evaluation always fails, used to
// prove and/or never evaluate their right operand once short-circuited.
type ErrorRaisingExpr struct{}

func (*ErrorRaisingExpr) exprNode() {}

func TestEvalUnaryNotAndNegate(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &UnaryExpr{Op: "not", Operand: &BoolLit{Value: false}})
	require.NoError(t, err)
	require.True(t, v.Bool())

	v, err = e.evalExpr(ctx, &UnaryExpr{Op: "-", Operand: &NumberLit{Value: UnitlessNumber(5)}})
	require.NoError(t, err)
	require.Equal(t, float64(-5), v.Number().Value)
}

func TestEvalComparisonConvertsUnits(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &BinaryExpr{Op: "<", Left: &NumberLit{Value: UnitNumber(2, "cm")}, Right: &NumberLit{Value: UnitNumber(1, "in")}})
	require.NoError(t, err)
	require.True(t, v.Bool())
}

func TestEvalDivisionByZeroErrors(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	_, err := e.evalExpr(ctx, &BinaryExpr{Op: "/", Left: &NumberLit{Value: UnitlessNumber(1)}, Right: &NumberLit{Value: UnitlessNumber(0)}})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, ZeroDivision, ce.Kind)
}

func TestEvalDivisionEmitsLegacySlashDeprecation(t *testing.T) {
	logger := &CollectingLogger{}
	e := NewEvaluator(logger, nil, 0, 250)
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &BinaryExpr{Op: "/", Left: &NumberLit{Value: UnitlessNumber(6)}, Right: &NumberLit{Value: UnitlessNumber(2)}})
	require.NoError(t, err)
	require.Equal(t, float64(3), v.Number().Value)
	require.Len(t, logger.Entries, 1)
	require.Equal(t, DiagDeprecation, logger.Entries[0].Kind)
}

func TestMathDivDoesNotEmitDeprecation(t *testing.T) {
	logger := &CollectingLogger{}
	e := NewEvaluator(logger, nil, 0, 250)

	v, err := callBuiltin(t, e, "math.div", num(6), num(2))
	require.NoError(t, err)
	require.Equal(t, float64(3), v.Number().Value)
	require.Empty(t, logger.Entries)
}

func TestEvalVariableUndefinedProducesCompileError(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	_, err := e.evalExpr(ctx, &Variable{Name: NewEnvKey("nope")})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, UndefinedName, ce.Kind)
}

func TestEvalListLitAndMapLit(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	v, err := e.evalExpr(ctx, &ListLit{Items: []Expr{&NumberLit{Value: UnitlessNumber(1)}, &NumberLit{Value: UnitlessNumber(2)}}, Sep: SepComma})
	require.NoError(t, err)
	require.Equal(t, "1, 2", v.String())

	mv, err := e.evalExpr(ctx, &MapLit{Pairs: []MapPair{
		{Key: &StringLit{Value: "a", Quoted: true}, Value: &NumberLit{Value: UnitlessNumber(1)}},
	}})
	require.NoError(t, err)
	require.Equal(t, 1, mv.Map().Len())
}

func TestEvalMapLitDuplicateKeyFails(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	_, err := e.evalExpr(ctx, &MapLit{Pairs: []MapPair{
		{Key: &StringLit{Value: "a"}, Value: &NumberLit{Value: UnitlessNumber(1)}},
		{Key: &StringLit{Value: "a"}, Value: &NumberLit{Value: UnitlessNumber(2)}},
	}})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, DuplicateKey, ce.Kind)
}

func TestEvalParentSelectorRefOutsideRuleFails(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := newTestModule()
	ctx := evalContext{module: m, frame: m.Root}

	_, err := e.evalExpr(ctx, &ParentSelectorRef{})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, TopLevelParent, ce.Kind)
}

func TestStringifyUnquotesQuotedStrings(t *testing.T) {
	require.Equal(t, "hi", stringify(StrV(QuotedStr("hi"))))
	require.Equal(t, "1", stringify(num(1)))
}
