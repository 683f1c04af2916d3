package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sel(text string) Value { return StrV(QuotedStr(text)) }

func TestIsSuperselectorTrueWhenSuperContainsSub(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.is-superselector", sel(".a"), sel(".a.b"))
	require.NoError(t, err)
	require.True(t, v.Bool())

	v, err = callBuiltin(t, e, "is-superselector", sel(".a.b"), sel(".a"))
	require.NoError(t, err)
	require.False(t, v.Bool())
}

func TestSelectorUnifyCombinesCompatibleCompounds(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.unify", sel(".a"), sel(".b"))
	require.NoError(t, err)
	require.Equal(t, `.a.b`, v.String())
}

func TestSelectorUnifyReturnsNullWhenIncompatible(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector-unify", sel("div"), sel("span"))
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestSelectorNestResolvesParentReferences(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.nest", sel(".a"), sel("&.b"))
	require.NoError(t, err)
	require.Equal(t, `.a.b`, v.String())
}

func TestSelectorNestRequiresAtLeastOneArgument(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	_, err := callBuiltin(t, e, "selector.nest")
	require.Error(t, err)
}

func TestSelectorAppendGluesOntoRightmostCompoundWithoutCombinator(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.append", sel(".a"), sel("-suffix"))
	require.NoError(t, err)
	require.Equal(t, `.a-suffix`, v.String())
}

func TestSelectorReplaceSwapsOriginalForReplacementWhenTargetMatches(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	// ".a" is a superselector of ".a.b" (it matches everything ".a.b" does),
	// so the replacement takes effect.
	v, err := callBuiltin(t, e, "selector.replace", sel(".a"), sel(".a.b"), sel(".c"))
	require.NoError(t, err)
	require.Equal(t, `.c`, v.String())
}

func TestSelectorReplaceLeavesTargetUntouchedWhenNotASuperselector(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.replace", sel(".x"), sel(".a"), sel(".c"))
	require.NoError(t, err)
	require.Equal(t, `.x`, v.String())
}

func TestSimpleSelectorsSplitsOutEachCompoundPiece(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.simple-selectors", sel(".a.b"))
	require.NoError(t, err)
	require.Equal(t, `.a, .b`, v.String())
}

func TestSelectorParseRoundTripsSelectorText(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "selector.parse", sel(".a .b"))
	require.NoError(t, err)
	require.Equal(t, `.a .b`, v.String())
}
