package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringLengthCountsRunes(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.length", StrV(QuotedStr("héllo")))
	require.NoError(t, err)
	require.Equal(t, float64(5), v.Number().Value)
}

func TestStringUpperLowerPreserveQuoteFlag(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.to-upper-case", StrV(UnquotedStr("abc")))
	require.NoError(t, err)
	require.Equal(t, "ABC", v.Str().Text)
	require.False(t, v.Str().Quoted)

	v, err = callBuiltin(t, e, "to-lower-case", StrV(QuotedStr("ABC")))
	require.NoError(t, err)
	require.Equal(t, "abc", v.Str().Text)
	require.True(t, v.Str().Quoted)
}

func TestStringQuoteAndUnquote(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "quote", StrV(UnquotedStr("bold")))
	require.NoError(t, err)
	require.True(t, v.Str().Quoted)

	v, err = callBuiltin(t, e, "unquote", StrV(QuotedStr("bold")))
	require.NoError(t, err)
	require.False(t, v.Str().Quoted)
	require.Equal(t, "bold", v.Str().Text)
}

func TestStringIndexFindsOneBasedPosition(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.index", StrV(QuotedStr("hello")), StrV(QuotedStr("ll")))
	require.NoError(t, err)
	require.Equal(t, float64(3), v.Number().Value)
}

func TestStringIndexMissingSubstringReturnsNull(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.index", StrV(QuotedStr("hello")), StrV(QuotedStr("xyz")))
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestStringInsertAtStart(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.insert", StrV(QuotedStr("hello")), StrV(QuotedStr("XX")), num(1))
	require.NoError(t, err)
	require.Equal(t, "XXhello", v.Str().Text)
}

func TestStringInsertPastEndAppends(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.insert", StrV(QuotedStr("hello")), StrV(QuotedStr("XX")), num(6))
	require.NoError(t, err)
	require.Equal(t, "helloXX", v.Str().Text)
}

func TestStringSliceWithoutBoundsReturnsFromStartToEnd(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.slice", StrV(QuotedStr("hello")), num(2))
	require.NoError(t, err)
	require.Equal(t, "ello", v.Str().Text)
}

func TestStringSliceEmptyWhenStartNotBeforeEnd(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	v, err := callBuiltin(t, e, "string.slice", StrV(QuotedStr("hello")), num(4), num(2))
	require.NoError(t, err)
	require.Equal(t, "", v.Str().Text)
}
