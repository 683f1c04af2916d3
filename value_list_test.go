package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func num(v float64) Value { return Value{Kind: KNumber, Data: UnitlessNumber(v)} }

func TestListEqualityIncludesSeparatorAndBracket(t *testing.T) {
	a := NewList([]Value{num(1), num(2)}, SepComma, false)
	b := NewList([]Value{num(1), num(2)}, SepSpace, false)
	require.False(t, listsEqual(a, b), "comma vs space list must differ")

	c := NewList([]Value{num(1), num(2)}, SepComma, true)
	require.False(t, listsEqual(a, c), "bracketed vs unbracketed must differ")

	d := NewList([]Value{num(1), num(2)}, SepComma, false)
	require.True(t, listsEqual(a, d))
}

func TestListString(t *testing.T) {
	require.Equal(t, "1, 2", NewList([]Value{num(1), num(2)}, SepComma, false).String())
	require.Equal(t, "[1 2]", NewList([]Value{num(1), num(2)}, SepSpace, true).String())
}
