package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null, false},
		{"false", BoolV(false), false},
		{"true", BoolV(true), true},
		{"zero", Value{Kind: KNumber, Data: UnitlessNumber(0)}, true},
		{"empty string", StrV(QuotedStr("")), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.v.Truthy())
		})
	}
}

func TestValueEqualQuoteFlagParticipates(t *testing.T) {
	quoted := StrV(QuotedStr(""))
	unquoted := StrV(UnquotedStr(""))
	require.False(t, Equal(quoted, unquoted), "quoted and unquoted empty strings must not be equal")
	require.True(t, Equal(quoted, StrV(QuotedStr(""))))
}

func TestValueEqualCrossKind(t *testing.T) {
	require.False(t, Equal(BoolV(true), Value{Kind: KNumber, Data: UnitlessNumber(1)}))
}

func TestIsInvisible(t *testing.T) {
	require.True(t, IsInvisible(Null))
	require.False(t, IsInvisible(BoolV(false)))

	bareEmpty := ListV(nil, SepComma, false)
	require.True(t, IsInvisible(bareEmpty), "bare empty list elides")

	bracketedEmpty := ListV(nil, SepComma, true)
	require.False(t, IsInvisible(bracketedEmpty), "bracketed empty list prints []")

	allInvisible := ListV([]Value{Null, Null}, SepComma, false)
	require.True(t, IsInvisible(allInvisible))

	mixed := ListV([]Value{Null, BoolV(true)}, SepComma, false)
	require.False(t, IsInvisible(mixed))
}

func TestValueTypeName(t *testing.T) {
	require.Equal(t, "number", Value{Kind: KNumber, Data: UnitlessNumber(1)}.TypeName())
	require.Equal(t, "arglist", ArgumentListV(NewArgumentList(nil, nil, SepComma)).TypeName())
}
