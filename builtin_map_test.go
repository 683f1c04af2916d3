package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleMap() Value {
	m := NewOrderedMap()
	m.Set(StrV(UnquotedStr("a")), num(1))
	m.Set(StrV(UnquotedStr("b")), num(2))
	return MapV(m)
}

func TestMapGetAndHasKey(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := sampleMap()

	v, err := callBuiltin(t, e, "map.get", m, StrV(UnquotedStr("a")))
	require.NoError(t, err)
	require.Equal(t, float64(1), v.Number().Value)

	v, err = callBuiltin(t, e, "map-get", m, StrV(UnquotedStr("missing")))
	require.NoError(t, err)
	require.True(t, v.IsNull())

	has, err := callBuiltin(t, e, "map.has-key", m, StrV(UnquotedStr("b")))
	require.NoError(t, err)
	require.True(t, has.Bool())
}

func TestMapKeysAndValuesPreserveInsertionOrder(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := sampleMap()

	keys, err := callBuiltin(t, e, "map.keys", m)
	require.NoError(t, err)
	require.Equal(t, "a, b", keys.String())

	values, err := callBuiltin(t, e, "map.values", m)
	require.NoError(t, err)
	require.Equal(t, "1, 2", values.String())
}

func TestMapMergeLaterMapsOverwriteEarlierKeys(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	first := sampleMap()
	override := NewOrderedMap()
	override.Set(StrV(UnquotedStr("a")), num(99))
	second := MapV(override)

	merged, err := callBuiltin(t, e, "map.merge", first, second)
	require.NoError(t, err)
	v, ok := merged.Map().Get(StrV(UnquotedStr("a")))
	require.True(t, ok)
	require.Equal(t, float64(99), v.Number().Value)
}

func TestMapRemoveDropsKeysWithoutMutatingOriginal(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := sampleMap()

	removed, err := callBuiltin(t, e, "map.remove", m, StrV(UnquotedStr("a")))
	require.NoError(t, err)
	_, ok := removed.Map().Get(StrV(UnquotedStr("a")))
	require.False(t, ok)
	_, stillThere := m.Map().Get(StrV(UnquotedStr("a")))
	require.True(t, stillThere, "map.remove must not mutate its input")
}

func TestMapSetAddsOrOverwritesWithoutMutatingOriginal(t *testing.T) {
	e := newTestEvaluatorNoLoader()
	m := sampleMap()

	out, err := callBuiltin(t, e, "map.set", m, StrV(UnquotedStr("c")), num(3))
	require.NoError(t, err)
	v, ok := out.Map().Get(StrV(UnquotedStr("c")))
	require.True(t, ok)
	require.Equal(t, float64(3), v.Number().Value)
	require.Equal(t, 2, m.Map().Len(), "original map keeps its original size")
}
