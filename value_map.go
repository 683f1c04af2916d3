package sass

import "strings"

// OrderedMap is a Sass map: insertion-ordered, with value-equality keys
// (spec §3: "insertion-ordered key→value with value-equality keys"). Map
// keys may be any Sass value (numbers, colors, lists, ...), not just
// strings, so lookup can't be a plain Go map keyed by Value. Grounded on
// daios-ai-msg/interpreter.go's MapObject (Entries + Keys for insertion
// order) generalized from string keys to value keys: entries are held in a
// slice, and a hash index (keyed by a cheap string digest) narrows lookup
// to a short candidate list before falling back to Equal.
type OrderedMap struct {
	entries []mapEntry
	index   map[string][]int
}

type mapEntry struct {
	Key Value
	Val Value
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: map[string][]int{}}
}

func MapV(m *OrderedMap) Value { return Value{Kind: KMap, Data: m} }

func keyDigest(v Value) string {
	// Cheap, collision-tolerant digest: Kind + String(). Collisions are
	// resolved by Equal in Get/Set, so this only needs to bucket well, not
	// be unique.
	var b strings.Builder
	b.WriteString(v.Kind.String())
	b.WriteByte(':')
	b.WriteString(v.String())
	return b.String()
}

// Get returns the value for key and whether it is present.
func (m *OrderedMap) Get(key Value) (Value, bool) {
	for _, i := range m.index[keyDigest(key)] {
		if Equal(m.entries[i].Key, key) {
			return m.entries[i].Val, true
		}
	}
	return Null, false
}

// Set inserts or updates key→val. Re-setting an existing key preserves its
// original position (spec §8: "map-merge... leaves keys(m) unchanged" for
// already-present keys); a new key is appended.
func (m *OrderedMap) Set(key, val Value) {
	d := keyDigest(key)
	for _, i := range m.index[d] {
		if Equal(m.entries[i].Key, key) {
			m.entries[i].Val = val
			return
		}
	}
	m.index[d] = append(m.index[d], len(m.entries))
	m.entries = append(m.entries, mapEntry{Key: key, Val: val})
}

// Delete removes key if present, preserving order of the remainder.
func (m *OrderedMap) Delete(key Value) {
	d := keyDigest(key)
	for pos, i := range m.index[d] {
		if Equal(m.entries[i].Key, key) {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.index = rebuildIndex(m.entries)
			_ = pos
			return
		}
	}
}

func rebuildIndex(entries []mapEntry) map[string][]int {
	idx := map[string][]int{}
	for i, e := range entries {
		d := keyDigest(e.Key)
		idx[d] = append(idx[d], i)
	}
	return idx
}

func (m *OrderedMap) Len() int { return len(m.entries) }

// Keys returns keys in insertion order.
func (m *OrderedMap) Keys() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Each calls fn for every entry in insertion order.
func (m *OrderedMap) Each(fn func(k, v Value)) {
	for _, e := range m.entries {
		fn(e.Key, e.Val)
	}
}

// Clone returns a shallow copy; Sass maps are immutable from the language's
// point of view, so every mutating builtin (map.set, map.merge, ...) clones
// first.
func (m *OrderedMap) Clone() *OrderedMap {
	out := NewOrderedMap()
	m.Each(func(k, v Value) { out.Set(k, v) })
	return out
}

func mapsEqual(a, b *OrderedMap) bool {
	if a.Len() != b.Len() {
		return false
	}
	eq := true
	a.Each(func(k, v Value) {
		bv, ok := b.Get(k)
		if !ok || !Equal(v, bv) {
			eq = false
		}
	})
	return eq
}

func (m *OrderedMap) String() string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	m.Each(func(k, v Value) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(k.String())
		b.WriteString(": ")
		b.WriteString(v.String())
	})
	b.WriteByte(')')
	return b.String()
}
