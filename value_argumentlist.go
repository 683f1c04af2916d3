package sass

// ArgumentList is a List plus a trailing keyword map (spec §3), produced by
// a `$args...` rest parameter and consumable either positionally (as its
// List) or by keyword (its Keywords map) when forwarded to another call
// via `...`.
type ArgumentList struct {
	List     *List
	Keywords *OrderedMap // string keys wrapped as KString Values
}

func NewArgumentList(positional []Value, keywords *OrderedMap, sep Separator) *ArgumentList {
	if keywords == nil {
		keywords = NewOrderedMap()
	}
	return &ArgumentList{List: NewList(positional, sep, false), Keywords: keywords}
}

func ArgumentListV(a *ArgumentList) Value { return Value{Kind: KArgumentList, Data: a} }
