package sass

import "fmt"

// ValueKind discriminates the tagged union described in spec §3 ("Value").
//
// Grounded on daios-ai-msg/interpreter.go's ValueTag: a single discriminant
// field plus an `any` payload, rather than an interface-per-case hierarchy.
// Sass values are simpler to dispatch with one switch than to satisfy with
// a dozen tiny interface implementations, and it keeps equality/truthiness
// centralized the way the teacher centralizes them on Value.
type ValueKind int

const (
	KNull ValueKind = iota
	KBool
	KNumber
	KColor
	KString
	KList
	KMap
	KFunction
	KMixin
	KArgumentList
)

func (k ValueKind) String() string {
	switch k {
	case KNull:
		return "null"
	case KBool:
		return "bool"
	case KNumber:
		return "number"
	case KColor:
		return "color"
	case KString:
		return "string"
	case KList:
		return "list"
	case KMap:
		return "map"
	case KFunction:
		return "function"
	case KMixin:
		return "mixin"
	case KArgumentList:
		return "arglist"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier for Sass expression results.
// Values are immutable: every "mutation" (list append, map insert, unit
// conversion) constructs a new Value. Data holds the Kind-specific payload:
//
//	KNull          nil
//	KBool          bool
//	KNumber        Number
//	KColor         Color
//	KString        Str
//	KList          *List
//	KMap           *OrderedMap
//	KFunction      *Closure
//	KMixin         *Closure
//	KArgumentList  *ArgumentList
type Value struct {
	Kind ValueKind
	Data any
}

var Null = Value{Kind: KNull}

func BoolV(b bool) Value { return Value{Kind: KBool, Data: b} }

func (v Value) IsNull() bool { return v.Kind == KNull }

// Truthy implements spec §4.3: false and null are falsy, everything else
// (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KNull:
		return false
	case KBool:
		return v.Data.(bool)
	default:
		return true
	}
}

func (v Value) Bool() bool {
	if v.Kind == KBool {
		return v.Data.(bool)
	}
	return v.Truthy()
}

func (v Value) Number() Number {
	n, _ := v.Data.(Number)
	return n
}

func (v Value) Color() Color {
	c, _ := v.Data.(Color)
	return c
}

func (v Value) Str() Str {
	s, _ := v.Data.(Str)
	return s
}

func (v Value) List() *List {
	l, _ := v.Data.(*List)
	return l
}

func (v Value) Map() *OrderedMap {
	m, _ := v.Data.(*OrderedMap)
	return m
}

func (v Value) Closure() *Closure {
	c, _ := v.Data.(*Closure)
	return c
}

func (v Value) ArgumentList() *ArgumentList {
	a, _ := v.Data.(*ArgumentList)
	return a
}

// TypeName is the Sass-visible type name used by error messages and
// type-of()/meta builtins.
func (v Value) TypeName() string {
	switch v.Kind {
	case KNull:
		return "null"
	case KBool:
		return "bool"
	case KNumber:
		return "number"
	case KColor:
		return "color"
	case KString:
		return "string"
	case KList:
		if v.List().Bracketed {
			return "list"
		}
		return "list"
	case KMap:
		return "map"
	case KFunction:
		return "function"
	case KMixin:
		return "mixin"
	case KArgumentList:
		return "arglist"
	default:
		return "unknown"
	}
}

// Equal implements value-equality per spec §3/§4.3: structural equality,
// with Number equality defined via unit-aware comparison (value_number.go)
// rather than raw field comparison. List/Map identity includes separator
// and bracket flag (§3 invariant) and map-key equality (§3: "value-equality
// keys").
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		// Int-like numbers compare across representations already handled
		// inside KNumber; cross-kind is never equal.
		return false
	}
	switch a.Kind {
	case KNull:
		return true
	case KBool:
		return a.Data.(bool) == b.Data.(bool)
	case KNumber:
		return NumbersEqual(a.Number(), b.Number())
	case KColor:
		return ColorsEqual(a.Color(), b.Color())
	case KString:
		// A quoted empty string is distinct from an unquoted empty string
		// (spec §4.3): quote flag participates in equality.
		return a.Str().Quoted == b.Str().Quoted && a.Str().Text == b.Str().Text
	case KList:
		return listsEqual(a.List(), b.List())
	case KMap:
		return mapsEqual(a.Map(), b.Map())
	case KFunction, KMixin:
		return a.Closure() == b.Closure()
	case KArgumentList:
		return a.ArgumentList() == b.ArgumentList()
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KNull:
		return "null"
	case KBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case KNumber:
		return v.Number().String()
	case KColor:
		return v.Color().String()
	case KString:
		return v.Str().String()
	case KList:
		return v.List().String()
	case KMap:
		return v.Map().String()
	case KFunction:
		return fmt.Sprintf("<function %s>", v.Closure().Name)
	case KMixin:
		return fmt.Sprintf("<mixin %s>", v.Closure().Name)
	case KArgumentList:
		return v.ArgumentList().List.String()
	default:
		return "<unknown>"
	}
}

// IsInvisible reports whether a value would elide its declaration (spec
// §4.5 Declaration semantics): null, or a list whose every element is
// itself invisible.
func IsInvisible(v Value) bool {
	if v.IsNull() {
		return true
	}
	if v.Kind == KList {
		l := v.List()
		if len(l.Items) == 0 {
			return !l.Bracketed // bracketed empty list prints "[]"; bare () elides
		}
		for _, it := range l.Items {
			if !IsInvisible(it) {
				return false
			}
		}
		return true
	}
	return false
}
