package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSelectorTextSimpleCompound(t *testing.T) {
	list := ParseSelectorText(".foo.bar")
	require.Len(t, list.Complexes, 1)
	cp := list.Complexes[0].Compounds()
	require.Len(t, cp, 1)
	require.Len(t, cp[0].Simples, 2)
	require.Equal(t, SimpleClass, cp[0].Simples[0].Kind)
	require.Equal(t, "foo", cp[0].Simples[0].Name)
	require.Equal(t, "bar", cp[0].Simples[1].Name)
}

func TestParseSelectorTextCombinators(t *testing.T) {
	list := ParseSelectorText("div > p + span ~ a")
	require.Len(t, list.Complexes, 1)
	comps := list.Complexes[0].Compounds()
	require.Len(t, comps, 4)

	comb1, _ := list.Complexes[0].CombinatorBefore(1)
	require.Equal(t, CombinatorChild, comb1)
	comb2, _ := list.Complexes[0].CombinatorBefore(2)
	require.Equal(t, CombinatorNextSibling, comb2)
	comb3, _ := list.Complexes[0].CombinatorBefore(3)
	require.Equal(t, CombinatorSubsequentSibling, comb3)
}

func TestParseSelectorTextCommaList(t *testing.T) {
	list := ParseSelectorText(".a, .b")
	require.Len(t, list.Complexes, 2)
}

func TestParseSelectorTextIDAndAttribute(t *testing.T) {
	list := ParseSelectorText(`a#main[href^="https"]`)
	cp := list.Complexes[0].Compounds()[0]
	require.Equal(t, SimpleType, cp.Simples[0].Kind)
	require.Equal(t, SimpleID, cp.Simples[1].Kind)
	require.Equal(t, "main", cp.Simples[1].Name)
	require.Equal(t, SimpleAttribute, cp.Simples[2].Kind)
	require.Equal(t, "href", cp.Simples[2].Name)
	require.Equal(t, "^=", cp.Simples[2].AttrOp)
	require.Equal(t, "https", cp.Simples[2].AttrValue)
}

func TestParseSelectorTextFunctionalPseudo(t *testing.T) {
	list := ParseSelectorText(".a:not(.b, .c)")
	cp := list.Complexes[0].Compounds()[0]
	pseudo := cp.Simples[1]
	require.Equal(t, SimplePseudo, pseudo.Kind)
	require.Equal(t, "not", pseudo.Name)
	require.NotNil(t, pseudo.Selector)
	require.Len(t, pseudo.Selector.Complexes, 2)
}

func TestParseSelectorTextPlaceholderAndParent(t *testing.T) {
	list := ParseSelectorText("%button")
	require.Equal(t, SimplePlaceholder, list.Complexes[0].Compounds()[0].Simples[0].Kind)

	parentList := ParseSelectorText("&.active")
	cp := parentList.Complexes[0].Compounds()[0]
	require.Equal(t, SimpleParent, cp.Simples[0].Kind)
	require.Equal(t, SimpleClass, cp.Simples[1].Kind)
}

func TestResolveParentImplicitNesting(t *testing.T) {
	parent := ParseSelectorText(".card")
	child := ParseSelectorText(".title")
	resolved := child.ResolveParent(parent)
	require.Equal(t, ".card .title", resolved.String())
}

func TestResolveParentExplicitAmpersand(t *testing.T) {
	parent := ParseSelectorText(".card")
	child := ParseSelectorText("&.active")
	resolved := child.ResolveParent(parent)
	require.Equal(t, ".card.active", resolved.String())
}

func TestResolveParentNilParentLeavesUnchanged(t *testing.T) {
	child := ParseSelectorText(".title")
	resolved := child.ResolveParent(nil)
	require.Equal(t, ".title", resolved.String())
}

func TestSpecificityOrderingIDBeatsClassBeatsType(t *testing.T) {
	id := SimpleMinSpecificity(SimpleSelector{Kind: SimpleID})
	class := SimpleMinSpecificity(SimpleSelector{Kind: SimpleClass})
	typ := SimpleMinSpecificity(SimpleSelector{Kind: SimpleType})

	require.True(t, id.Compare(class) > 0)
	require.True(t, class.Compare(typ) > 0)
}

func TestIsSuperselectorListBasic(t *testing.T) {
	a := ParseSelectorText(".a")
	ab := ParseSelectorText(".a.b")
	require.True(t, IsSuperselectorList(a, ab), ".a must be a superselector of .a.b")
	require.False(t, IsSuperselectorList(ab, a), ".a.b is not a superselector of .a")
}

func TestIsSuperselectorComplexDescendantSkipsIntermediate(t *testing.T) {
	super := ParseSelectorText(".a .c")
	sub := ParseSelectorText(".a .b .c")
	require.True(t, IsSuperselectorComplex(super.Complexes[0], sub.Complexes[0]))
}

func TestIsSuperselectorComplexChildRequiresAdjacency(t *testing.T) {
	super := ParseSelectorText(".a > .c")
	sub := ParseSelectorText(".a .b .c")
	require.False(t, IsSuperselectorComplex(super.Complexes[0], sub.Complexes[0]))
}

func TestUnifyCompoundsIncompatibleTypes(t *testing.T) {
	a := ParseSelectorText("div").Complexes[0].Compounds()[0]
	b := ParseSelectorText("span").Complexes[0].Compounds()[0]
	require.Nil(t, UnifyCompounds(a, b))
}

func TestUnifyCompoundsMergesClasses(t *testing.T) {
	a := ParseSelectorText("div.a").Complexes[0].Compounds()[0]
	b := ParseSelectorText(".b").Complexes[0].Compounds()[0]
	result := UnifyCompounds(a, b)
	require.Len(t, result, 1)
	require.Equal(t, "div.a.b", result[0].String())
}

func TestUnifyCompoundsIncompatiblePseudoElements(t *testing.T) {
	a := ParseSelectorText("::before").Complexes[0].Compounds()[0]
	b := ParseSelectorText("::after").Complexes[0].Compounds()[0]
	require.Nil(t, UnifyCompounds(a, b))
}
