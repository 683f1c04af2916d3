package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnquotedStringStringsItselfVerbatim(t *testing.T) {
	s := UnquotedStr("bold")
	require.Equal(t, "bold", s.String())
}

func TestQuotedStringEscapesQuotesAndBackslashes(t *testing.T) {
	s := QuotedStr(`say "hi"\now`)
	require.Equal(t, `"say \"hi\"\\now"`, s.String())
}

func TestLooksLikeIdentifierAcceptsHyphenAndUnderscore(t *testing.T) {
	require.True(t, UnquotedStr("foo-bar_baz").LooksLikeIdentifier())
	require.True(t, UnquotedStr("-foo").LooksLikeIdentifier())
}

func TestLooksLikeIdentifierRejectsLeadingDigit(t *testing.T) {
	require.False(t, UnquotedStr("1foo").LooksLikeIdentifier())
}

func TestLooksLikeIdentifierRejectsInternalSpace(t *testing.T) {
	require.False(t, UnquotedStr("foo bar").LooksLikeIdentifier())
}

func TestLooksLikeIdentifierRejectsEmpty(t *testing.T) {
	require.False(t, UnquotedStr("").LooksLikeIdentifier())
}

func TestStringEqualityQuoteFlagParticipatesViaValue(t *testing.T) {
	quoted := StrV(QuotedStr(""))
	unquoted := StrV(UnquotedStr(""))
	require.False(t, Equal(quoted, unquoted))
	require.True(t, Equal(quoted, StrV(QuotedStr(""))))
}
