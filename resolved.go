package sass

// This file defines the resolved tree the evaluator produces: plain CSS
// structure with every Sass construct (variables, control flow, mixins,
// nesting) already evaluated away, leaving only rules, declarations, and
// at-rules (spec §4.5 "Statement evaluation" output contract). A separate
// serializer (out of scope per spec §1) would walk this tree to produce
// CSS text; tests in eval_stmt_test.go assert against the tree shape
// directly, the way daios-ai-msg's tests assert against its Value tree
// rather than rendered text.

// CSSNode is any node of the resolved output tree.
type CSSNode interface{ cssNode() }

// CSSRoot is the top-level container a compile produces.
type CSSRoot struct {
	Children []CSSNode
}

// CSSStyleRule is a resolved selector plus its flattened declarations and
// nested rules (already hoisted/flattened per spec §4.5's nesting rules).
type CSSStyleRule struct {
	Selector *SelectorList
	Children []CSSNode
	Span     SourceSpan
}

func (*CSSStyleRule) cssNode() {}

// CSSDeclaration is a resolved `property: value` pair. Invisible values
// (spec §4.5, IsInvisible in value.go) never reach this stage — the
// evaluator elides them before emitting.
type CSSDeclaration struct {
	Property  string
	Value     string
	Important bool // trailing `!important`
	Span      SourceSpan
}

func (*CSSDeclaration) cssNode() {}

// CSSAtRule is a generic resolved at-rule (`@font-face`, `@keyframes`, a
// plain `@media`/`@supports` once its query/condition text is resolved, or
// any at-rule this evaluator doesn't special-case).
type CSSAtRule struct {
	Name     string
	Params   string
	Children []CSSNode // nil for a prelude-only at-rule like @charset
	Span     SourceSpan
}

func (*CSSAtRule) cssNode() {}

// CSSComment is a loud comment (`/*! ... */` or `/* ... */` surviving
// compilation) preserved verbatim in the output tree.
type CSSComment struct {
	Text string
	Span SourceSpan
}

func (*CSSComment) cssNode() {}
