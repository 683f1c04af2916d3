package sass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalUseBindsModuleUnderDefaultNamespace(t *testing.T) {
	fs := fakeFS{
		"colors": {&AssignStmt{Name: NewEnvKey("shade"), Value: &NumberLit{Value: UnitlessNumber(3)}}},
		"app":    {},
	}
	e := newTestEvaluator(fs)
	app, err := e.Registry.Load("app", nil, e.Loader, SourceSpan{})
	require.NoError(t, err)

	ctx := evalContext{module: app, frame: app.Root}
	err = e.evalUse(ctx, &UseStmt{URL: "colors"})
	require.NoError(t, err)

	mod, ok := app.Namespaces.Resolve("colors")
	require.True(t, ok)
	v, err := mod.Lookup("shade", NSVariable)
	require.NoError(t, err)
	require.Equal(t, float64(3), v.Number().Value)
}

func TestEvalUseHonorsExplicitNamespace(t *testing.T) {
	fs := fakeFS{"colors": {}, "app": {}}
	e := newTestEvaluator(fs)
	app, err := e.Registry.Load("app", nil, e.Loader, SourceSpan{})
	require.NoError(t, err)

	ctx := evalContext{module: app, frame: app.Root}
	err = e.evalUse(ctx, &UseStmt{URL: "colors", Namespace: "c"})
	require.NoError(t, err)

	_, ok := app.Namespaces.Resolve("c")
	require.True(t, ok)
	_, ok = app.Namespaces.Resolve("colors")
	require.False(t, ok, "an explicit namespace replaces the default basename one")
}

func TestEvalUseStarNamespaceMergesIntoGlobalLookup(t *testing.T) {
	fs := fakeFS{
		"colors": {&AssignStmt{Name: NewEnvKey("shade"), Value: &NumberLit{Value: UnitlessNumber(7)}}},
		"app":    {},
	}
	e := newTestEvaluator(fs)
	app, err := e.Registry.Load("app", nil, e.Loader, SourceSpan{})
	require.NoError(t, err)

	ctx := evalContext{module: app, frame: app.Root}
	require.NoError(t, e.evalUse(ctx, &UseStmt{URL: "colors", Namespace: "*"}))

	v, ok := app.Namespaces.LookupGlobal("shade", NSVariable)
	require.True(t, ok)
	require.Equal(t, float64(7), v.Number().Value)
}

func TestEvalForwardExposesTargetModuleMembersUnprefixed(t *testing.T) {
	fs := fakeFS{
		"internal": {&AssignStmt{Name: NewEnvKey("size"), Value: &NumberLit{Value: UnitlessNumber(1)}}},
		"lib":      {},
	}
	e := newTestEvaluator(fs)
	lib, err := e.Registry.Load("lib", nil, e.Loader, SourceSpan{})
	require.NoError(t, err)

	ctx := evalContext{module: lib, frame: lib.Root}
	require.NoError(t, e.evalForward(ctx, &ForwardStmt{URL: "internal"}))

	v, err := lib.Lookup("size", NSVariable)
	require.NoError(t, err)
	require.Equal(t, float64(1), v.Number().Value)
}

func TestEvalForwardAppliesPrefix(t *testing.T) {
	fs := fakeFS{
		"internal": {&AssignStmt{Name: NewEnvKey("size"), Value: &NumberLit{Value: UnitlessNumber(1)}}},
		"lib":      {},
	}
	e := newTestEvaluator(fs)
	lib, err := e.Registry.Load("lib", nil, e.Loader, SourceSpan{})
	require.NoError(t, err)

	ctx := evalContext{module: lib, frame: lib.Root}
	require.NoError(t, e.evalForward(ctx, &ForwardStmt{URL: "internal", Prefix: "box-"}))

	_, err = lib.Lookup("size", NSVariable)
	require.Error(t, err, "unprefixed name is no longer exposed once a prefix is set")

	v, err := lib.Lookup("box-size", NSVariable)
	require.NoError(t, err)
	require.Equal(t, float64(1), v.Number().Value)
}

func TestEvalForwardHideFilterBlocksNamedMember(t *testing.T) {
	fs := fakeFS{
		"internal": {
			&AssignStmt{Name: NewEnvKey("size"), Value: &NumberLit{Value: UnitlessNumber(1)}},
			&AssignStmt{Name: NewEnvKey("weight"), Value: &NumberLit{Value: UnitlessNumber(2)}},
		},
		"lib": {},
	}
	e := newTestEvaluator(fs)
	lib, err := e.Registry.Load("lib", nil, e.Loader, SourceSpan{})
	require.NoError(t, err)

	ctx := evalContext{module: lib, frame: lib.Root}
	require.NoError(t, e.evalForward(ctx, &ForwardStmt{
		URL:    "internal",
		Filter: ShowHide{Mode: FilterHide, Vars: []string{"size"}},
	}))

	_, err = lib.Lookup("size", NSVariable)
	require.Error(t, err)
	v, err := lib.Lookup("weight", NSVariable)
	require.NoError(t, err)
	require.Equal(t, float64(2), v.Number().Value)
}

func TestEvalImportMergesStatementsDirectlyIntoImporterFrame(t *testing.T) {
	fs := fakeFS{"partial": {&AssignStmt{Name: NewEnvKey("x"), Value: &NumberLit{Value: UnitlessNumber(9)}}}}
	e := newTestEvaluator(fs)
	frame := NewModuleRootFrame(nil)
	var out []CSSNode
	ctx := evalContext{module: &Module{Root: frame}, frame: frame, output: &out}

	require.NoError(t, e.evalImport(ctx, &ImportStmt{URL: "partial"}))

	v, err := frame.Lookup(NewEnvKey("x"), NSVariable)
	require.NoError(t, err)
	require.Equal(t, float64(9), v.Number().Value)
}

func TestEvalImportMissingFileErrors(t *testing.T) {
	e := newTestEvaluator(fakeFS{})
	frame := NewModuleRootFrame(nil)
	var out []CSSNode
	ctx := evalContext{module: &Module{Root: frame}, frame: frame, output: &out}

	err := e.evalImport(ctx, &ImportStmt{URL: "missing"})
	require.Error(t, err)
	ce, ok := err.(*CompileError)
	require.True(t, ok)
	require.Equal(t, ModuleNotFound, ce.Kind)
}
