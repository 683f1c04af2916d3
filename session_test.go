package sass

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubParser ignores src entirely and returns a canned AST keyed by the
// path NewSession's Resolver handed back, standing in for a real SCSS
// front end the same way fakeFS does in module_test.go.
func stubParser(trees map[string][]Stmt) Parser {
	return func(src []byte, path string) ([]Stmt, error) {
		return trees[filepath.Base(path)], nil
	}
}

func TestSessionCompileResolvesAgainstLoadPathsAndEvaluatesModuleBody(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.scss"), []byte("(irrelevant, parser is stubbed)"), 0o644))

	trees := map[string][]Stmt{
		"app.scss": {
			&StyleRule{
				Selector: &StringLit{Value: "body"},
				Body:     []Stmt{&Declaration{Name: &StringLit{Value: "color"}, Value: &StringLit{Value: "red"}}},
			},
		},
	}

	cfg := DefaultConfig()
	cfg.LoadPaths = []string{dir}
	s := NewSession(cfg, stubParser(trees), nil)

	root, err := s.Compile("app")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	rule, ok := root.Children[0].(*CSSStyleRule)
	require.True(t, ok)
	require.Equal(t, "body", rule.Selector.String())
}

func TestSessionCompileSharesModuleRegistryCacheAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shared.scss"), []byte(""), 0o644))

	loadCount := 0
	trees := map[string][]Stmt{"shared.scss": {}}
	parse := func(src []byte, path string) ([]Stmt, error) {
		loadCount++
		return trees[filepath.Base(path)], nil
	}

	cfg := DefaultConfig()
	cfg.LoadPaths = []string{dir}
	s := NewSession(cfg, parse, nil)

	_, err := s.Compile("shared")
	require.NoError(t, err)
	_, err = s.Compile("shared")
	require.NoError(t, err)
	require.Equal(t, 1, loadCount, "the second Compile call reuses the already-compiled module")
}

func TestSessionCompileMissingFileReturnsModuleNotFound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoadPaths = []string{t.TempDir()}
	s := NewSession(cfg, stubParser(nil), nil)

	_, err := s.Compile("missing")
	require.Error(t, err)
}

func TestNewSessionFallsBackToDefaultConfigAndDiscardLogger(t *testing.T) {
	s := NewSession(nil, stubParser(nil), nil)
	require.Equal(t, DefaultConfig().MaxCallDepth, s.Config.MaxCallDepth)
	require.IsType(t, DiscardLogger{}, s.Logger)
}
