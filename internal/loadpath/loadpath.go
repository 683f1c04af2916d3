// Package loadpath resolves a Sass @use/@forward/@import URL against a list
// of on-disk search roots (spec §4.2's loader indirection: Module.go's
// Loader type receives an already-canonical URL, and something upstream of
// the evaluator package has to turn "components/button" plus a load-path
// list into an actual file on disk).
//
// Grounded on daios-ai-msg/cmd/msg/main.go's `canon`-module file discovery
// (walking the filesystem from a path prefix), generalized with
// github.com/bmatcuk/doublestar/v4 for glob-based candidate matching
// (SPEC_FULL.md §11 names doublestar for load-path search) and with Sass's
// own partial/extension/index resolution order (spec glossary "Canonical
// URL"): for "foo/bar", try bar.scss, _bar.scss, bar.sass, _bar.sass,
// bar/_index.scss, bar/index.scss, in that order, against each root.
package loadpath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolver resolves a Sass module URL to an absolute file path by searching
// Roots in order (spec §4.2: "load paths are searched in the order they
// were configured; the first match wins").
type Resolver struct {
	Roots []string
}

func NewResolver(roots ...string) *Resolver {
	return &Resolver{Roots: roots}
}

// Resolve finds the on-disk file implementing url, trying every candidate
// filename libsass/dart-sass accept for a given URL segment (the partial
// `_name` prefix and the `.scss`/`.sass` extensions) against every root,
// returning the first that exists.
func (r *Resolver) Resolve(url string) (string, error) {
	for _, root := range r.Roots {
		for _, candidate := range candidates(url) {
			full := filepath.Join(root, candidate)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				return full, nil
			}
		}
	}
	return "", fmt.Errorf("could not find %q in any load path", url)
}

// ResolveGlob expands a load-path-relative glob (e.g. for a hypothetical
// `@use "components/*"` fan-out helper, or a CLI --update flag scanning an
// entire tree) using doublestar so `**` recursive globs work the way they
// do in every other doublestar-consuming tool in this ecosystem, not just
// filepath.Glob's single-level `*`.
func (r *Resolver) ResolveGlob(pattern string) ([]string, error) {
	var out []string
	for _, root := range r.Roots {
		matches, err := doublestar.Glob(os.DirFS(root), pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			out = append(out, filepath.Join(root, m))
		}
	}
	return out, nil
}

func candidates(url string) []string {
	dir, base := filepath.Split(url)
	ext := filepath.Ext(base)
	if ext == ".scss" || ext == ".sass" || ext == ".css" {
		return []string{url, dir + "_" + base}
	}
	var out []string
	for _, e := range []string{".scss", ".sass"} {
		out = append(out, dir+base+e, dir+"_"+base+e)
	}
	for _, e := range []string{".scss", ".sass"} {
		out = append(out, filepath.Join(url, "_index"+e), filepath.Join(url, "index"+e))
	}
	return out
}

// ReadFile loads and returns the raw bytes at path, a thin wrapper kept so
// Session (session.go) never imports os/io directly — every module file a
// Session reads goes through loadpath (LoadConfig in config.go reads its
// config file with os.ReadFile itself).
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
