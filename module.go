package sass

// This file implements the module system (spec §4.2): Module, the unit of
// compilation keyed by canonical URL, and ModuleRegistry, the
// load-once/cache-by-URL loader behind @use/@forward/@import.
//
// Grounded on daios-ai-msg/modules.go's Module/ImportFile pattern (cache by
// resolved path, cycle detection via an in-progress set, one compiled
// Module reused across every importer) generalised with Sass's with-config
// and show/hide forwarding rules (spec §4.2), and on
// github.com/hashicorp/golang-lru/v2 for the bounded compiled-module cache
// named in SPEC_FULL.md §11 (a long-running watch/build-server session
// should not keep every transitively-visited partial's Frame alive
// forever).

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// forwardedSource records one @forward'd module together with its prefix
// and show/hide filter, so a later @use of *this* module can re-expose the
// forwarded names (spec §4.2 "@forward... composes: anything the forwarded
// module exposes becomes visible through this module too, subject to the
// filter").
type forwardedSource struct {
	Module *Module
	Prefix string
	Filter ShowHide
}

// Module is one compiled stylesheet: its own top-level frame plus whatever
// it forwards from other modules (spec §3 "Module").
type Module struct {
	URL        string
	Root       *Frame
	Forwards   []forwardedSource
	Namespaces *NamespaceTable // this module's own @use bindings (spec §4.2: local to the declaring file)
	Output     []CSSNode       // this module's own top-level resolved CSS, set once by EvalModuleBody

	withConfig *WithConfig

	compiling bool // true while on the call stack — guards against @use cycles
	compiled  bool
}

// Loader resolves a canonical module URL to its parsed top-level statement
// list; the caller (typically Session, session.go) supplies load-path
// search and file I/O (internal/loadpath) since the evaluator package has
// no filesystem dependency of its own.
type Loader func(canonicalURL string) ([]Stmt, error)

// ModuleRegistry is the load-once cache behind every @use/@forward/@import
// in a compile session (spec §4.2 "a module is compiled once per session
// and every importer shares the compiled result").
type ModuleRegistry struct {
	byURL     map[string]*Module
	cache     *lru.Cache[string, *Module]
	eval      *Evaluator
	loadOrder []string
}

// NewModuleRegistry builds a registry bounded to capacity compiled modules;
// capacity <= 0 disables the LRU bound and keeps every module forever
// (suitable for a one-shot CLI compile where nothing is reused across
// runs).
func NewModuleRegistry(eval *Evaluator, capacity int) *ModuleRegistry {
	r := &ModuleRegistry{byURL: map[string]*Module{}, eval: eval}
	if capacity > 0 {
		c, err := lru.NewWithEvict[string, *Module](capacity, func(url string, _ *Module) {
			delete(r.byURL, url)
		})
		if err == nil {
			r.cache = c
		}
	}
	return r
}

func (r *ModuleRegistry) remember(url string, m *Module) {
	if _, existed := r.byURL[url]; !existed {
		r.loadOrder = append(r.loadOrder, url)
	}
	r.byURL[url] = m
	if r.cache != nil {
		r.cache.Add(url, m)
	}
}

func (r *ModuleRegistry) find(url string) (*Module, bool) {
	if r.cache != nil {
		if m, ok := r.cache.Get(url); ok {
			return m, true
		}
	}
	m, ok := r.byURL[url]
	return m, ok
}

// Load returns the compiled Module for url, compiling it via load on first
// use (spec §4.2 steps 1-6):
//
//  1. If already compiled with no withCfg requested, return the cached
//     module.
//  2. If already compiled and withCfg is non-empty, that is a
//     reconfigure-after-use error — Sass modules are configured only the
//     first time they're loaded (original_source/src/ast_imports.hpp
//     throws "already loaded" for exactly this case).
//  3. If currently compiling (on the call stack), that's an @use cycle.
//  4. Otherwise parse via load, push a fresh module-root frame, push the
//     WithConfig (if any) so !default assignments can consume it, evaluate
//     the body, and report any with-config keys left unconsumed.
func (r *ModuleRegistry) Load(url string, withCfg *WithConfig, load Loader, span SourceSpan) (*Module, error) {
	if m, ok := r.find(url); ok {
		if m.compiling {
			return nil, NewCompileError(ModuleCycle, "module loop: "+url, span)
		}
		if withCfg != nil && len(withCfg.values) > 0 {
			return nil, NewCompileError(ReconfigureAfterUse, url+" was already loaded, so it can't be configured using \"with\"", span)
		}
		return m, nil
	}

	stmts, err := load(url)
	if err != nil {
		return nil, NewCompileError(ModuleNotFound, err.Error(), span)
	}

	m := &Module{URL: url, Root: NewModuleRootFrame(nil), Namespaces: NewNamespaceTable(), withConfig: withCfg, compiling: true}
	r.remember(url, m)

	if err := r.eval.EvalModuleBody(m, stmts); err != nil {
		delete(r.byURL, url)
		return nil, err
	}
	m.compiling = false
	m.compiled = true

	if withCfg != nil {
		if leftover := withCfg.Unconsumed(); len(leftover) > 0 {
			return nil, NewCompileError(UnknownWithConfigKey, "$"+leftover[0]+" was not found in "+url, span)
		}
	}
	return m, nil
}

// exposed looks up name in this module's own root frame, falling back to
// whatever it forwards (spec §4.2 "@forward... composes"), honoring each
// forwarded source's prefix and show/hide filter. Namespace-qualified
// lookups (`ns.$x`) call this on the target Module directly; unqualified
// lookups never call it (those resolve through the ordinary Frame chain).
func (m *Module) exposed(name string, ns Namespace) (Value, bool) {
	if v, err := m.Root.Lookup(NewEnvKey(name), ns); err == nil {
		if m.Root.HasLocal(NewEnvKey(name), ns) {
			return v, true
		}
	}
	for _, fw := range m.Forwards {
		local := name
		if fw.Prefix != "" {
			if len(local) <= len(fw.Prefix) || local[:len(fw.Prefix)] != fw.Prefix {
				continue
			}
			local = local[len(fw.Prefix):]
		}
		if !fw.Filter.allows(local, ns) {
			continue
		}
		if v, ok := fw.Module.exposed(local, ns); ok {
			return v, true
		}
	}
	return Value{}, false
}

// allows implements the show/hide semantics of ShowHide for one candidate
// name within a given namespace (spec §4.2 "@forward ... show/hide").
func (s ShowHide) allows(name string, ns Namespace) bool {
	list := func(names []string) bool {
		for _, n := range names {
			if NewEnvKey(n).String() == NewEnvKey(name).String() {
				return true
			}
		}
		return false
	}
	var bucket []string
	switch ns {
	case NSVariable:
		bucket = s.Vars
	case NSFunction:
		bucket = s.Funcs
	case NSMixin:
		bucket = s.Mixins
	}
	switch s.Mode {
	case FilterShow:
		return list(bucket)
	case FilterHide:
		return !list(bucket)
	default:
		return true
	}
}

// Lookup resolves a namespace-qualified reference (`ns.$x`, `ns.fn()`,
// `ns.mixin`) against the module bound to that namespace in env's
// namespace table (NamespaceTable, below).
func (m *Module) Lookup(name string, ns Namespace) (Value, error) {
	if v, ok := m.exposed(name, ns); ok {
		return v, nil
	}
	return Value{}, &lookupMiss{key: NewEnvKey(name), ns: ns}
}

// NamespaceTable maps an @use namespace (or "*" for a star-import merged
// into the global frame) to the Module it was loaded as, scoped to the
// stylesheet that wrote the @use (spec §4.2: namespaces are local to the
// file that declares them, unlike variables which are frame-scoped).
type NamespaceTable struct {
	byNamespace map[string]*Module
	global      []*Module // modules used with `as *`
}

func NewNamespaceTable() *NamespaceTable {
	return &NamespaceTable{byNamespace: map[string]*Module{}}
}

func (t *NamespaceTable) Bind(namespace string, m *Module) {
	if namespace == "*" {
		t.global = append(t.global, m)
		return
	}
	t.byNamespace[namespace] = m
}

func (t *NamespaceTable) Resolve(namespace string) (*Module, bool) {
	m, ok := t.byNamespace[namespace]
	return m, ok
}

// LookupGlobal searches every `as *` module for name, in @use order, for
// unqualified references once a star-import is in scope.
func (t *NamespaceTable) LookupGlobal(name string, ns Namespace) (Value, bool) {
	for _, m := range t.global {
		if v, ok := m.exposed(name, ns); ok {
			return v, true
		}
	}
	return Value{}, false
}

// DefaultNamespace derives the implicit namespace for `@use "foo/bar"` with
// no explicit `as` clause: the final path segment, stripped of a leading
// `_` partial marker and any extension (spec §4.2's glossary "Namespace").
func DefaultNamespace(url string) string {
	seg := url
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			seg = url[i+1:]
			break
		}
	}
	seg = trimExt(seg)
	if len(seg) > 0 && seg[0] == '_' {
		seg = seg[1:]
	}
	return seg
}

func trimExt(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i]
		}
		if s[i] == '/' {
			break
		}
	}
	return s
}
