// Package sass is the evaluation core of a Sass/SCSS compiler: a
// tree-walking evaluator over an already-parsed AST, a selector extension
// engine implementing @extend, and the lexical environment / module system
// that backs @use, @forward and @import.
//
// What this package is not: a lexer, a parser, a CSS/source-map serialiser,
// or a CLI. Those are external collaborators — see cmd/sassc for a thin
// driver that wires a Session together with caller-supplied AST and loaded
// source buffers.
//
// The three subsystems mirror spec §4:
//
//   - env.go, module.go, withconfig.go: Environment (§4.1) and Module
//     registry (§4.2).
//   - value*.go: the Sass value model (§4.3).
//   - selector*.go: selector AST, specificity, superselector test and
//     unification (§4.4).
//   - eval*.go, builtin_*.go: the evaluator and built-in function dispatch
//     (§4.5).
//   - extend.go: the extension engine (§4.6).
//   - errors.go, diagnostic.go: typed errors and backtraces (§4.7).
package sass
