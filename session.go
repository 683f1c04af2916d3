package sass

import (
	"fmt"

	"github.com/hcatlin/libsass-go/internal/loadpath"
)

// Parser turns a file's raw source into the top-level statement list this
// evaluator consumes. Lexing/parsing SCSS source text is out of scope for
// this compiler (spec §1): Session takes Parse as a constructor argument so
// a caller wires in its own front end; the evaluator package never touches
// raw source bytes itself (ast.go's doc comment: "callers... construct
// trees of these types directly").
type Parser func(src []byte, path string) ([]Stmt, error)

// Session is the long-lived, embeddable compile session (spec §10 ambient
// stack: "a Session the way the teacher's Interpreter bundles shared
// state"). It owns one Evaluator (and therefore one ModuleRegistry cache)
// across however many entrypoints are compiled against it, so a
// build-watch loop recompiling on every file save reuses already-compiled
// modules instead of starting cold each time.
//
// Grounded on daios-ai-msg/interpreter.go's NewInterpreter()-constructs-
// shared-state-once pattern, generalized with a filesystem-backed Loader
// (internal/loadpath) since this teacher's module system has no on-disk
// component of its own to borrow from directly.
type Session struct {
	Config   *Config
	Eval     *Evaluator
	Resolver *loadpath.Resolver
	Logger   Logger
	Parse    Parser
}

// NewSession wires a Session's Evaluator, Logger, and filesystem Loader
// together from cfg; parse is the caller-supplied front end (Parser).
func NewSession(cfg *Config, parse Parser, logger Logger) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = DiscardLogger{}
	}
	s := &Session{Config: cfg, Resolver: loadpath.NewResolver(cfg.LoadPaths...), Logger: logger, Parse: parse}
	s.Eval = NewEvaluator(logger, s.load, cfg.CacheSize, cfg.MaxCallDepth)
	return s
}

// load implements module.Loader: resolve url against the configured load
// paths, read the file, and hand it to Parse.
func (s *Session) load(url string) ([]Stmt, error) {
	path, err := s.Resolver.Resolve(url)
	if err != nil {
		return nil, err
	}
	src, err := loadpath.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.Parse(src, path)
}

// Compile compiles entryURL (resolved the same way any @use target would
// be) into the session's running CSS tree. Each call shares the
// underlying ModuleRegistry cache with every prior call on this Session.
func (s *Session) Compile(entryURL string) (*CSSRoot, error) {
	return s.Eval.Compile(entryURL)
}
