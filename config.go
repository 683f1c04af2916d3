package sass

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Config is a compile session's settings (spec §10 ambient-stack: "a
// config layer the way the teacher does it"), loadable from a `.sassrc`
// file that may contain `//`/`/* */` comments and trailing commas —
// github.com/tidwall/jsonc strips those before the standard library's
// encoding/json ever sees the bytes, the same division of labor
// SPEC_FULL.md §10 calls for.
type Config struct {
	LoadPaths    []string `json:"loadPaths"`
	OutputStyle  string   `json:"outputStyle"`  // "expanded" by default; nothing in this module reads it (the evaluator builds a CSSRoot tree and writes no CSS text)
	SourceMap    bool     `json:"sourceMap"`
	MaxCallDepth int      `json:"maxCallDepth"`
	CacheSize    int      `json:"cacheSize"`
	QuietDeps    bool     `json:"quietDeps"`
}

// DefaultConfig mirrors the zero-config defaults NewEvaluator itself falls
// back to, duplicated here so a Session built without a config file still
// reports sensible values via Config rather than a silently-zero struct.
func DefaultConfig() *Config {
	return &Config{
		LoadPaths:    []string{"."},
		OutputStyle:  "expanded",
		MaxCallDepth: 250,
		CacheSize:    256,
	}
}

// LoadConfig reads and parses a jsonc-flavored config file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonc.ToJSON(raw), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
