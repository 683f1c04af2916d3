// Command sassc is a minimal batch front end for the compiler core in the
// parent package: `sassc compile <entry> [flags]` resolves and evaluates a
// module graph and reports the shape of the resolved tree it produced.
//
// Grounded on daios-ai-msg/cmd/msg/main.go's subcommand dispatch
// (os.Args[1] switch -> cmdX(args) int -> os.Exit(code)); SPEC_FULL.md
// §10.3 calls for stdlib flag.FlagSet here rather than a CLI framework,
// matching every other_examples/ command-line tool in the pack.
//
// This binary does not print CSS. The serialiser that walks a *sass.CSSRoot
// into CSS text (and source-map mappings) is explicitly out of scope for
// the compiler core (spec.md §1: "treated as external collaborators"), so
// there is nothing here for this command to call for that job. `compile`
// instead reports success/failure and a node-count summary of the resolved
// tree: a debug/inspection view, not a claim of spec-compliant output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	sass "github.com/hcatlin/libsass-go"
)

const appName = "sassc"

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "compile":
		os.Exit(cmdCompile(os.Args[2:]))
	case "config":
		os.Exit(cmdConfig(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`sassc - a Sass/SCSS compiler core front end

Usage:
  %s compile <entry-url> [--load-path DIR ...] [--config FILE] [--quiet-deps]
  %s config <file>                   Parse and print a .sassrc-style config
  %s help                            Print this message

compile reports the resolved tree's node counts and any @warn/@debug
diagnostics; it does not render CSS text (the serialiser is out of scope
for this module — see DESIGN.md).
`, appName, appName, appName)
}

// stringSlice implements flag.Value for a repeatable --load-path flag
// (daios-ai-msg's cmd/msg has no repeatable-flag precedent; this follows
// the standard library's own documented pattern for flag.Value).
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdCompile(args []string) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	var loadPaths stringSlice
	fs.Var(&loadPaths, "load-path", "additional @use/@forward search root (repeatable)")
	configPath := fs.String("config", "", "path to a .sassrc-style jsonc config file")
	quietDeps := fs.Bool("quiet-deps", false, "suppress @warn/@debug diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s compile <entry-url> [flags]\n", appName)
		return 2
	}
	entry := fs.Arg(0)

	var cfg *sass.Config
	if *configPath != "" {
		loaded, err := sass.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		cfg = loaded
	} else {
		cfg = sass.DefaultConfig()
	}
	if len(loadPaths) > 0 {
		cfg.LoadPaths = append(cfg.LoadPaths, loadPaths...)
	}
	cfg.QuietDeps = *quietDeps

	logWriter := io.Writer(os.Stderr)
	if cfg.QuietDeps {
		logWriter = io.Discard
	}
	logger := sass.WriterLogger{W: logWriter}

	sess := sass.NewSession(cfg, noParser, logger)
	root, err := sess.Compile(entry)
	if err != nil {
		if ce, ok := err.(*sass.CompileError); ok {
			fmt.Fprint(os.Stderr, sass.FormatError(ce, ""))
		} else {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
		return 1
	}

	rules, decls, atRules, comments := countNodes(root.Children)
	fmt.Println(green(fmt.Sprintf("compiled %s: %d rules, %d declarations, %d at-rules, %d comments",
		entry, rules, decls, atRules, comments)))
	return 0
}

func cmdConfig(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s config <file>\n", appName)
		return 2
	}
	cfg, err := sass.LoadConfig(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	fmt.Printf("%+v\n", *cfg)
	return 0
}

// noParser is the default Parser wired when this CLI is run without a real
// front end attached. Lexing/parsing SCSS source is explicitly out of
// scope for this module (spec.md §1); this binary exists to exercise
// Session/Config/the evaluator end to end, so it reports a clear error
// rather than silently accepting nothing.
func noParser(src []byte, path string) ([]sass.Stmt, error) {
	return nil, fmt.Errorf("sassc: no SCSS front end wired in; %s needs a Parser that turns source text into []sass.Stmt (see session.go)", path)
}

func countNodes(nodes []sass.CSSNode) (rules, decls, atRules, comments int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *sass.CSSStyleRule:
			rules++
			r, d, a, c := countNodes(v.Children)
			rules += r
			decls += d
			atRules += a
			comments += c
		case *sass.CSSDeclaration:
			decls++
		case *sass.CSSAtRule:
			atRules++
			r, d, a, c := countNodes(v.Children)
			rules += r
			decls += d
			atRules += a
			comments += c
		case *sass.CSSComment:
			comments++
		}
	}
	return
}
