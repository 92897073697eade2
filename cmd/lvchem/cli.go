package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// config is the parsed command line.
type config struct {
	Tables    []string
	Verbosity int
	Command   string
	Args      []string
	Charge    int
}

// tableList collects repeated -table flags.
type tableList []string

func (t *tableList) String() string { return strings.Join(*t, ",") }

func (t *tableList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

var commands = map[string]int{ // command → minimum argument count
	"element":  1,
	"atom":     1,
	"validate": 1,
}

// parse processes command-line arguments. It returns the config, whether
// the program should exit cleanly (help), or an ExitError.
func parse(args []string, output io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("lvchem", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
lvchem - inspect the periodic table and atom valences.

Usage:
  lvchem [options] element SYMBOL...
  lvchem [options] atom SYMBOL...
  lvchem [options] validate FILE.hcl...

Commands:
  element   print ordinal, valences, electronegativity and weight
  atom      print valency, free valency and hydrogen count of an isolated atom
  validate  load periodic table files and report errors

Options:
`)
		fs.PrintDefaults()
	}

	var tables tableList
	fs.Var(&tables, "table", "Periodic table HCL file merged over the default (repeatable).")
	verbosity := fs.Int("v", 0, "Log verbosity (0 quiet, 1 outcomes, 2 traces).")
	charge := fs.Int("charge", 0, "Formal charge applied by the atom command.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, true, nil
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	minArgs, ok := commands[cmd]
	if !ok {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cmd)}
	}
	if len(rest) < minArgs {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("%s: missing arguments", cmd)}
	}
	if *verbosity < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid -v: must not be negative"}
	}

	return &config{
		Tables:    tables,
		Verbosity: *verbosity,
		Command:   cmd,
		Args:      rest,
		Charge:    *charge,
	}, false, nil
}
