// Command timeblok is a thin illustrative wiring example: it reads a
// TimeBlok source file from argv, compiles it and prints the iCalendar
// text to stdout. With the placeholder parser wired in below, every
// compilation fails, so the program reports that error and exits with
// status 1. Flag parsing, $EDITOR launching, and the --new/--open/--print
// CLI surface described in spec §6 are explicitly out of scope (spec §1)
// and are not implemented here, matching the teacher's own
// server/example/main.go, which is similarly a minimal wiring example
// rather than a production CLI.
package main

import (
	"fmt"
	"os"

	timeblok "github.com/jettchent/timeblok-go"
	"github.com/jettchent/timeblok-go/ir"
)

// noopParser is a placeholder Parser: the PEG grammar/lexer that turns
// TimeBlok source text into []ir.Record is out of scope (spec §1). A
// production binary supplies a real one via timeblok.WithParser.
type noopParser struct{}

func (noopParser) Parse(source string) ([]ir.Record, error) {
	return nil, fmt.Errorf("no Parser wired up: the grammar is out of this module's scope")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: timeblok <source-file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "timeblok: %v\n", err)
		os.Exit(1)
	}

	compiler := timeblok.New(timeblok.WithParser(noopParser{}))
	out, err := compiler.Compile(string(data), timeblok.BaseTimeNow())
	if err != nil {
		fmt.Fprintf(os.Stderr, "timeblok: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
