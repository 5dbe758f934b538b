// Command lox is the external driver for the expression-language front
// end: it dispatches to the tokenize, parse, and evaluate pipelines and
// translates their outcomes into the process exit codes the language's
// error taxonomy defines. Diagnostic formatting and file I/O live here;
// everything else is delegated to the internal packages.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err == nil {
		os.Exit(0)
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	// Usage problems (unknown command, wrong arg count) surface as
	// plain cobra errors; SilenceErrors keeps cobra from double-printing
	// them, so we report them here and exit non-zero per §6.
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
