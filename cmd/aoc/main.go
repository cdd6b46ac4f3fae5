// Command aoc runs registered puzzle solvers and solves text mazes with the
// pathkit search engines.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathkit/core"
)

// Exit codes.
const (
	exitSuccess    = 0
	exitUserError  = 1
	exitUnsolvable = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and maps the outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(newApp(stderr))
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "aoc:", err)
		if errors.Is(err, core.ErrUnsolvable) {
			return exitUnsolvable
		}
		return exitUserError
	}
	return exitSuccess
}
