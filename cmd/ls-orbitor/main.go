// Command ls-orbitor computes Keplerian positions of the Sun, Moon and
// planets, maps them onto the zodiac and searches for sign ingresses.
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitStatus(err))
	}
}

// exitStatus returns the exit code carried by err, or 1.
func exitStatus(err error) int {
	var coder cli.ExitCoder
	if stderrors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
