// Package main is the entry point for the basedir CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/basedir/cmd/basedir/commands"
	"github.com/thoreinstein/basedir/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	// ExitError carries the exit code; a nil inner error means the command
	// already produced its output and only the code matters.
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
