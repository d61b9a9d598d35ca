package main

import (
	"errors"
	"os"

	"github.com/fatih/color"

	"svw.info/skyscraper/internal/adapters/cli"
	"svw.info/skyscraper/internal/domain"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		errColor := color.New(color.FgRed)
		errColor.Fprint(os.Stderr, "error")
		os.Stderr.WriteString(": " + err.Error() + "\n")
		os.Exit(exitCode(err))
	}
}

// exitCode keeps the historical exit-code mapping: 1 for a missing
// solution or a failed check, 3 for an invalid size, 2 for everything
// else (usage and I/O errors).
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoSolution), errors.Is(err, cli.ErrCheckFailed):
		return 1
	case errors.Is(err, domain.ErrInvalidSize):
		return 3
	default:
		return 2
	}
}
